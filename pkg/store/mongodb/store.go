// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mongodb provides a food.Store backed by MongoDB. Each Food is one
// document in the "foods" collection with its salads embedded as an array.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/mealtrack/food-api/pkg/defaults"
	"github.com/mealtrack/food-api/pkg/food"
)

const (
	// DefaultDatabase is used when the connection string names no database.
	DefaultDatabase = "foodapp"

	// Collection holds the food documents.
	Collection = "foods"
)

// Store is a MongoDB backed food.Store.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// DatabaseFromURI returns the database named in uri, or DefaultDatabase.
func DatabaseFromURI(uri string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("invalid mongodb connection string: %w", err)
	}
	if cs.Database == "" {
		return DefaultDatabase, nil
	}
	return cs.Database, nil
}

// Open connects to the deployment at uri and verifies it with a ping.
func Open(ctx context.Context, uri string) (*Store, error) {
	dbName, err := DatabaseFromURI(uri)
	if err != nil {
		return nil, err
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(defaults.StoreConnectTimeout).
		SetServerSelectionTimeout(defaults.StoreConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaults.StoreConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		if derr := client.Disconnect(context.Background()); derr != nil {
			slog.Warn("failed to disconnect from mongodb", "error", derr)
		}
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	slog.Debug("connected to mongodb", "database", dbName, "collection", Collection)

	return &Store{
		client: client,
		coll:   client.Database(dbName).Collection(Collection),
	}, nil
}

func (s *Store) Insert(ctx context.Context, f *food.Food) error {
	doc := *f
	if doc.Salads == nil {
		// $push requires an array, never null.
		doc.Salads = []food.Salad{}
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert food: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (*food.Food, error) {
	var f food.Food
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, food.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find food: %w", err)
	}
	return &f, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, patch food.FoodPatch) (*food.Food, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Meal != nil {
		set["meal"] = *patch.Meal
	}
	if len(set) == 0 {
		return s.Get(ctx, id)
	}

	var f food.Food
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, food.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update food: %w", err)
	}
	return &f, nil
}

func (s *Store) AppendSalad(ctx context.Context, id primitive.ObjectID, salad food.Salad) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"salads": salad}},
	)
	if err != nil {
		return fmt.Errorf("failed to add salad: %w", err)
	}
	if res.MatchedCount == 0 {
		return food.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete foods: %w", err)
	}
	return res.DeletedCount, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
