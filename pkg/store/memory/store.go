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

// Package memory provides an in-process food.Store backed by a map.
// It is used for tests and for running the API without a database.
package memory

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mealtrack/food-api/pkg/food"
)

// Store is a mutex-guarded in-memory food.Store.
type Store struct {
	mu    sync.RWMutex
	foods map[primitive.ObjectID]*food.Food
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		foods: make(map[primitive.ObjectID]*food.Food),
	}
}

func (s *Store) Insert(_ context.Context, f *food.Food) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.foods[f.ID]; exists {
		return fmt.Errorf("food %s already exists", f.ID.Hex())
	}
	s.foods[f.ID] = f.Clone()
	return nil
}

func (s *Store) Get(_ context.Context, id primitive.ObjectID) (*food.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.foods[id]
	if !ok {
		return nil, food.ErrNotFound
	}
	return f.Clone(), nil
}

func (s *Store) Update(_ context.Context, id primitive.ObjectID, patch food.FoodPatch) (*food.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.foods[id]
	if !ok {
		return nil, food.ErrNotFound
	}
	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.Meal != nil {
		f.Meal = *patch.Meal
	}
	return f.Clone(), nil
}

func (s *Store) AppendSalad(_ context.Context, id primitive.ObjectID, salad food.Salad) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.foods[id]
	if !ok {
		return food.ErrNotFound
	}
	f.Salads = append(f.Salads, salad)
	return nil
}

func (s *Store) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.foods))
	s.foods = make(map[primitive.ObjectID]*food.Food)
	return n, nil
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) Close(context.Context) error {
	return nil
}
