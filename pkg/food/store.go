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

package food

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by a Store when no Food has the requested id.
var ErrNotFound = errors.New("food not found")

// Store persists Food documents. Implementations must be safe for concurrent
// use and must report a missing document with ErrNotFound.
type Store interface {
	// Insert stores a new Food. The Food already carries its id.
	Insert(ctx context.Context, f *Food) error
	// Get returns the Food with the given id.
	Get(ctx context.Context, id primitive.ObjectID) (*Food, error)
	// Update applies the non-nil fields of patch and returns the result.
	Update(ctx context.Context, id primitive.ObjectID, patch FoodPatch) (*Food, error)
	// AppendSalad atomically appends s to the salads of the Food with the given id.
	AppendSalad(ctx context.Context, id primitive.ObjectID, s Salad) error
	// DeleteAll removes every Food and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error
	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
