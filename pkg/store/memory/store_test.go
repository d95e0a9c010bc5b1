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

package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"k8s.io/utils/ptr"

	"github.com/mealtrack/food-api/pkg/food"
)

func newFood(name string) *food.Food {
	return &food.Food{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Meal:      "Dinner",
		Timestamp: food.NormalizeTime(time.Now()),
		Salads:    []food.Salad{},
	}
}

func TestStore_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	s := New()

	f := newFood("Pizza")
	require.NoError(t, s.Insert(ctx, f))

	got, err := s.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f, got)

	// stored copy is isolated from the caller
	f.Name = "changed"
	got, err = s.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pizza", got.Name)

	assert.Error(t, s.Insert(ctx, got), "duplicate id")
}

func TestStore_GetMissing(t *testing.T) {
	_, err := New().Get(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, food.ErrNotFound)
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	s := New()

	f := newFood("Pizza")
	require.NoError(t, s.Insert(ctx, f))

	got, err := s.Update(ctx, f.ID, food.FoodPatch{Meal: ptr.To("Lunch")})
	require.NoError(t, err)
	assert.Equal(t, "Pizza", got.Name)
	assert.Equal(t, "Lunch", got.Meal)
	assert.Equal(t, f.Timestamp, got.Timestamp)

	_, err = s.Update(ctx, primitive.NewObjectID(), food.FoodPatch{Name: ptr.To("x")})
	assert.ErrorIs(t, err, food.ErrNotFound)
}

func TestStore_AppendSalad(t *testing.T) {
	ctx := context.Background()
	s := New()

	f := newFood("Pizza")
	require.NoError(t, s.Insert(ctx, f))

	salad := food.Salad{ID: primitive.NewObjectID(), Name: "Caesar", Timestamp: food.NormalizeTime(time.Now())}
	require.NoError(t, s.AppendSalad(ctx, f.ID, salad))

	got, err := s.Get(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, got.Salads, 1)
	assert.Equal(t, salad, got.Salads[0])

	assert.ErrorIs(t, s.AppendSalad(ctx, primitive.NewObjectID(), salad), food.ErrNotFound)
}

func TestStore_AppendSaladConcurrent(t *testing.T) {
	ctx := context.Background()
	s := New()

	f := newFood("Pizza")
	require.NoError(t, s.Insert(ctx, f))

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.AppendSalad(ctx, f.ID, food.Salad{ID: primitive.NewObjectID(), Name: "Greek"}))
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Len(t, got.Salads, n)
}

func TestStore_DeleteAll(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Insert(ctx, newFood("a")))
	require.NoError(t, s.Insert(ctx, newFood("b")))

	n, err := s.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = s.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, s.Ping(ctx))
	assert.NoError(t, s.Close(ctx))
}
