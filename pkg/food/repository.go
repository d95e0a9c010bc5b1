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
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apierrors "github.com/mealtrack/food-api/pkg/errors"
)

// Repository enforces the Food invariants on top of a Store.
type Repository struct {
	store Store
	now   func() time.Time
}

// Option is a functional option for configuring Repository instances.
type Option func(*Repository)

// WithClock sets the time source used for default timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRepository returns a Repository backed by store.
func NewRepository(store Store, opts ...Option) *Repository {
	r := &Repository{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Ping reports whether the backing store is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// ParseID converts a hex id into an ObjectID. Malformed ids are reported as
// NOT_FOUND since no Food can ever carry them.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apierrors.NewWithContext(apierrors.ErrCodeNotFound,
			"food not found", map[string]any{"id": id})
	}
	return oid, nil
}

// Create validates in and stores a new Food with an empty salad list.
func (r *Repository) Create(ctx context.Context, in FoodInput) (*Food, error) {
	if err := in.Validate(); err != nil {
		return nil, invalid("invalid food", err)
	}

	ts := r.now()
	if in.Timestamp != nil {
		ts = *in.Timestamp
	}

	f := &Food{
		ID:        primitive.NewObjectID(),
		Name:      in.Name,
		Meal:      in.Meal,
		Timestamp: NormalizeTime(ts),
		Salads:    []Salad{},
	}

	start := time.Now()
	err := r.store.Insert(ctx, f)
	observe("insert", start, err)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.ErrCodeInternal, "failed to create food", err)
	}

	slog.Debug("food created", "id", f.ID.Hex(), "meal", f.Meal)
	return f.Clone(), nil
}

// FindByID returns the Food with the given id, including its salads.
func (r *Repository) FindByID(ctx context.Context, id string) (*Food, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	f, err := r.store.Get(ctx, oid)
	observe("get", start, err)
	if err != nil {
		return nil, storeError(err, id, "failed to load food")
	}

	return normalize(f), nil
}

// UpdateByID merges the supplied name and meal into the Food with the given
// id. The timestamp and salads are never changed. An empty patch returns the
// stored Food unchanged.
func (r *Repository) UpdateByID(ctx context.Context, id string, patch FoodPatch) (*Food, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	if err := patch.Validate(); err != nil {
		return nil, invalid("invalid food update", err)
	}

	if patch.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	start := time.Now()
	f, err := r.store.Update(ctx, oid, patch)
	observe("update", start, err)
	if err != nil {
		return nil, storeError(err, id, "failed to update food")
	}

	slog.Debug("food updated", "id", id)
	return normalize(f), nil
}

// AddSalad appends a salad to the Food with the given id and returns it.
func (r *Repository) AddSalad(ctx context.Context, foodID string, in SaladInput) (*Salad, error) {
	oid, err := ParseID(foodID)
	if err != nil {
		return nil, err
	}

	if err := in.Validate(); err != nil {
		return nil, invalid("invalid salad", err)
	}

	ts := r.now()
	if in.Timestamp != nil {
		ts = *in.Timestamp
	}

	s := Salad{
		ID:        primitive.NewObjectID(),
		Name:      in.Name,
		Dressing:  in.Dressing,
		Timestamp: NormalizeTime(ts),
	}

	start := time.Now()
	err = r.store.AppendSalad(ctx, oid, s)
	observe("append_salad", start, err)
	if err != nil {
		return nil, storeError(err, foodID, "failed to add salad")
	}

	slog.Debug("salad added", "foodID", foodID, "saladID", s.ID.Hex())
	return &s, nil
}

// RemoveAll deletes every Food and returns how many were removed.
func (r *Repository) RemoveAll(ctx context.Context) (int64, error) {
	start := time.Now()
	n, err := r.store.DeleteAll(ctx)
	observe("delete_all", start, err)
	if err != nil {
		return 0, apierrors.Wrap(apierrors.ErrCodeInternal, "failed to remove foods", err)
	}

	slog.Info("foods removed", "count", n)
	return n, nil
}

func invalid(message string, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return apierrors.WrapWithContext(apierrors.ErrCodeInvalidRequest, message, err,
			map[string]any{"fields": verr.FieldNames()})
	}
	return apierrors.Wrap(apierrors.ErrCodeInvalidRequest, message, err)
}

func storeError(err error, id, message string) error {
	if errors.Is(err, ErrNotFound) {
		return apierrors.NewWithContext(apierrors.ErrCodeNotFound, "food not found",
			map[string]any{"id": id})
	}
	return apierrors.Wrap(apierrors.ErrCodeInternal, message, err)
}

// normalize guarantees the invariants callers rely on regardless of how a
// Store decoded the document.
func normalize(f *Food) *Food {
	if f == nil {
		return nil
	}
	f.Timestamp = NormalizeTime(f.Timestamp)
	if f.Salads == nil {
		f.Salads = []Salad{}
	}
	for i := range f.Salads {
		f.Salads[i].Timestamp = NormalizeTime(f.Salads[i].Timestamp)
	}
	return f
}
