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
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a named meal entry with embedded salads.
type Food struct {
	ID        primitive.ObjectID `json:"id" yaml:"id" bson:"_id"`
	Name      string             `json:"name" yaml:"name" bson:"name"`
	Meal      string             `json:"meal" yaml:"meal" bson:"meal"`
	Timestamp time.Time          `json:"timestamp" yaml:"timestamp" bson:"timestamp"`
	Salads    []Salad            `json:"salads" yaml:"salads" bson:"salads"`
}

// Salad is a sub-record embedded in a Food.
type Salad struct {
	ID        primitive.ObjectID `json:"id" yaml:"id" bson:"_id"`
	Name      string             `json:"name" yaml:"name" bson:"name"`
	Dressing  string             `json:"dressing,omitempty" yaml:"dressing,omitempty" bson:"dressing,omitempty"`
	Timestamp time.Time          `json:"timestamp" yaml:"timestamp" bson:"timestamp"`
}

// FoodInput carries the fields accepted when creating a Food.
type FoodInput struct {
	Name      string     `json:"name" yaml:"name"`
	Meal      string     `json:"meal" yaml:"meal"`
	Timestamp *time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// FoodPatch carries the mutable fields of a Food. Nil fields are left as is.
type FoodPatch struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Meal *string `json:"meal,omitempty" yaml:"meal,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p FoodPatch) IsEmpty() bool {
	return p.Name == nil && p.Meal == nil
}

// SaladInput carries the fields accepted when adding a Salad.
type SaladInput struct {
	Name      string     `json:"name" yaml:"name"`
	Dressing  string     `json:"dressing,omitempty" yaml:"dressing,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// Clone returns a deep copy of f.
func (f *Food) Clone() *Food {
	if f == nil {
		return nil
	}
	c := *f
	c.Salads = make([]Salad, len(f.Salads))
	copy(c.Salads, f.Salads)
	return &c
}

// NormalizeTime converts t to the precision and zone every Store persists.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
