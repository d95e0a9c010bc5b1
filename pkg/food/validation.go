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
	"sort"
	"strings"
)

// ValidationError lists the fields of an input that failed validation.
type ValidationError struct {
	// Fields maps field name to the reason it was rejected.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := e.FieldNames()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return strings.Join(parts, "; ")
}

// FieldNames returns the rejected field names in sorted order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *ValidationError) add(field, reason string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = reason
}

// orNil returns e when it holds at least one field.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Validate checks that name and meal are present.
func (in FoodInput) Validate() error {
	verr := &ValidationError{}
	if isBlank(in.Name) {
		verr.add("name", "is required")
	}
	if isBlank(in.Meal) {
		verr.add("meal", "is required")
	}
	return verr.orNil()
}

// Validate checks that supplied fields are not empty.
func (p FoodPatch) Validate() error {
	verr := &ValidationError{}
	if p.Name != nil && isBlank(*p.Name) {
		verr.add("name", "must not be empty")
	}
	if p.Meal != nil && isBlank(*p.Meal) {
		verr.add("meal", "must not be empty")
	}
	return verr.orNil()
}

// Validate checks that the salad has a name.
func (in SaladInput) Validate() error {
	verr := &ValidationError{}
	if isBlank(in.Name) {
		verr.add("name", "is required")
	}
	return verr.orNil()
}
