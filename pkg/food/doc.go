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

// Package food implements the Food resource: its data model, the repository
// that enforces its invariants over a pluggable Store, and the HTTP handlers
// that expose it.
//
// # Model
//
// A Food has a store-generated id, a name, a meal, a creation timestamp and
// an ordered list of embedded Salads. Timestamps are kept in UTC at
// millisecond precision so every Store round-trips identical values.
//
// # Repository
//
//	repo := food.NewRepository(store)
//
//	f, err := repo.Create(ctx, food.FoodInput{Name: "Pizza", Meal: "Dinner"})
//	f, err = repo.FindByID(ctx, f.ID.Hex())
//	f, err = repo.UpdateByID(ctx, f.ID.Hex(), food.FoodPatch{Meal: ptr.To("Lunch")})
//	s, err := repo.AddSalad(ctx, f.ID.Hex(), food.SaladInput{Name: "Caesar"})
//
// Every error returned by the repository is a *errors.StructuredError with
// code INVALID_REQUEST, NOT_FOUND or INTERNAL. Malformed ids are reported as
// NOT_FOUND without touching the Store.
//
// # HTTP
//
//	POST /api/food               create, 200 or 400
//	GET  /api/food/{id}          read, 200 or 404
//	PUT  /api/food/{id}          update name/meal, 200, 400 or 404
//	POST /api/food/{id}/salads   append a salad, 200, 400 or 404
//
// Request bodies may be JSON (default) or YAML.
package food
