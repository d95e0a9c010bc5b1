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

// Package store opens a food.Store from a URI.
//
// Supported schemes:
//
//	mongodb://host:27017/foodapp    MongoDB (also mongodb+srv://)
//	sqlite:///var/lib/food/food.db  SQLite file
//	sqlite::memory:                 SQLite in-memory database
//	memory://                       in-process map
package store

import (
	"context"
	"strings"

	apierrors "github.com/mealtrack/food-api/pkg/errors"
	"github.com/mealtrack/food-api/pkg/food"
	"github.com/mealtrack/food-api/pkg/store/memory"
	"github.com/mealtrack/food-api/pkg/store/mongodb"
	"github.com/mealtrack/food-api/pkg/store/sqlite"
)

const (
	SchemeMongo    = "mongodb"
	SchemeMongoSRV = "mongodb+srv"
	SchemeSQLite   = "sqlite"
	SchemeMemory   = "memory"
)

// Scheme returns the lower-cased scheme of uri, or "" when it has none.
func Scheme(uri string) string {
	scheme, _, ok := strings.Cut(uri, ":")
	if !ok {
		return ""
	}
	return strings.ToLower(scheme)
}

// Open returns the food.Store selected by the scheme of uri.
func Open(ctx context.Context, uri string) (food.Store, error) {
	switch Scheme(uri) {
	case SchemeMongo, SchemeMongoSRV:
		s, err := mongodb.Open(ctx, uri)
		if err != nil {
			return nil, apierrors.WrapWithContext(apierrors.ErrCodeInternal,
				"failed to open mongodb store", err, map[string]any{"uri": Redact(uri)})
		}
		return s, nil

	case SchemeSQLite:
		s, err := sqlite.Open(ctx, sqlitePath(uri))
		if err != nil {
			return nil, apierrors.WrapWithContext(apierrors.ErrCodeInternal,
				"failed to open sqlite store", err, map[string]any{"uri": uri})
		}
		return s, nil

	case SchemeMemory:
		return memory.New(), nil

	default:
		return nil, apierrors.NewWithContext(apierrors.ErrCodeInvalidRequest,
			"unsupported store URI scheme", map[string]any{
				"uri":       Redact(uri),
				"supported": []string{SchemeMongo, SchemeMongoSRV, SchemeSQLite, SchemeMemory},
			})
	}
}

// sqlitePath strips the scheme from a sqlite URI.
func sqlitePath(uri string) string {
	_, rest, _ := strings.Cut(uri, ":")
	if p, ok := strings.CutPrefix(rest, "//"); ok {
		rest = p
	}
	if rest == "" {
		return sqlite.MemoryPath
	}
	return rest
}

// Redact masks the password in a URI so it can be logged.
func Redact(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}

	authority := rest
	if i := strings.IndexAny(rest, "/?"); i >= 0 {
		authority = rest[:i]
	}

	at := strings.LastIndex(authority, "@")
	if at < 0 {
		return uri
	}

	user, _, hasPassword := strings.Cut(authority[:at], ":")
	if !hasPassword {
		return uri
	}

	return scheme + "://" + user + ":xxxxx" + rest[at:]
}
