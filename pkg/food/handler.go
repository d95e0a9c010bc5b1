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
	"net/http"

	"github.com/mealtrack/food-api/pkg/defaults"
	apierrors "github.com/mealtrack/food-api/pkg/errors"
	"github.com/mealtrack/food-api/pkg/serializer"
	"github.com/mealtrack/food-api/pkg/server"
)

// Handler serves the Food HTTP API.
type Handler struct {
	repo *Repository
}

// NewHandler returns a Handler backed by repo.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Routes returns the handlers keyed by ServeMux pattern, ready for
// server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"POST /api/food":             h.CreateFood,
		"GET /api/food/{id}":         h.GetFood,
		"PUT /api/food/{id}":         h.UpdateFood,
		"POST /api/food/{id}/salads": h.AddSalad,
	}
}

// CreateFood handles POST /api/food.
func (h *Handler) CreateFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FoodHandlerTimeout)
	defer cancel()

	var in FoodInput
	if !decodeBody(w, r, &in) {
		return
	}

	f, err := h.repo.Create(ctx, in)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to create food", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, f)
}

// GetFood handles GET /api/food/{id}.
func (h *Handler) GetFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FoodHandlerTimeout)
	defer cancel()

	f, err := h.repo.FindByID(ctx, r.PathValue("id"))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to load food", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, f)
}

// UpdateFood handles PUT /api/food/{id}. The id is checked before the body so
// an unknown id is always reported as 404.
func (h *Handler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FoodHandlerTimeout)
	defer cancel()

	id := r.PathValue("id")
	if _, err := ParseID(id); err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to update food", nil)
		return
	}

	var patch FoodPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	f, err := h.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to update food", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, f)
}

// AddSalad handles POST /api/food/{id}/salads.
func (h *Handler) AddSalad(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FoodHandlerTimeout)
	defer cancel()

	id := r.PathValue("id")
	if _, err := ParseID(id); err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to add salad", nil)
		return
	}

	var in SaladInput
	if !decodeBody(w, r, &in) {
		return
	}

	s, err := h.repo.AddSalad(ctx, id, in)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to add salad", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, s)
}

// decodeBody decodes the request body into v and writes a 400 on failure.
// It reports whether the handler should continue.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	defer func() {
		if r.Body != nil {
			r.Body.Close()
		}
	}()

	err := serializer.DecodeBody(r.Body, r.Header.Get("Content-Type"), defaults.MaxRequestBodyBytes, v)
	if err == nil {
		return true
	}

	slog.Debug("rejecting request body", "path", r.URL.Path, "error", err)

	message := "Invalid request body"
	if errors.Is(err, serializer.ErrBodyTooLarge) {
		message = "Request body too large"
	}
	server.WriteError(w, r, http.StatusBadRequest, apierrors.ErrCodeInvalidRequest,
		message, false, map[string]any{
			"error": err.Error(),
		})
	return false
}
