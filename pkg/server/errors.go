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

package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	apierrors "github.com/mealtrack/food-api/pkg/errors"
	"github.com/mealtrack/food-api/pkg/serializer"
)

// HTTPStatusFromCode maps a structured error code to an HTTP status.
// The mapping is total: unknown codes are reported as 500.
func HTTPStatusFromCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apierrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code apierrors.ErrorCode) bool {
	switch code {
	case apierrors.ErrCodeRateLimitExceeded, apierrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// WriteError writes error response
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code apierrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response derived from err.
// A *errors.StructuredError supplies status, code, message and details; any
// other error is reported as INTERNAL with fallbackMessage. The cause text is
// only exposed for client errors.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *apierrors.StructuredError
	if !errors.As(err, &se) {
		slog.Error(fallbackMessage,
			"error", err,
			"requestID", RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"method", r.Method,
		)
		WriteError(w, r, http.StatusInternalServerError, apierrors.ErrCodeInternal,
			fallbackMessage, true, mergeDetails(nil, extraDetails))
		return
	}

	status := HTTPStatusFromCode(se.Code)
	details := mergeDetails(se.Context, extraDetails)

	if status >= http.StatusInternalServerError {
		slog.Error(se.Message,
			"error", err,
			"code", se.Code,
			"requestID", RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"method", r.Method,
		)
	} else if se.Cause != nil {
		if details == nil {
			details = make(map[string]any, 1)
		}
		details["error"] = se.Cause.Error()
	}

	WriteError(w, r, status, se.Code, se.Message, retryableFromCode(se.Code), details)
}

// mergeDetails returns a new map with the contents of a and b, b winning on
// key collisions. It returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
