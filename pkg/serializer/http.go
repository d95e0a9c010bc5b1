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

package serializer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrBodyTooLarge is returned by DecodeBody when the body exceeds its limit.
var ErrBodyTooLarge = errors.New("request body too large")

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// Serialize first to detect errors before writing headers
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}

// MediaType returns the lower-cased media type of a Content-Type header value
// with parameters such as charset stripped.
func MediaType(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}
	return ct
}

// DecodeBody reads at most limit bytes from body and decodes them into v
// using the format implied by contentType. YAML media types are decoded with
// yaml.v3; everything else is treated as JSON.
//
// An empty body is not an error: v is left untouched so callers can validate
// the zero value themselves.
func DecodeBody(body io.Reader, contentType string, limit int64, v any) error {
	if body == nil {
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if int64(len(data)) > limit {
		return ErrBodyTooLarge
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	switch MediaType(contentType) {
	case "application/x-yaml", "application/yaml", "text/yaml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML body: %w", err)
		}
	case "application/json", "":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON body: %w", err)
		}
	default:
		// Try JSON for unrecognized types
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("unsupported content type %q and failed to parse as JSON: %w", contentType, err)
		}
	}

	return nil
}
