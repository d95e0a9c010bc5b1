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

// Package serializer provides utilities for moving data in and out of the
// food API in JSON and YAML.
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, food)
//
// For HTTP request bodies, the Content-Type header selects the decoder:
//
//	var in food.FoodInput
//	err := serializer.DecodeBody(r.Body, r.Header.Get("Content-Type"), defaults.MaxRequestBodyBytes, &in)
//
// For configuration files, the extension selects the decoder:
//
//	cfg, err := serializer.FromFile[api.Config]("config.yaml")
//
// The package automatically handles:
//   - Proper content-type headers for HTTP responses
//   - Buffering to prevent partial responses on errors
//   - Request body size limits
package serializer
