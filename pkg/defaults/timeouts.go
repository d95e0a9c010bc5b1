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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// FoodHandlerTimeout is the timeout for a single food API request.
	FoodHandlerTimeout = 15 * time.Second

	// ReadinessCheckTimeout bounds each readiness probe dependency check.
	ReadinessCheckTimeout = 2 * time.Second
)

// Store timeouts for document store operations.
const (
	// StoreConnectTimeout is the timeout for establishing a store connection,
	// including the first ping.
	StoreConnectTimeout = 10 * time.Second

	// StoreOperationTimeout is the timeout for a single store operation.
	// Should be less than FoodHandlerTimeout to allow error handling.
	StoreOperationTimeout = 10 * time.Second

	// StoreDisconnectTimeout is the timeout for closing store connections on shutdown.
	StoreDisconnectTimeout = 5 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server limits.
const (
	// ServerPort is the default listen port.
	ServerPort = 3000

	// ServerRateLimit is the sustained request rate (requests per second).
	ServerRateLimit = 100

	// ServerRateLimitBurst is the token bucket burst size.
	ServerRateLimitBurst = 200

	// MaxRequestBodyBytes caps request body size for food and salad payloads.
	MaxRequestBodyBytes = 1 << 20
)
