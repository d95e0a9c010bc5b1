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

// Package server provides the HTTP server that hosts the food API.
//
// The server is a thin, reusable shell around net/http. Application handlers
// are registered by ServeMux pattern and wrapped with a shared middleware
// chain:
//
//   - Prometheus request metrics
//   - API version negotiation (Accept: application/vnd.food.v1+json)
//   - Request ID tracking (X-Request-Id)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Request logging
//
// # Usage
//
//	s := server.New(
//	    server.WithName("food-api"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "POST /api/food":     h.CreateFood,
//	        "GET /api/food/{id}": h.GetFood,
//	    }),
//	    server.WithReadinessCheck("store", store.Ping),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Use WithConfig first when supplying a complete Config; later options
// modify it.
//
// # System Endpoints
//
// GET /health - Liveness probe, always 200.
//
// GET /ready - Readiness probe. 503 until the listener is up, during
// shutdown, or while any registered ReadinessCheck fails.
//
// GET /metrics - Prometheus metrics.
//
// GET / - Server name, version and registered routes. Any path that matches
// no route is answered with a JSON 404.
//
// # Errors
//
// All errors are returned as ErrorResponse:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "food not found",
//	  "details": {"id": "5f1b2c3d4e5f6a7b8c9d0e1f"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps a *errors.StructuredError to its HTTP status with
// HTTPStatusFromCode. Causes of 5xx errors are logged and never returned.
//
// # Configuration
//
// Environment variables:
//
//   - PORT: listen port (default 3000)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window (default 30)
//
// # Shutdown
//
// Run stops on context cancellation, SIGINT or SIGTERM. Readiness is
// withdrawn first, then in-flight requests drain within ShutdownTimeout.
// Under systemd (Type=notify) READY=1 and STOPPING=1 are reported.
package server
