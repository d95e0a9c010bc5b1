// Package api provides the HTTP API layer for the food service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with the food routes, a store opened from configuration, and
// a store readiness check.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/mealtrack/food-api/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Configuration
//
// Config is resolved in this order, later sources winning:
//   - DefaultConfig (port 3000, mongodb://localhost:27017/foodapp)
//   - an optional YAML or JSON file passed to LoadConfig
//   - environment: PORT, MONGODB_URI, STORE_URI, LOG_LEVEL, SHUTDOWN_TIMEOUT_SECONDS
//
// The CLI applies its flags on top of LoadConfig.
//
// # Endpoints
//
//	POST /api/food               create a food
//	GET  /api/food/{id}          read a food with its salads
//	PUT  /api/food/{id}          update name and meal
//	POST /api/food/{id}/salads   add a salad
//	GET  /health                 liveness
//	GET  /ready                  readiness, including a store ping
//	GET  /metrics                Prometheus metrics
package api
