// Package cli implements the command-line interface for the food service.
//
// # Commands
//
// serve - Run the HTTP API:
//
//	food serve [--config food.yaml] [--port 3000] [--store-uri mongodb://localhost:27017/foodapp]
//
// purge - Remove every food from a store:
//
//	food purge --store-uri sqlite:///var/lib/food/food.db --yes [--format json|yaml]
//
// version - Print build information:
//
//	food version [--format json|yaml]
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Configuration
//
// Flags override environment variables, which override the --config file,
// which overrides built-in defaults. See pkg/api for the file format.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mealtrack/food-api/pkg/cli.version=1.0.0'"
package cli
