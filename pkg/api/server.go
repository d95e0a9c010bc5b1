package api

import (
	"context"
	"log/slog"

	"github.com/mealtrack/food-api/pkg/defaults"
	"github.com/mealtrack/food-api/pkg/food"
	"github.com/mealtrack/food-api/pkg/logging"
	"github.com/mealtrack/food-api/pkg/server"
	"github.com/mealtrack/food-api/pkg/store"
)

const (
	name           = "food-api"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mealtrack/food-api/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server from environment configuration and blocks
// until shutdown.
func Serve() error {
	cfg, err := LoadConfig("")
	if err != nil {
		return err
	}
	return Run(context.Background(), cfg)
}

// Run opens the configured store, starts the server and blocks until ctx is
// canceled or a termination signal arrives. The store is closed on return.
func Run(ctx context.Context, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"store", store.Redact(cfg.StoreURI),
	)

	st, err := store.Open(ctx, cfg.StoreURI)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), defaults.StoreDisconnectTimeout)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			slog.Warn("failed to close store", "error", err)
		}
	}()

	if err := NewServer(cfg, st).Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewServer wires the food API on top of st.
func NewServer(cfg *Config, st food.Store) *server.Server {
	repo := food.NewRepository(st)
	h := food.NewHandler(repo)

	sc := server.NewConfig()
	sc.Name = name
	sc.Version = version
	sc.Port = cfg.Port
	sc.ShutdownTimeout = cfg.ShutdownTimeout

	return server.New(
		server.WithConfig(sc),
		server.WithHandler(h.Routes()),
		server.WithReadinessCheck("store", repo.Ping),
	)
}
