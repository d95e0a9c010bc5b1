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

package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mealtrack/food-api/pkg/defaults"
	apierrors "github.com/mealtrack/food-api/pkg/errors"
	"github.com/mealtrack/food-api/pkg/logging"
	"github.com/mealtrack/food-api/pkg/serializer"
	"github.com/mealtrack/food-api/pkg/store"
)

// DefaultStoreURI is used when no store is configured.
const DefaultStoreURI = "mongodb://localhost:27017/foodapp"

// Environment variables read by LoadConfig.
const (
	EnvPort            = "PORT"
	EnvStoreURI        = "STORE_URI"
	EnvMongoURI        = "MONGODB_URI"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Config is the explicit configuration of the food API server.
type Config struct {
	// Port is the HTTP listen port.
	Port int `json:"port" yaml:"port"`

	// StoreURI selects and locates the backing store,
	// e.g. mongodb://localhost:27017/foodapp or sqlite:///var/lib/food/food.db.
	StoreURI string `json:"storeURI" yaml:"storeURI"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel" yaml:"logLevel"`

	// ShutdownTimeout bounds the graceful drain of in-flight requests.
	ShutdownTimeout time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Port:            defaults.ServerPort,
		StoreURI:        DefaultStoreURI,
		LogLevel:        "info",
		ShutdownTimeout: defaults.ServerShutdownTimeout,
	}
}

// LoadConfig resolves configuration from defaults, then the optional YAML or
// JSON file at path, then environment variables.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := serializer.IntoFile(path, cfg); err != nil {
			return nil, apierrors.WrapWithContext(apierrors.ErrCodeInvalidRequest,
				"failed to load config file", err, map[string]any{"path": path})
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return apierrors.WrapWithContext(apierrors.ErrCodeInvalidRequest,
				"invalid port", err, map[string]any{"env": EnvPort})
		}
		c.Port = port
	}

	// STORE_URI wins over the MongoDB specific variable.
	if v := os.Getenv(EnvMongoURI); v != "" {
		c.StoreURI = v
	}
	if v := os.Getenv(EnvStoreURI); v != "" {
		c.StoreURI = v
	}

	if v := os.Getenv(logging.EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return apierrors.WrapWithContext(apierrors.ErrCodeInvalidRequest,
				"invalid shutdown timeout", err, map[string]any{"env": EnvShutdownTimeout})
		}
		c.ShutdownTimeout = time.Duration(seconds) * time.Second
	}

	return nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return apierrors.NewWithContext(apierrors.ErrCodeInvalidRequest,
			fmt.Sprintf("port %d out of range", c.Port), map[string]any{"port": c.Port})
	}

	if strings.TrimSpace(c.StoreURI) == "" {
		return apierrors.New(apierrors.ErrCodeInvalidRequest, "store URI is required")
	}

	switch store.Scheme(c.StoreURI) {
	case store.SchemeMongo, store.SchemeMongoSRV, store.SchemeSQLite, store.SchemeMemory:
	default:
		return apierrors.NewWithContext(apierrors.ErrCodeInvalidRequest,
			"unsupported store URI scheme", map[string]any{"uri": store.Redact(c.StoreURI)})
	}

	if c.ShutdownTimeout <= 0 {
		return apierrors.NewWithContext(apierrors.ErrCodeInvalidRequest,
			"shutdown timeout must be positive", map[string]any{"shutdownTimeout": c.ShutdownTimeout.String()})
	}

	return nil
}
