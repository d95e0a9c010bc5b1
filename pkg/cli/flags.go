/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"
	"k8s.io/utils/ptr"

	"github.com/mealtrack/food-api/pkg/api"
	"github.com/mealtrack/food-api/pkg/serializer"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a YAML or JSON config file",
	}
}

func storeURIFlag() cli.Flag {
	return &cli.StringFlag{
		Name: "store-uri",
		Usage: `Store to use. Supports mongodb://, mongodb+srv://, sqlite://<path>,
	sqlite::memory: and memory://. Overrides STORE_URI and MONGODB_URI.`,
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

// overrides holds configuration explicitly set on the command line.
type overrides struct {
	Port     *int
	StoreURI *string
	LogLevel *string
}

func overridesFromCmd(cmd *cli.Command) overrides {
	var o overrides
	if cmd.IsSet("port") {
		o.Port = ptr.To(cmd.Int("port"))
	}
	if cmd.IsSet("store-uri") {
		o.StoreURI = ptr.To(cmd.String("store-uri"))
	}
	if root := cmd.Root(); root.IsSet("log-level") {
		o.LogLevel = ptr.To(root.String("log-level"))
	}
	return o
}

func (o overrides) apply(cfg *api.Config) {
	cfg.Port = ptr.Deref(o.Port, cfg.Port)
	cfg.StoreURI = ptr.Deref(o.StoreURI, cfg.StoreURI)
	cfg.LogLevel = ptr.Deref(o.LogLevel, cfg.LogLevel)
}

// loadConfig resolves the API configuration for cmd: defaults, the --config
// file, environment, then flags.
func loadConfig(cmd *cli.Command) (*api.Config, error) {
	cfg, err := api.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	overridesFromCmd(cmd).apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func outputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}
