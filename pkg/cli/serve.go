/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/mealtrack/food-api/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the food API server",
		Description: `Run the food HTTP API until SIGINT or SIGTERM.

Configuration is resolved from defaults, the --config file, environment
variables (PORT, STORE_URI, MONGODB_URI, LOG_LEVEL, SHUTDOWN_TIMEOUT_SECONDS)
and finally flags.`,
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "HTTP listen port (default 3000)",
			},
			storeURIFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return api.Run(ctx, cfg)
		},
	}
}
