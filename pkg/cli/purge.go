/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mealtrack/food-api/pkg/defaults"
	"github.com/mealtrack/food-api/pkg/food"
	"github.com/mealtrack/food-api/pkg/serializer"
	"github.com/mealtrack/food-api/pkg/store"
)

// PurgeResult is written by the purge command.
type PurgeResult struct {
	Store   string `json:"store" yaml:"store"`
	Deleted int64  `json:"deleted" yaml:"deleted"`
}

func purgeCmd() *cli.Command {
	return &cli.Command{
		Name:  "purge",
		Usage: "Remove every food from the store",
		Description: `Remove every food record, including embedded salads, from the configured
store. Intended for test isolation and local development.`,
		Flags: []cli.Flag{
			configFlag(),
			storeURIFlag(),
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Confirm removal of all records",
			},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if !cmd.Bool("yes") {
				return errors.New("refusing to remove all foods without --yes")
			}

			outFormat, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			st, err := store.Open(ctx, cfg.StoreURI)
			if err != nil {
				return err
			}
			defer func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), defaults.StoreDisconnectTimeout)
				defer cancel()
				if err := st.Close(closeCtx); err != nil {
					slog.Warn("failed to close store", "error", err)
				}
			}()

			opCtx, cancel := context.WithTimeout(ctx, defaults.StoreOperationTimeout)
			defer cancel()

			n, err := food.NewRepository(st).RemoveAll(opCtx)
			if err != nil {
				return err
			}

			return serializer.NewWriter(outFormat, cmd.Root().Writer).Serialize(PurgeResult{
				Store:   store.Redact(cfg.StoreURI),
				Deleted: n,
			})
		},
	}
}
