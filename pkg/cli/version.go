/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/mealtrack/food-api/pkg/serializer"
)

// VersionInfo describes the build.
type VersionInfo struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Flags: []cli.Flag{
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			return serializer.NewWriter(outFormat, cmd.Root().Writer).Serialize(VersionInfo{
				Name:    name,
				Version: version,
				Commit:  commit,
				Date:    date,
			})
		},
	}
}
