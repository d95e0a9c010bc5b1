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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"

	"github.com/mealtrack/food-api/pkg/api"
	"github.com/mealtrack/food-api/pkg/food"
	"github.com/mealtrack/food-api/pkg/store/sqlite"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "STORE_URI", "MONGODB_URI", "SHUTDOWN_TIMEOUT_SECONDS", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.Writer = &buf
	root.ErrWriter = &buf
	err := root.Run(context.Background(), append([]string{name}, args...))
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	assert.Equal(t, name, root.Name)

	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"serve", "purge", "version"}, names)
}

func TestVersionCommand(t *testing.T) {
	clearEnv(t)

	out, err := runCLI(t, "version")
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, name, info.Name)
	assert.Equal(t, version, info.Version)

	out, err = runCLI(t, "version", "--format", "yaml")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &info))
	assert.Equal(t, commit, info.Commit)

	_, err = runCLI(t, "version", "--format", "xml")
	assert.Error(t, err)
}

func TestPurgeCommand_RequiresConfirmation(t *testing.T) {
	clearEnv(t)

	_, err := runCLI(t, "purge", "--store-uri", "memory://")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestPurgeCommand_Memory(t *testing.T) {
	clearEnv(t)

	out, err := runCLI(t, "purge", "--store-uri", "memory://", "--yes")
	require.NoError(t, err)

	var res PurgeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "memory://", res.Store)
	assert.Zero(t, res.Deleted)
}

func TestPurgeCommand_SQLite(t *testing.T) {
	clearEnv(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "food.db")

	st, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	repo := food.NewRepository(st)
	for _, n := range []string{"Pizza", "Soup"} {
		f, err := repo.Create(ctx, food.FoodInput{Name: n, Meal: "Lunch"})
		require.NoError(t, err)
		_, err = repo.AddSalad(ctx, f.ID.Hex(), food.SaladInput{Name: "Side"})
		require.NoError(t, err)
	}
	require.NoError(t, st.Close(ctx))

	// store URI from the environment, as in CI
	t.Setenv("STORE_URI", "sqlite://"+path)

	out, err := runCLI(t, "--log-level", "error", "purge", "-y", "-t", "yaml")
	require.NoError(t, err)

	var res PurgeResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, int64(2), res.Deleted)
}

func TestPurgeCommand_InvalidStore(t *testing.T) {
	clearEnv(t)

	_, err := runCLI(t, "purge", "--store-uri", "redis://localhost", "--yes")
	assert.Error(t, err)
}

func TestLoadConfig_FlagsOverrideFileAndEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "food.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 4000\nstoreURI: memory://\nlogLevel: warn\n"), 0o600))
	t.Setenv("PORT", "5000")

	var got *api.Config
	cmd := &cli.Command{
		Name:  "test",
		Flags: []cli.Flag{configFlag(), storeURIFlag(), &cli.IntFlag{Name: "port"}},
		Action: func(_ context.Context, cmd *cli.Command) error {
			var err error
			got, err = loadConfig(cmd)
			return err
		},
	}

	require.NoError(t, cmd.Run(context.Background(), []string{"test", "--config", path}))
	assert.Equal(t, 5000, got.Port, "env overrides file")
	assert.Equal(t, "memory://", got.StoreURI)
	assert.Equal(t, "warn", got.LogLevel)

	require.NoError(t, cmd.Run(context.Background(), []string{"test", "--config", path, "--port", "6000", "--store-uri", "sqlite::memory:"}))
	assert.Equal(t, 6000, got.Port, "flag overrides env")
	assert.Equal(t, "sqlite::memory:", got.StoreURI)
}

func TestOverridesApply(t *testing.T) {
	cfg := api.DefaultConfig()

	overrides{}.apply(cfg)
	assert.Equal(t, api.DefaultConfig(), cfg, "empty overrides change nothing")

	overrides{Port: ptr.To(0), LogLevel: ptr.To("debug")}.apply(cfg)
	assert.Equal(t, 0, cfg.Port, "explicit zero is applied")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, api.DefaultStoreURI, cfg.StoreURI)
}
