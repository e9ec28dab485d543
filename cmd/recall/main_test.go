package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func findCommand(t *testing.T, app *cli.App, name string) *cli.Command {
	t.Helper()
	for _, cmd := range app.Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	t.Fatalf("command %q not found", name)
	return nil
}

func findStringFlag(cmd *cli.Command, name string) *cli.StringFlag {
	for _, flag := range cmd.Flags {
		if f, ok := flag.(*cli.StringFlag); ok && f.Name == name {
			return f
		}
	}
	return nil
}

func findIntFlag(cmd *cli.Command, name string) *cli.IntFlag {
	for _, flag := range cmd.Flags {
		if f, ok := flag.(*cli.IntFlag); ok && f.Name == name {
			return f
		}
	}
	return nil
}

func TestAppCommands(t *testing.T) {
	app := newApp()

	for _, name := range []string{"add", "search", "similar", "reembed"} {
		assert.NotNil(t, findCommand(t, app, name), "command %s should exist", name)
	}
}

func TestReembedCommandFlags(t *testing.T) {
	app := newApp()
	cmd := findCommand(t, app, "reembed")

	t.Run("embedding-model is required", func(t *testing.T) {
		err := app.Run([]string{"recall", "reembed", "--db", "/tmp/test"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "embedding-model")
	})

	t.Run("embedding-host has default value", func(t *testing.T) {
		hostFlag := findStringFlag(cmd, "embedding-host")
		require.NotNil(t, hostFlag)
		assert.Equal(t, "http://localhost:11434/v1", hostFlag.Value)
	})

	t.Run("embedding-model has no default value", func(t *testing.T) {
		modelFlag := findStringFlag(cmd, "embedding-model")
		require.NotNil(t, modelFlag)
		assert.Empty(t, modelFlag.Value)
		assert.True(t, modelFlag.Required)
	})

	t.Run("batch-size has default value of 100", func(t *testing.T) {
		batchFlag := findIntFlag(cmd, "batch-size")
		require.NotNil(t, batchFlag)
		assert.Equal(t, 100, batchFlag.Value)
	})

	t.Run("max-retries has default value of 3", func(t *testing.T) {
		retriesFlag := findIntFlag(cmd, "max-retries")
		require.NotNil(t, retriesFlag)
		assert.Equal(t, 3, retriesFlag.Value)
	})
}

func TestVaultCommandFlags(t *testing.T) {
	app := newApp()

	for _, name := range []string{"add", "search", "similar"} {
		cmd := findCommand(t, app, name)

		t.Run(name+" requires owner", func(t *testing.T) {
			ownerFlag := findStringFlag(cmd, "owner")
			require.NotNil(t, ownerFlag)
			assert.True(t, ownerFlag.Required)
		})

		t.Run(name+" db has default", func(t *testing.T) {
			dbFlag := findStringFlag(cmd, "db")
			require.NotNil(t, dbFlag)
			assert.Equal(t, "./recall_db", dbFlag.Value)
		})
	}
}

func TestAddCommandFlags(t *testing.T) {
	app := newApp()
	cmd := findCommand(t, app, "add")

	typeFlag := findStringFlag(cmd, "type")
	require.NotNil(t, typeFlag)
	assert.Equal(t, "note", typeFlag.Value)
}

func TestSearchCommandFlags(t *testing.T) {
	app := newApp()
	cmd := findCommand(t, app, "search")

	limitFlag := findIntFlag(cmd, "limit")
	require.NotNil(t, limitFlag)
	assert.Equal(t, 10, limitFlag.Value)
}

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"DEBUG", false},
		{"verbose", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			app := &cli.App{
				Name:   "recall",
				Flags:  newApp().Flags,
				Before: setupLogger,
				Action: func(c *cli.Context) error { return nil },
			}

			args := []string{"recall"}
			if tt.level != "" {
				args = append(args, "--log-level", tt.level)
			} else {
				args = append(args, "--log-level", "")
			}

			err := app.Run(args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
