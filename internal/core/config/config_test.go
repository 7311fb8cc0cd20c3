package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JovenSoh/bookshelf/internal/core/styles"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), dataDir)
	require.NoError(t, err)

	want := DefaultConfig()
	want.DataDir = dataDir
	assert.Equal(t, &want, cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
catalog: ~/books.json
grid:
  row_width: 4
  randomize: false
  animation_duration: 750ms
viewport:
  breakpoint: 960
tui:
  theme: gruvbox
`)

	cfg, err := Load(path, "/data")
	require.NoError(t, err)

	assert.Equal(t, "~/books.json", cfg.Catalog)
	assert.Equal(t, 4, cfg.Grid.RowWidth)
	assert.False(t, cfg.Grid.Randomize)
	assert.Equal(t, 750*time.Millisecond, cfg.Grid.AnimationDuration)
	assert.Equal(t, 960, cfg.Viewport.Breakpoint)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, "/data", cfg.DataDir)

	// Unset keys keep their defaults.
	assert.Equal(t, DefaultConfig().Grid.PanelWidth, cfg.Grid.PanelWidth)
	assert.Equal(t, DefaultConfig().Viewport.CellWidth, cfg.Viewport.CellWidth)
}

func TestLoad_ZeroValuesFallBackToDefaults(t *testing.T) {
	path := writeConfig(t, `
grid:
  row_width: 0
  animation_duration: 0s
tui:
  theme: ""
`)

	cfg, err := Load(path, "/data")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Grid.RowWidth)
	assert.Equal(t, 500*time.Millisecond, cfg.Grid.AnimationDuration)
	assert.Equal(t, styles.DefaultTheme, cfg.TUI.Theme)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "grid: [not, a, map]")

	_, err := Load(path, "/data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, "data directory cannot be empty"},
		{"negative row width", func(c *Config) { c.Grid.RowWidth = -1 }, "grid.row_width"},
		{"negative duration", func(c *Config) { c.Grid.AnimationDuration = -time.Second }, "grid.animation_duration"},
		{"narrow panel", func(c *Config) { c.Grid.PanelWidth = 5 }, "grid.panel_width"},
		{"negative breakpoint", func(c *Config) { c.Viewport.Breakpoint = -1 }, "viewport.breakpoint"},
		{"negative cell width", func(c *Config) { c.Viewport.CellWidth = -1 }, "viewport.cell_width"},
		{"unknown theme", func(c *Config) { c.TUI.Theme = "solarized-pink" }, "tui.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DataDir = "/data"
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "grid:\n  row_width: -3\n")

	_, err := Load(path, "/data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
