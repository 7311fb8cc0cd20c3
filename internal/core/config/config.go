// Package config handles configuration loading and validation for bookshelf.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JovenSoh/bookshelf/internal/core/accordion"
	"github.com/JovenSoh/bookshelf/internal/core/shelf"
	"github.com/JovenSoh/bookshelf/internal/core/styles"
	"github.com/JovenSoh/bookshelf/internal/core/viewport"
)

// MinPanelWidth is the narrowest expanded panel, in columns, that still fits
// the panel headings.
const MinPanelWidth = 20

// Config holds the application configuration.
type Config struct {
	Catalog  string         `yaml:"catalog"`
	Grid     GridConfig     `yaml:"grid"`
	Viewport ViewportConfig `yaml:"viewport"`
	TUI      TUIConfig      `yaml:"tui"`
	Footer   FooterConfig   `yaml:"footer"`
	DataDir  string         `yaml:"-"` // set by caller, not from config file
}

// GridConfig controls the accordion grid.
type GridConfig struct {
	RowWidth          int           `yaml:"row_width"`          // tabs per row
	Randomize         bool          `yaml:"randomize"`          // random initial open tab per row
	AnimationDuration time.Duration `yaml:"animation_duration"` // how long an expand blocks input
	PanelWidth        int           `yaml:"panel_width"`        // expanded panel width in columns
}

// ViewportConfig controls the compact/expanded breakpoint.
type ViewportConfig struct {
	Breakpoint int `yaml:"breakpoint"` // layout units
	CellWidth  int `yaml:"cell_width"` // layout units per terminal column
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// FooterConfig is the text shown below the grid.
type FooterConfig struct {
	Tagline string `yaml:"tagline"`
	Link    string `yaml:"link"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			RowWidth:          shelf.DefaultRowWidth,
			Randomize:         true,
			AnimationDuration: accordion.DefaultDuration,
			PanelWidth:        62,
		},
		Viewport: ViewportConfig{
			Breakpoint: viewport.DefaultBreakpoint,
			CellWidth:  viewport.DefaultCellWidth,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Footer: FooterConfig{
			Tagline: "BookShelf is my personal space to collect, reflect, and share on the books that have shaped my journey. I hope it inspires you to read, think, and grow too.",
			Link:    "https://jovensoh.github.io",
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Grid.RowWidth == 0 {
		c.Grid.RowWidth = defaults.Grid.RowWidth
	}
	if c.Grid.AnimationDuration == 0 {
		c.Grid.AnimationDuration = defaults.Grid.AnimationDuration
	}
	if c.Grid.PanelWidth == 0 {
		c.Grid.PanelWidth = defaults.Grid.PanelWidth
	}
	if c.Viewport.Breakpoint == 0 {
		c.Viewport.Breakpoint = defaults.Viewport.Breakpoint
	}
	if c.Viewport.CellWidth == 0 {
		c.Viewport.CellWidth = defaults.Viewport.CellWidth
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.Grid.RowWidth < 1 {
		return fmt.Errorf("grid.row_width must be at least 1")
	}

	if c.Grid.AnimationDuration <= 0 {
		return fmt.Errorf("grid.animation_duration must be positive")
	}

	if c.Grid.PanelWidth < MinPanelWidth {
		return fmt.Errorf("grid.panel_width must be at least %d", MinPanelWidth)
	}

	if c.Viewport.Breakpoint < 1 {
		return fmt.Errorf("viewport.breakpoint must be at least 1")
	}

	if c.Viewport.CellWidth < 1 {
		return fmt.Errorf("viewport.cell_width must be at least 1")
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is not one of %v", c.TUI.Theme, styles.ThemeNames())
	}

	return nil
}
