package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/JovenSoh/bookshelf/internal/core/catalog"
	"github.com/JovenSoh/bookshelf/internal/core/viewport"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// file accessibility and catalog contents. The configPath argument specifies the
// config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateCatalog(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if columns := c.ExpandedColumns(); columns > 400 {
		warnings = append(warnings, ValidationWarning{
			Category: "Viewport",
			Item:     "breakpoint",
			Message:  fmt.Sprintf("expanded layout needs %d terminal columns; the grid will always be compact", columns),
		})
	}

	if c.Footer.Tagline == "" && c.Footer.Link == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Footer",
			Message:  "footer has neither tagline nor link",
		})
	}

	return warnings
}

// ExpandedColumns returns the narrowest terminal width that renders the
// expanded layout.
func (c *Config) ExpandedColumns() int {
	cell := c.Viewport.CellWidth
	if cell <= 0 {
		cell = viewport.DefaultCellWidth
	}
	return (c.Viewport.Breakpoint + cell - 1) / cell
}

// validateFileAccess checks the config file and data directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// validateCatalog checks that the catalog pattern is well formed and that the
// catalog it names loads without errors.
func (c *Config) validateCatalog() error {
	var errs criterio.FieldErrorsBuilder

	if catalog.IsPattern(c.Catalog) && !doublestar.ValidatePathPattern(c.Catalog) {
		errs = errs.Append("catalog", fmt.Errorf("invalid glob pattern %q", c.Catalog))
		return errs.ToError()
	}

	if _, err := catalog.Load(c.Catalog); err != nil {
		errs = errs.Append("catalog", err)
	}

	return errs.ToError()
}
