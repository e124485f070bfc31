// Package config provides configuration types and defaults for vimgrid.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zjrosen/vimgrid/internal/log"
)

// Config holds all configuration options for vimgrid.
type Config struct {
	Grid  GridConfig  `mapstructure:"grid"`
	UI    UIConfig    `mapstructure:"ui"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// GridConfig describes the table the editor opens with.
type GridConfig struct {
	Columns        []string      `mapstructure:"columns"`
	Rows           [][]string    `mapstructure:"rows"`            // Initial data, each row shaped to Columns
	ZebraStripes   bool          `mapstructure:"zebra_stripes"`   // Alternate row background
	MaxCellWidth   int           `mapstructure:"max_cell_width"`  // 0 uses the table default
	PendingTimeout time.Duration `mapstructure:"pending_timeout"` // 0 waits forever for the second key of dd/dc/yy
	Clipboard      bool          `mapstructure:"clipboard"`       // Mirror yanks to the system clipboard
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool `mapstructure:"show_status_bar"`
	ShowHelp      bool `mapstructure:"show_help"` // Start with the full help footer open
}

// ThemeConfig holds color overrides as hex strings. Empty keeps the default.
type ThemeConfig struct {
	Accent  string `mapstructure:"accent"`
	Muted   string `mapstructure:"muted"`
	Error   string `mapstructure:"error"`
	Success string `mapstructure:"success"`
}

// ErrNoColumns is returned by Validate when the grid has no columns.
var ErrNoColumns = errors.New("grid.columns must list at least one column")

// DefaultColumns returns the columns used when none are configured.
func DefaultColumns() []string {
	return []string{"Name", "Age", "City"}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Grid: GridConfig{
			Columns:        DefaultColumns(),
			ZebraStripes:   true,
			MaxCellWidth:   24,
			PendingTimeout: time.Second,
		},
		UI: UIConfig{
			ShowStatusBar: true,
		},
	}
}

// Validate checks the configuration for errors.
func Validate(cfg Config) error {
	if err := ValidateGrid(cfg.Grid); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	return nil
}

// ValidateGrid checks column names, row shapes and limits.
func ValidateGrid(g GridConfig) error {
	if len(g.Columns) == 0 {
		return ErrNoColumns
	}
	for i, name := range g.Columns {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("column %d: name is required", i)
		}
	}
	for i, row := range g.Rows {
		if len(row) != len(g.Columns) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(g.Columns))
		}
	}
	if g.MaxCellWidth < 0 {
		return fmt.Errorf("max_cell_width must not be negative, got %d", g.MaxCellWidth)
	}
	if g.PendingTimeout < 0 {
		return fmt.Errorf("pending_timeout must not be negative, got %s", g.PendingTimeout)
	}
	return nil
}

// ParseColumns splits a comma separated --columns value, trimming blanks.
func ParseColumns(s string) []string {
	var cols []string
	for part := range strings.SplitSeq(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			cols = append(cols, name)
		}
	}
	return cols
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# vimgrid configuration

# Grid settings
grid:
  # Column headers. Rename with I, save back with --save-headers.
  columns:
    - Name
    - Age
    - City
  # Initial rows, each with one value per column.
  rows:
    - [Alice, "25", Paris]
    - [Bob, "31", Lisbon]
  zebra_stripes: true   # Alternate row background
  max_cell_width: 24    # Widest a column is drawn
  pending_timeout: 1s   # How long dd/dc/yy wait for the second key (0 waits forever)
  clipboard: false      # Mirror yanks to the system clipboard

# UI settings
ui:
  show_status_bar: true # Mode, cursor and register summary at the bottom
  show_help: false      # Start with the full help footer open

# Theme overrides (hex colors, empty keeps the default)
theme:
  # accent: "#7D56F4"
  # muted: "#696969"
  # error: "#FF8787"
  # success: "#73F59F"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
