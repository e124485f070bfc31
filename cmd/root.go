package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/vimgrid/internal/app"
	"github.com/zjrosen/vimgrid/internal/config"
	"github.com/zjrosen/vimgrid/internal/log"
	"github.com/zjrosen/vimgrid/internal/ui/styles"
)

func init() {
	// Query the terminal background before the program owns stdin, so the
	// OSC 11 reply cannot leak into the cell editor.
	_ = lipgloss.HasDarkBackground()
}

const (
	localConfigPath = ".vimgrid/config.yaml"
	debugLogPath    = "debug.log"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:     "vimgrid",
	Short:   "A modal, vim-style grid editor for the terminal",
	Long:    `vimgrid edits a table of string cells with vim-like modes: hjkl to move, i to edit, dd/dc to delete, yy/p to copy rows.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: "+localConfigPath+", then ~/.config/vimgrid/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log to "+debugLogPath+" (also VIMGRID_DEBUG=1)")
	rootCmd.Flags().String("columns", "",
		"comma separated column headers, overriding the config")
	rootCmd.Flags().Bool("no-zebra", false,
		"disable alternating row shading")
	rootCmd.Flags().Bool("save-headers", false,
		"write the column headers back to the config file on exit")
}

// setDefaults registers every default so a missing key still unmarshals.
func setDefaults(v *viper.Viper) {
	d := config.Defaults()
	v.SetDefault("grid.columns", d.Grid.Columns)
	v.SetDefault("grid.zebra_stripes", d.Grid.ZebraStripes)
	v.SetDefault("grid.max_cell_width", d.Grid.MaxCellWidth)
	v.SetDefault("grid.pending_timeout", d.Grid.PendingTimeout)
	v.SetDefault("grid.clipboard", d.Grid.Clipboard)
	v.SetDefault("ui.show_status_bar", d.UI.ShowStatusBar)
	v.SetDefault("ui.show_help", d.UI.ShowHelp)
}

// loadConfig resolves and reads the config file and returns the decoded
// config plus the path that header saves should target.
//
// Lookup order: explicit path, then .vimgrid/config.yaml, then
// ~/.config/vimgrid/config.yaml. When none exists a commented default is
// written to .vimgrid/config.yaml.
func loadConfig(v *viper.Viper, explicit string) (config.Config, string, error) {
	setDefaults(v)

	switch {
	case explicit != "":
		v.SetConfigFile(explicit)
	case fileExists(localConfigPath):
		v.SetConfigFile(localConfigPath)
	default:
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "vimgrid"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config.Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
			v.SetConfigFile(localConfigPath)
			_ = v.ReadInConfig()
		} else {
			log.Warn(log.CatConfig, "Continuing with built-in defaults", "error", writeErr)
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return config.Config{}, "", fmt.Errorf("decoding config: %w", err)
	}

	path := v.ConfigFileUsed()
	if path == "" {
		path = localConfigPath
	}
	log.Debug(log.CatConfig, "Loaded config", "path", path, "columns", len(cfg.Grid.Columns))
	return cfg, path, nil
}

// applyFlags layers command line overrides onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cols, _ := cmd.Flags().GetString("columns"); cols != "" {
		cfg.Grid.Columns = config.ParseColumns(cols)
		// Configured rows no longer fit the new headers.
		cfg.Grid.Rows = nil
	}
	if noZebra, _ := cmd.Flags().GetBool("no-zebra"); noZebra {
		cfg.Grid.ZebraStripes = false
	}
}

func runApp(cmd *cobra.Command, _ []string) error {
	if debug || os.Getenv("VIMGRID_DEBUG") != "" {
		cleanup, err := log.Init(debugLogPath)
		if err != nil {
			return fmt.Errorf("starting debug log: %w", err)
		}
		defer cleanup()
		debug = true
	}

	cfg, configPath, err := loadConfig(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := styles.ApplyTheme(styles.Theme(cfg.Theme)); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	saveHeaders, _ := cmd.Flags().GetBool("save-headers")
	model, err := app.New(cfg, app.Options{
		ConfigPath:  configPath,
		SaveHeaders: saveHeaders,
		Debug:       debug,
		Clipboard:   systemClipboard{},
	})
	if err != nil {
		return fmt.Errorf("creating grid: %w", err)
	}

	zone.NewGlobal()
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	if fm, ok := final.(app.Model); ok {
		model = fm
	}
	return model.Close()
}

// systemClipboard mirrors yanks to the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
