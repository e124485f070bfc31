// Package app contains the root application model.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vimgrid/internal/config"
	"github.com/zjrosen/vimgrid/internal/keys"
	"github.com/zjrosen/vimgrid/internal/log"
	"github.com/zjrosen/vimgrid/internal/ui/shared/vimtable"
	"github.com/zjrosen/vimgrid/internal/ui/styles"
	"github.com/zjrosen/vimgrid/internal/ui/toaster"
)

// Options carries the runtime settings that do not come from the config file.
type Options struct {
	// ConfigPath is where --save-headers writes the column names on Close.
	ConfigPath string
	// SaveHeaders enables writing the headers back on Close.
	SaveHeaders bool
	// Debug enables the log tail footer (ctrl+l).
	Debug bool
	// Clipboard receives yanks when grid.clipboard is on.
	Clipboard vimtable.ClipboardWriter
}

// Model is the root application state.
type Model struct {
	table   vimtable.Model
	toaster toaster.Model
	help    help.Model

	opts          Options
	showStatusBar bool
	showHelp      bool
	lastEdit      string

	debugMode   bool
	showLog     bool
	logTail     string
	logListener *log.Listener
	logCancel   context.CancelFunc

	width  int
	height int
}

// New creates the application model from a validated configuration.
func New(cfg config.Config, opts Options) (Model, error) {
	tableCfg := vimtable.Config{
		Columns:        cfg.Grid.Columns,
		ZebraStripes:   cfg.Grid.ZebraStripes,
		PendingTimeout: cfg.Grid.PendingTimeout,
		MaxCellWidth:   cfg.Grid.MaxCellWidth,
		ZonePrefix:     "grid",
	}
	if cfg.Grid.Clipboard {
		tableCfg.Clipboard = opts.Clipboard
	}

	table, err := vimtable.New(tableCfg)
	if err != nil {
		return Model{}, err
	}
	if err := table.SetData(cfg.Grid.Rows); err != nil {
		return Model{}, fmt.Errorf("loading rows: %w", err)
	}
	table.Focus()

	m := Model{
		table:         table,
		toaster:       toaster.New(),
		help:          help.New(),
		opts:          opts,
		showStatusBar: cfg.UI.ShowStatusBar,
		showHelp:      cfg.UI.ShowHelp,
		debugMode:     opts.Debug,
	}
	if opts.Debug {
		var ctx context.Context
		ctx, m.logCancel = context.WithCancel(context.Background())
		m.logListener = log.NewListener(ctx)
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.table.Init()}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.App.ForceQuit) {
			return m, tea.Quit
		}
		if m.debugMode && key.Matches(msg, keys.App.Log) {
			m.showLog = !m.showLog
			m.resize()
			return m, nil
		}
		// q and ? are grid keys everywhere except an idle Normal mode.
		if m.table.Mode() == vimtable.ModeNormal && m.table.PendingKeys() == "" {
			switch {
			case key.Matches(msg, keys.App.Quit):
				return m, tea.Quit
			case key.Matches(msg, keys.App.Help):
				m.showHelp = !m.showHelp
				m.resize()
				return m, nil
			}
		}

	case vimtable.RefusedMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(msg.Reason, toaster.StyleWarn, 0)
		return m, cmd

	case vimtable.SearchMsg:
		if msg.Matches > 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(fmt.Sprintf("no matches for %q", msg.Query), toaster.StyleInfo, 0)
		return m, cmd

	case vimtable.CellEditedMsg:
		m.lastEdit = fmt.Sprintf("edited %d,%d", msg.Row+1, msg.Col+1)
		return m, nil

	case vimtable.ModeChangeMsg:
		// Help bindings differ per mode.
		m.resize()
		return m, nil

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case log.Event:
		m.logTail = strings.TrimSpace(msg.Payload)
		if m.logListener == nil {
			return m, nil
		}
		return m, m.logListener.Listen()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// resize gives the table whatever the footer leaves free.
func (m *Model) resize() {
	m.table.SetSize(m.width, max(m.height-footerHeight(m.footer()), 0))
}

func footerHeight(footer string) int {
	if footer == "" {
		return 0
	}
	return lipgloss.Height(footer)
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.table.View()
	footer := m.footer()
	if m.height > 0 {
		// Keep the footer on the last lines of the screen.
		view = lipgloss.PlaceVertical(max(m.height-footerHeight(footer), 1), lipgloss.Top, view)
	}
	if footer != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, footer)
	}
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	return zone.Scan(view)
}

func (m Model) footer() string {
	var lines []string
	if m.showHelp {
		lines = append(lines, m.help.FullHelpView(keys.HelpMap{Table: m.table.HelpKeys()}.FullHelp()))
	}
	if m.debugMode && m.showLog {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Render(styles.TruncateString(m.logTail, max(m.width, 1))))
	}
	if m.showStatusBar {
		lines = append(lines, m.statusBar())
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusBar() string {
	parts := []string{m.table.ModeIndicator()}
	if pending := m.table.PendingKeys(); pending != "" {
		parts = append(parts, pending)
	}
	cur := m.table.Cursor()
	parts = append(parts,
		fmt.Sprintf("%d,%d", cur.Row+1, cur.Col+1),
		fmt.Sprintf("%dx%d", m.table.RowCount(), m.table.ColumnCount()),
		registerSummary(m.table.Register()),
	)
	if m.lastEdit != "" {
		parts = append(parts, m.lastEdit)
	}
	if !m.showHelp {
		parts = append(parts, m.help.ShortHelpView(keys.HelpMap{}.ShortHelp()))
	}
	return styles.StatusBarStyle.Render(strings.Join(parts, "  "))
}

func registerSummary(p vimtable.Payload) string {
	switch p.Kind {
	case vimtable.PayloadRow:
		return fmt.Sprintf("reg: row(%d)", len(p.Values))
	case vimtable.PayloadCell:
		return "reg: " + styles.TruncateString(fmt.Sprintf("%q", p.Value), 16)
	default:
		return "reg: empty"
	}
}

// Table returns the grid component.
func (m Model) Table() vimtable.Model {
	return m.table
}

// ShowHelp reports whether the full help footer is open.
func (m Model) ShowHelp() bool {
	return m.showHelp
}

// Close stops the log tail, closes the change feed and, with SaveHeaders,
// writes the current column names back to the config file.
func (m *Model) Close() error {
	if m.logCancel != nil {
		m.logCancel()
	}
	m.table.Close()
	if !m.opts.SaveHeaders || m.opts.ConfigPath == "" {
		return nil
	}
	if err := config.SaveColumns(m.opts.ConfigPath, m.table.ColumnNames()); err != nil {
		return fmt.Errorf("saving headers: %w", err)
	}
	return nil
}
