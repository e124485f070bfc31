// Package modal provides a single-field input dialog drawn over the grid.
// The dialog has no buttons: its host decides which keys commit or cancel
// and forwards everything else to Update.
package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/vimgrid/internal/ui/overlay"
	"github.com/zjrosen/vimgrid/internal/ui/styles"
)

const defaultMinWidth = 40

// Config controls modal appearance.
type Config struct {
	Title       string // Dialog title (e.g., "Rename column")
	Label       string // Label above the input field
	Placeholder string // Placeholder text shown when empty
	Value       string // Initial value
	MaxLength   int    // Character limit (0 = unlimited)
	MinWidth    int    // Minimum content width (0 = default 40)
}

// Model is the modal component state.
type Model struct {
	config Config
	input  textinput.Model
	width  int
	height int
}

// New creates a focused modal with the cursor after the initial value.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = cfg.Placeholder
	ti.Width = contentWidth(cfg) - 2
	if cfg.MaxLength > 0 {
		ti.CharLimit = cfg.MaxLength
	}
	ti.SetValue(cfg.Value)
	ti.CursorEnd()
	ti.Focus()
	return Model{config: cfg, input: ti}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards messages to the input field.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
		m.height = ws.Height
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Value returns the current input text.
func (m Model) Value() string {
	return m.input.Value()
}

// View renders the modal box (without overlay).
func (m Model) View() string {
	width := contentWidth(m.config)
	boxWidth := width + 2

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1).
		Render(m.config.Title)
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	label := m.config.Label
	if label == "" {
		label = "Input"
	}
	field := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderHighlightFocusColor).
		Width(width - 2).
		Render(m.input.View())
	hint := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Render("enter save · esc cancel")

	body := lipgloss.NewStyle().Padding(1, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Render(label),
			field,
			hint,
		),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(title + "\n" + divider + "\n" + body)
}

// Overlay renders the modal centered on the given background.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// SetSize updates the viewport size used for centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func contentWidth(cfg Config) int {
	return max(defaultMinWidth, cfg.MinWidth, lipgloss.Width(cfg.Title))
}
