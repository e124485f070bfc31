// Package toaster shows short-lived notifications at the bottom of the grid,
// such as refused commands or clipboard failures.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/vimgrid/internal/ui/overlay"
	"github.com/zjrosen/vimgrid/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up when no duration is given.
const DefaultDuration = 3 * time.Second

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

func (s Style) String() string {
	switch s {
	case StyleError:
		return "error"
	case StyleInfo:
		return "info"
	case StyleWarn:
		return "warn"
	default:
		return "success"
	}
}

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	seq     int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays a toast and returns a command that hides it after d.
// A toast shown later is not hidden by an earlier toast's timer.
func (m Model) Show(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	if d <= 0 {
		d = DefaultDuration
	}
	m.message = message
	m.style = style
	m.visible = true
	m.seq++
	return m, scheduleDismiss(m.seq, d)
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text of the visible toast.
func (m Model) Message() string {
	return m.message
}

// Update handles dismiss ticks.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.seq == m.seq {
		return m.Hide()
	}
	return m
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var icon string
	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.ToastBorderErrorColor)
		icon = "✗"
	case StyleInfo:
		style = style.BorderForeground(styles.ToastBorderInfoColor)
		icon = "i"
	case StyleWarn:
		style = style.BorderForeground(styles.ToastBorderWarnColor)
		icon = "!"
	default:
		style = style.BorderForeground(styles.ToastBorderSuccessColor)
		icon = "✓"
	}

	return style.Render(icon + " " + m.message)
}

// Overlay renders the toast bottom-center on top of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg hides the toast it was scheduled for.
type DismissMsg struct {
	seq int
}

func scheduleDismiss(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{seq: seq}
	})
}
