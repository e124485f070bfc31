package vimtable

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pendingTimeoutMsg cancels a lone prefix key when it is still the current one.
type pendingTimeoutMsg struct {
	tableID    string
	generation int
}

// StartPendingCommand buffers a prefix key (d, y, g) and waits for its continuation.
type StartPendingCommand struct {
	MotionBase
	operator rune
}

// Execute buffers the operator and arms the pending timeout when configured.
func (c *StartPendingCommand) Execute(m *Model) ExecuteResult {
	gen := m.pendingBuilder.Start(c.operator)
	if d := m.config.PendingTimeout; d > 0 {
		id := m.id
		m.queue(tea.Tick(d, func(time.Time) tea.Msg {
			return pendingTimeoutMsg{tableID: id, generation: gen}
		}))
	}
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *StartPendingCommand) Keys() []string {
	return []string{string(c.operator)}
}

// Mode returns the mode this command operates in.
func (c *StartPendingCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *StartPendingCommand) ID() string {
	return "pending." + string(c.operator)
}

// RefreshCommand rebuilds the rendered layout from the grid store (r).
// No data changes.
type RefreshCommand struct {
	MotionBase
}

// Execute recomputes column widths and re-clamps the cursor.
func (c *RefreshCommand) Execute(m *Model) ExecuteResult {
	m.clampCursor()
	m.layout()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *RefreshCommand) Keys() []string {
	return []string{"r"}
}

// Mode returns the mode this command operates in.
func (c *RefreshCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *RefreshCommand) ID() string {
	return "view.refresh"
}
