package vimtable

// ============================================================================
// Mode Entry Commands
// ============================================================================
//
// Insert and visual modes need a cell to act on, so entering them on a grid
// with no rows is Skipped. Header editing only needs a column, which always exists.

// EnterInsertModeCommand opens the value editor for the cursor cell (i, Enter).
type EnterInsertModeCommand struct {
	ModeEntryBase
}

// Execute enters Insert mode and opens the edit surface.
func (c *EnterInsertModeCommand) Execute(m *Model) ExecuteResult {
	if m.store.RowCount() == 0 {
		return Skipped
	}
	m.mode = ModeInsert
	m.pendingBuilder.Clear()
	m.openEditor()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EnterInsertModeCommand) Keys() []string {
	return []string{"i", "<enter>"}
}

// Mode returns the mode this command operates in.
func (c *EnterInsertModeCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterInsertModeCommand) ID() string {
	return "mode.insert"
}

// EnterEditHeaderCommand opens the header editor for the cursor column (I).
type EnterEditHeaderCommand struct {
	ModeEntryBase
}

// Execute enters EditingHeader mode and opens the edit surface.
func (c *EnterEditHeaderCommand) Execute(m *Model) ExecuteResult {
	m.mode = ModeEditingHeader
	m.pendingBuilder.Clear()
	m.openEditor()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EnterEditHeaderCommand) Keys() []string {
	return []string{"I"}
}

// Mode returns the mode this command operates in.
func (c *EnterEditHeaderCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterEditHeaderCommand) ID() string {
	return "mode.edit_header"
}

// EnterVisualCellCommand starts a cell selection anchored at the cursor (v).
type EnterVisualCellCommand struct {
	ModeEntryBase
}

// Execute enters VisualCell mode.
func (c *EnterVisualCellCommand) Execute(m *Model) ExecuteResult {
	if m.store.RowCount() == 0 {
		return Skipped
	}
	m.visualAnchor = m.cursor
	m.mode = ModeVisualCell
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EnterVisualCellCommand) Keys() []string {
	return []string{"v"}
}

// Mode returns the mode this command operates in.
func (c *EnterVisualCellCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterVisualCellCommand) ID() string {
	return "mode.visual_cell"
}

// EnterVisualLineCommand starts a row selection anchored at the cursor (V).
type EnterVisualLineCommand struct {
	ModeEntryBase
}

// Execute enters VisualLine mode.
func (c *EnterVisualLineCommand) Execute(m *Model) ExecuteResult {
	if m.store.RowCount() == 0 {
		return Skipped
	}
	m.visualAnchor = m.cursor
	m.mode = ModeVisualLine
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EnterVisualLineCommand) Keys() []string {
	return []string{"V"}
}

// Mode returns the mode this command operates in.
func (c *EnterVisualLineCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterVisualLineCommand) ID() string {
	return "mode.visual_line"
}

// ============================================================================
// Escape Commands
// ============================================================================

// NormalModeEscapeCommand clears any pending prefix. It never changes mode.
type NormalModeEscapeCommand struct {
	MotionBase
}

// Execute clears the pending prefix.
func (c *NormalModeEscapeCommand) Execute(m *Model) ExecuteResult {
	m.pendingBuilder.Clear()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *NormalModeEscapeCommand) Keys() []string {
	return []string{"<escape>"}
}

// Mode returns the mode this command operates in.
func (c *NormalModeEscapeCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *NormalModeEscapeCommand) ID() string {
	return "mode.escape"
}

// VisualModeEscapeCommand leaves a visual mode without acting on the selection (Escape, d).
type VisualModeEscapeCommand struct {
	ModeEntryBase
	mode Mode
}

// Execute returns to Normal mode.
func (c *VisualModeEscapeCommand) Execute(m *Model) ExecuteResult {
	m.mode = ModeNormal
	m.visualAnchor = Position{}
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *VisualModeEscapeCommand) Keys() []string {
	return []string{"<escape>", "d"}
}

// Mode returns the mode this command operates in.
func (c *VisualModeEscapeCommand) Mode() Mode {
	return c.mode
}

// ID returns the hierarchical identifier for this command.
func (c *VisualModeEscapeCommand) ID() string {
	return "mode.escape"
}
