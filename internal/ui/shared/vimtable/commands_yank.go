package vimtable

// ============================================================================
// Yank Commands
// ============================================================================
//
// Yanks write the Register and never touch the grid.

// YankRowCommand copies the cursor row into the Register (yy).
type YankRowCommand struct {
	MotionBase
}

// Execute yanks the row; an empty grid is Skipped.
func (c *YankRowCommand) Execute(m *Model) ExecuteResult {
	row, ok := m.store.Row(m.cursor.Row)
	if !ok {
		return Skipped
	}
	m.register.YankRow(row)
	return Executed
}

// Keys returns the continuation key after the 'y' prefix.
func (c *YankRowCommand) Keys() []string {
	return []string{"y"}
}

// Mode returns the mode this command operates in.
func (c *YankRowCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *YankRowCommand) ID() string {
	return "yank.row"
}

// YankCellCommand copies the cursor cell and returns to Normal (y in VisualCell).
type YankCellCommand struct {
	ModeEntryBase
}

// Execute yanks the cell.
func (c *YankCellCommand) Execute(m *Model) ExecuteResult {
	value, ok := m.store.Cell(m.cursor.Row, m.cursor.Col)
	if !ok {
		return Skipped
	}
	m.register.YankCell(value)
	m.mode = ModeNormal
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *YankCellCommand) Keys() []string {
	return []string{"y"}
}

// Mode returns the mode this command operates in.
func (c *YankCellCommand) Mode() Mode {
	return ModeVisualCell
}

// ID returns the hierarchical identifier for this command.
func (c *YankCellCommand) ID() string {
	return "yank.cell"
}

// YankAnchorRowCommand copies the row where the selection started and returns
// to Normal (y in VisualLine). Rows between anchor and cursor are highlighted
// but only the anchor row is yanked.
type YankAnchorRowCommand struct {
	ModeEntryBase
}

// Execute yanks the anchor row.
func (c *YankAnchorRowCommand) Execute(m *Model) ExecuteResult {
	row, ok := m.store.Row(m.visualAnchor.Row)
	if !ok {
		return Skipped
	}
	m.register.YankRow(row)
	m.mode = ModeNormal
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *YankAnchorRowCommand) Keys() []string {
	return []string{"y"}
}

// Mode returns the mode this command operates in.
func (c *YankAnchorRowCommand) Mode() Mode {
	return ModeVisualLine
}

// ID returns the hierarchical identifier for this command.
func (c *YankAnchorRowCommand) ID() string {
	return "yank.anchor_row"
}
