package vimtable

// ============================================================================
// Motion Commands
// ============================================================================
//
// Motions are registered for Normal and both visual modes. In visual modes the
// anchor stays fixed and the selection is recomputed from anchor and cursor at
// render time. A motion past a grid edge is a no-op, not an error.

// MoveLeftCommand moves the cursor one column left (h motion).
type MoveLeftCommand struct {
	MotionBase
}

// Execute moves the cursor one column to the left.
func (c *MoveLeftCommand) Execute(m *Model) ExecuteResult {
	m.moveCursor(0, -1)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveLeftCommand) Keys() []string {
	return []string{"h", "<left>"}
}

// Mode returns the mode this command operates in.
func (c *MoveLeftCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveLeftCommand) ID() string {
	return "move.left"
}

// MoveRightCommand moves the cursor one column right (l motion).
type MoveRightCommand struct {
	MotionBase
}

// Execute moves the cursor one column to the right.
func (c *MoveRightCommand) Execute(m *Model) ExecuteResult {
	m.moveCursor(0, 1)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveRightCommand) Keys() []string {
	return []string{"l", "<right>"}
}

// Mode returns the mode this command operates in.
func (c *MoveRightCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveRightCommand) ID() string {
	return "move.right"
}

// MoveUpCommand moves the cursor one row up (k motion).
type MoveUpCommand struct {
	MotionBase
}

// Execute moves the cursor one row up.
func (c *MoveUpCommand) Execute(m *Model) ExecuteResult {
	m.moveCursor(-1, 0)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveUpCommand) Keys() []string {
	return []string{"k", "<up>"}
}

// Mode returns the mode this command operates in.
func (c *MoveUpCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveUpCommand) ID() string {
	return "move.up"
}

// MoveDownCommand moves the cursor one row down (j motion).
type MoveDownCommand struct {
	MotionBase
}

// Execute moves the cursor one row down.
func (c *MoveDownCommand) Execute(m *Model) ExecuteResult {
	m.moveCursor(1, 0)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveDownCommand) Keys() []string {
	return []string{"j", "<down>"}
}

// Mode returns the mode this command operates in.
func (c *MoveDownCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveDownCommand) ID() string {
	return "move.down"
}

// GoToFirstRowCommand moves the cursor to the first row, keeping the column (gg).
type GoToFirstRowCommand struct {
	MotionBase
}

// Execute moves the cursor to row 0.
func (c *GoToFirstRowCommand) Execute(m *Model) ExecuteResult {
	m.cursor.Row = 0
	return Executed
}

// Keys returns the continuation key completing the g prefix.
func (c *GoToFirstRowCommand) Keys() []string {
	return []string{"g"}
}

// Mode returns the mode this command operates in.
func (c *GoToFirstRowCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *GoToFirstRowCommand) ID() string {
	return "move.first_row"
}

// GoToLastRowCommand moves the cursor to the last row, keeping the column (G).
type GoToLastRowCommand struct {
	MotionBase
}

// Execute moves the cursor to the last row, or row 0 on an empty grid.
func (c *GoToLastRowCommand) Execute(m *Model) ExecuteResult {
	m.cursor.Row = max(m.store.RowCount()-1, 0)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *GoToLastRowCommand) Keys() []string {
	return []string{"G"}
}

// Mode returns the mode this command operates in.
func (c *GoToLastRowCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *GoToLastRowCommand) ID() string {
	return "move.last_row"
}
