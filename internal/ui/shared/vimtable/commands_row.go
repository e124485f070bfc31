package vimtable

import "github.com/zjrosen/vimgrid/internal/log"

// ============================================================================
// Row Commands
// ============================================================================
//
// Structural row changes never emit cell events. The dispatcher clamps the
// cursor after each of them.

// InsertRowBelowCommand inserts an empty row below the cursor and moves to it (o).
type InsertRowBelowCommand struct {
	MutationBase
}

// Execute inserts the row. On an empty grid the row becomes row 0.
func (c *InsertRowBelowCommand) Execute(m *Model) ExecuteResult {
	at := m.store.InsertRow(m.cursor.Row + 1)
	m.cursor.Row = at
	log.Debug(log.CatGrid, "row inserted", "table", m.id, "row", at)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *InsertRowBelowCommand) Keys() []string {
	return []string{"o"}
}

// Mode returns the mode this command operates in.
func (c *InsertRowBelowCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *InsertRowBelowCommand) ID() string {
	return "row.insert_below"
}

// InsertRowAboveCommand inserts an empty row above the cursor and moves to it (O).
type InsertRowAboveCommand struct {
	MutationBase
}

// Execute inserts the row at the cursor index, pushing the current row down.
func (c *InsertRowAboveCommand) Execute(m *Model) ExecuteResult {
	at := m.store.InsertRow(m.cursor.Row)
	m.cursor.Row = at
	log.Debug(log.CatGrid, "row inserted", "table", m.id, "row", at)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *InsertRowAboveCommand) Keys() []string {
	return []string{"O"}
}

// Mode returns the mode this command operates in.
func (c *InsertRowAboveCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *InsertRowAboveCommand) ID() string {
	return "row.insert_above"
}

// DeleteRowCommand deletes the cursor row (dd). The grid may become empty.
type DeleteRowCommand struct {
	MutationBase
}

// Execute removes the row; an empty grid is Skipped.
func (c *DeleteRowCommand) Execute(m *Model) ExecuteResult {
	if !m.store.DeleteRow(m.cursor.Row) {
		return Skipped
	}
	log.Debug(log.CatGrid, "row deleted", "table", m.id, "row", m.cursor.Row)
	return Executed
}

// Keys returns the continuation key after the 'd' prefix.
func (c *DeleteRowCommand) Keys() []string {
	return []string{"d"}
}

// Mode returns the mode this command operates in.
func (c *DeleteRowCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *DeleteRowCommand) ID() string {
	return "row.delete"
}
