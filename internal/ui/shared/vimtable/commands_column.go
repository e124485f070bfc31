package vimtable

import (
	"errors"
	"fmt"

	"github.com/zjrosen/vimgrid/internal/grid"
	"github.com/zjrosen/vimgrid/internal/log"
)

// newColumnName names an inserted column after the column count it produces.
func newColumnName(m *Model) string {
	return fmt.Sprintf("Col%d", m.store.ColumnCount()+1)
}

// InsertColumnRightCommand inserts a column right of the cursor and moves into it (a).
type InsertColumnRightCommand struct {
	MutationBase
}

// Execute inserts the column.
func (c *InsertColumnRightCommand) Execute(m *Model) ExecuteResult {
	at := m.store.InsertColumn(m.cursor.Col+1, newColumnName(m))
	m.cursor.Col = at
	log.Debug(log.CatGrid, "column inserted", "table", m.id, "col", at)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *InsertColumnRightCommand) Keys() []string {
	return []string{"a"}
}

// Mode returns the mode this command operates in.
func (c *InsertColumnRightCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *InsertColumnRightCommand) ID() string {
	return "column.insert_right"
}

// AppendColumnCommand appends a column at the end and moves into it (A).
type AppendColumnCommand struct {
	MutationBase
}

// Execute appends the column.
func (c *AppendColumnCommand) Execute(m *Model) ExecuteResult {
	at := m.store.InsertColumn(m.store.ColumnCount(), newColumnName(m))
	m.cursor.Col = at
	log.Debug(log.CatGrid, "column appended", "table", m.id, "col", at)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *AppendColumnCommand) Keys() []string {
	return []string{"A"}
}

// Mode returns the mode this command operates in.
func (c *AppendColumnCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *AppendColumnCommand) ID() string {
	return "column.append"
}

// DeleteColumnCommand deletes the cursor column (dc).
// Deleting the only column is refused and leaves the grid unchanged.
type DeleteColumnCommand struct {
	MutationBase
	reason string
}

// Execute removes the column or refuses.
func (c *DeleteColumnCommand) Execute(m *Model) ExecuteResult {
	if err := m.store.DeleteColumn(m.cursor.Col); err != nil {
		if errors.Is(err, grid.ErrLastColumn) {
			c.reason = err.Error()
			return Refused
		}
		return Skipped
	}
	log.Debug(log.CatGrid, "column deleted", "table", m.id, "col", m.cursor.Col)
	return Executed
}

// RefusalReason explains the last refusal.
func (c *DeleteColumnCommand) RefusalReason() string {
	return c.reason
}

// Keys returns the continuation key after the 'd' prefix.
func (c *DeleteColumnCommand) Keys() []string {
	return []string{"c"}
}

// Mode returns the mode this command operates in.
func (c *DeleteColumnCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *DeleteColumnCommand) ID() string {
	return "column.delete"
}
