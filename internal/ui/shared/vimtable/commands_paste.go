package vimtable

import "github.com/zjrosen/vimgrid/internal/log"

// PasteCommand writes the Register into the grid (p).
//
// A row payload becomes a new row below the cursor, padded or truncated to the
// column count, and the cursor moves to it. A cell payload overwrites the cursor
// cell and is reported like any other cell edit. An empty register is Skipped.
type PasteCommand struct {
	MutationBase
}

// Execute pastes the register content.
func (c *PasteCommand) Execute(m *Model) ExecuteResult {
	payload := m.register.Payload()
	switch payload.Kind {
	case PayloadRow:
		at := m.store.InsertRow(m.cursor.Row+1, payload.Values...)
		m.cursor.Row = at
		log.Debug(log.CatGrid, "row pasted", "table", m.id, "row", at)
		return Executed
	case PayloadCell:
		if m.store.RowCount() == 0 {
			return Skipped
		}
		if change, ok := m.store.SetCell(m.cursor.Row, m.cursor.Col, payload.Value); ok {
			m.notify(change)
		}
		return Executed
	default:
		return Skipped
	}
}

// Keys returns the trigger keys for this command.
func (c *PasteCommand) Keys() []string {
	return []string{"p"}
}

// Mode returns the mode this command operates in.
func (c *PasteCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *PasteCommand) ID() string {
	return "paste"
}
