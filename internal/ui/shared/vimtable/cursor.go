package vimtable

// Position represents a cell coordinate in the grid.
type Position struct {
	Row int // Data row (0-indexed, header excluded)
	Col int // Column (0-indexed)
}

// clampCursor pulls the cursor and the visual anchor back inside the grid.
// On an empty grid the row is pinned to 0.
func (m *Model) clampCursor() {
	m.cursor = m.clampPosition(m.cursor)
	m.visualAnchor = m.clampPosition(m.visualAnchor)
}

func (m *Model) clampPosition(p Position) Position {
	maxRow := max(m.store.RowCount()-1, 0)
	maxCol := max(m.store.ColumnCount()-1, 0)
	p.Row = max(min(p.Row, maxRow), 0)
	p.Col = max(min(p.Col, maxCol), 0)
	return p
}

// moveCursor shifts the cursor by (dr, dc). A step past any edge is a no-op.
func (m *Model) moveCursor(dr, dc int) {
	next := Position{Row: m.cursor.Row + dr, Col: m.cursor.Col + dc}
	if next.Row < 0 || next.Row >= max(m.store.RowCount(), 1) {
		return
	}
	if next.Col < 0 || next.Col >= m.store.ColumnCount() {
		return
	}
	m.cursor = next
}

// SelectionBounds returns the normalized selection.
// VisualCell selects only the cursor cell. VisualLine spans every column of the
// rows between the anchor and the cursor. Outside visual modes both bounds are zero.
func (m Model) SelectionBounds() (start, end Position) {
	switch m.mode {
	case ModeVisualCell:
		return m.cursor, m.cursor
	case ModeVisualLine:
		top := min(m.visualAnchor.Row, m.cursor.Row)
		bottom := max(m.visualAnchor.Row, m.cursor.Row)
		return Position{Row: top, Col: 0}, Position{Row: bottom, Col: m.store.ColumnCount() - 1}
	default:
		return Position{}, Position{}
	}
}

// inSelection reports whether (row, col) is highlighted by the current selection.
func (m Model) inSelection(row, col int) bool {
	if !m.mode.IsVisual() {
		return false
	}
	start, end := m.SelectionBounds()
	return row >= start.Row && row <= end.Row && col >= start.Col && col <= end.Col
}
