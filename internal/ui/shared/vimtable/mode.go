// Package vimtable provides a vim-style modal grid editor component for Bubble Tea applications.
//
// Keys are normalised by keyToString, resolved against a (mode, key) command
// registry, and executed against a single Model. Prefix keys (d, y, g) are buffered
// by a PendingCommandBuilder until a continuation resolves them or they are cancelled.
package vimtable

// Mode represents the current editing mode of the grid.
type Mode int

const (
	// ModeNormal is the default mode for navigation and structural commands.
	ModeNormal Mode = iota
	// ModeInsert edits the value of the cursor cell.
	ModeInsert
	// ModeEditingHeader edits the name of the cursor column.
	ModeEditingHeader
	// ModeVisualCell selects the cursor cell.
	ModeVisualCell
	// ModeVisualLine selects the rows between the anchor and the cursor.
	ModeVisualLine
	// ModeSearch reads a search query below the grid.
	ModeSearch
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeEditingHeader:
		return "HEADER"
	case ModeVisualCell:
		return "VISUAL"
	case ModeVisualLine:
		return "VISUAL LINE"
	case ModeSearch:
		return "SEARCH"
	default:
		return "UNKNOWN"
	}
}

// IsVisual reports whether the mode is one of the visual selection modes.
func (m Mode) IsVisual() bool {
	return m == ModeVisualCell || m == ModeVisualLine
}

// IsEditing reports whether the mode hosts an edit surface.
func (m Mode) IsEditing() bool {
	return m == ModeInsert || m == ModeEditingHeader || m == ModeSearch
}
