package vimtable

import "github.com/charmbracelet/bubbles/key"

// KeyMap documents the table's bindings for help views.
// Dispatch never reads it; the command registries are the source of truth.
type KeyMap struct {
	Up, Down, Left, Right key.Binding
	Top, Bottom           key.Binding

	Insert     key.Binding
	EditHeader key.Binding
	Visual     key.Binding
	VisualLine key.Binding

	RowBelow     key.Binding
	RowAbove     key.Binding
	ColumnRight  key.Binding
	ColumnAppend key.Binding
	DeleteRow    key.Binding
	DeleteColumn key.Binding

	YankRow key.Binding
	Yank    key.Binding
	Paste   key.Binding
	Refresh key.Binding

	Search    key.Binding
	NextMatch key.Binding
	PrevMatch key.Binding
	EndVisual key.Binding

	Commit key.Binding
	Escape key.Binding
}

// DefaultKeyMap returns the table bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
		Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),

		Top:    key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "first row")),
		Bottom: key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last row")),

		Insert:     key.NewBinding(key.WithKeys("i", "enter"), key.WithHelp("i", "edit cell")),
		EditHeader: key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "edit header")),
		Visual:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "select cell")),
		VisualLine: key.NewBinding(key.WithKeys("V"), key.WithHelp("V", "select rows")),

		RowBelow:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "row below")),
		RowAbove:     key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "row above")),
		ColumnRight:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "column right")),
		ColumnAppend: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "append column")),
		DeleteRow:    key.NewBinding(key.WithKeys("d"), key.WithHelp("dd", "delete row")),
		DeleteColumn: key.NewBinding(key.WithKeys("d"), key.WithHelp("dc", "delete column")),

		YankRow: key.NewBinding(key.WithKeys("y"), key.WithHelp("yy", "yank row")),
		Yank:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank selection")),
		Paste:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "redraw")),

		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextMatch: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
		PrevMatch: key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "previous match")),
		EndVisual: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "end selection")),

		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// HelpKeys returns the bindings that apply in the current mode.
func (m Model) HelpKeys() []key.Binding {
	k := DefaultKeyMap()
	switch m.mode {
	case ModeInsert, ModeEditingHeader, ModeSearch:
		return []key.Binding{k.Commit, k.Escape}
	case ModeVisualCell, ModeVisualLine:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom, k.Yank, k.EndVisual, k.Escape}
	default:
		return []key.Binding{
			k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom,
			k.Insert, k.EditHeader, k.Visual, k.VisualLine,
			k.RowBelow, k.RowAbove, k.ColumnRight, k.ColumnAppend,
			k.DeleteRow, k.DeleteColumn, k.YankRow, k.Paste, k.Refresh,
			k.Search, k.NextMatch, k.PrevMatch,
		}
	}
}
