// Package keys contains the app-level keybinding definitions.
// Grid editing keys live with the table in vimtable.
package keys

import "github.com/charmbracelet/bubbles/key"

// AppKeyMap holds bindings the app shell handles itself.
type AppKeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Log       key.Binding
}

// App is the app shell keymap.
var App = AppKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "force quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Log: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "toggle log tail"),
	),
}

// HelpMap adapts a set of table bindings plus the app bindings to help.KeyMap.
type HelpMap struct {
	Table []key.Binding
}

// ShortHelp returns the one-line help: app keys only.
func (h HelpMap) ShortHelp() []key.Binding {
	return []key.Binding{App.Help, App.Quit}
}

// FullHelp returns the table bindings in rows of four, then the app keys.
func (h HelpMap) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for start := 0; start < len(h.Table); start += 4 {
		end := min(start+4, len(h.Table))
		groups = append(groups, h.Table[start:end])
	}
	return append(groups, []key.Binding{App.Help, App.Log, App.Quit, App.ForceQuit})
}
