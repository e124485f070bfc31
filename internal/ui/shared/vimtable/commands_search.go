package vimtable

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vimgrid/internal/log"
)

// SearchMsg reports the outcome of a search or a jump between its matches.
type SearchMsg struct {
	TableID string
	Query   string
	Matches int
}

// findMatches returns every cell containing query, ignoring case, in row-major order.
func (m Model) findMatches(query string) []Position {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)
	var out []Position
	for r, row := range m.store.Rows() {
		for c, value := range row {
			if strings.Contains(strings.ToLower(value), needle) {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// runSearch remembers query and moves the cursor to its first match.
// An empty query is ignored and keeps the previous one.
func (m *Model) runSearch(query string) {
	if query == "" {
		return
	}
	m.lastSearch = query
	matches := m.findMatches(query)
	if len(matches) > 0 {
		m.cursor = matches[0]
	}
	log.Debug(log.CatMode, "search", "table", m.id, "query", query, "matches", len(matches))
	m.queueSearchResult(len(matches))
}

// stepSearch moves to the next (dir > 0) or previous match of the last query,
// relative to the cursor and wrapping at the grid edges. Matches are recomputed
// every time so edits since the search are honoured.
func (m *Model) stepSearch(dir int) {
	matches := m.findMatches(m.lastSearch)
	m.queueSearchResult(len(matches))
	if len(matches) == 0 {
		return
	}

	before := func(a, b Position) bool {
		return a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col)
	}
	if dir > 0 {
		for _, p := range matches {
			if before(m.cursor, p) {
				m.cursor = p
				return
			}
		}
		m.cursor = matches[0]
		return
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if before(matches[i], m.cursor) {
			m.cursor = matches[i]
			return
		}
	}
	m.cursor = matches[len(matches)-1]
}

func (m *Model) queueSearchResult(n int) {
	msg := SearchMsg{TableID: m.id, Query: m.lastSearch, Matches: n}
	m.queue(func() tea.Msg { return msg })
}

// LastSearch returns the most recent search query, or "" when none ran.
func (m Model) LastSearch() string {
	return m.lastSearch
}

// ============================================================================
// Search Commands
// ============================================================================

// EnterSearchCommand opens the search prompt (/).
type EnterSearchCommand struct {
	ModeEntryBase
}

// Execute enters Search mode and opens the query editor.
func (c *EnterSearchCommand) Execute(m *Model) ExecuteResult {
	m.mode = ModeSearch
	m.pendingBuilder.Clear()
	m.openEditor()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EnterSearchCommand) Keys() []string {
	return []string{"/"}
}

// Mode returns the mode this command operates in.
func (c *EnterSearchCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterSearchCommand) ID() string {
	return "search.start"
}

// SearchBackspaceCommand deletes a query character, or leaves Search mode
// when the query is already empty.
type SearchBackspaceCommand struct {
	ModeEntryBase
}

// Execute edits the query or cancels the search.
func (c *SearchBackspaceCommand) Execute(m *Model) ExecuteResult {
	if !m.editor.active {
		return Skipped
	}
	if m.editor.Value() == "" {
		m.closeEditor()
		m.mode = ModeNormal
		return Executed
	}
	m.queue(m.editor.update(tea.KeyMsg{Type: tea.KeyBackspace}))
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *SearchBackspaceCommand) Keys() []string {
	return []string{"<backspace>"}
}

// Mode returns the mode this command operates in.
func (c *SearchBackspaceCommand) Mode() Mode {
	return ModeSearch
}

// ID returns the hierarchical identifier for this command.
func (c *SearchBackspaceCommand) ID() string {
	return "search.backspace"
}

// SearchNextCommand jumps to the next match of the last search (n).
type SearchNextCommand struct {
	MotionBase
}

// Execute moves to the next match. Skipped when nothing was searched yet.
func (c *SearchNextCommand) Execute(m *Model) ExecuteResult {
	if m.lastSearch == "" {
		return Skipped
	}
	m.stepSearch(1)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *SearchNextCommand) Keys() []string {
	return []string{"n"}
}

// Mode returns the mode this command operates in.
func (c *SearchNextCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *SearchNextCommand) ID() string {
	return "search.next"
}

// SearchPreviousCommand jumps to the previous match of the last search (N).
type SearchPreviousCommand struct {
	MotionBase
}

// Execute moves to the previous match. Skipped when nothing was searched yet.
func (c *SearchPreviousCommand) Execute(m *Model) ExecuteResult {
	if m.lastSearch == "" {
		return Skipped
	}
	m.stepSearch(-1)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *SearchPreviousCommand) Keys() []string {
	return []string{"N"}
}

// Mode returns the mode this command operates in.
func (c *SearchPreviousCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *SearchPreviousCommand) ID() string {
	return "search.previous"
}
