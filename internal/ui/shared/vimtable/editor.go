package vimtable

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vimgrid/internal/log"
	"github.com/zjrosen/vimgrid/internal/ui/modal"
)

// PromptRequest describes the value an editing collaborator is asked to edit.
type PromptRequest struct {
	Mode   Mode   // ModeInsert, ModeEditingHeader or ModeSearch
	Row    int    // Cursor row (unused for headers)
	Col    int    // Cursor column
	Column string // Current header name of Col
	Value  string // Current cell value, the header name, or "" for a search
}

// PromptFunc is a synchronous editing collaborator.
// It returns the committed text and true, or false to cancel.
type PromptFunc func(req PromptRequest) (string, bool)

// editSurface is the interactive editor hosted while an editing mode is active.
// Insert edits inline and Search reads a query line, both with a textinput;
// header edits use a modal dialog.
type editSurface struct {
	active  bool
	request PromptRequest
	input   textinput.Model
	dialog  modal.Model
}

func newEditSurface(req PromptRequest, width int) editSurface {
	e := editSurface{active: true, request: req}
	switch req.Mode {
	case ModeInsert:
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = max(width-1, 1)
		ti.SetValue(req.Value)
		ti.CursorEnd()
		ti.Focus()
		e.input = ti
	case ModeSearch:
		ti := textinput.New()
		ti.Prompt = "/"
		ti.Width = max(width-2, 1)
		ti.Focus()
		e.input = ti
	case ModeEditingHeader:
		e.dialog = modal.New(modal.Config{
			Title: "Rename column",
			Label: "Header",
			Value: req.Value,
		})
	}
	return e
}

// Value returns the text currently in the editor.
func (e editSurface) Value() string {
	if e.request.Mode == ModeEditingHeader {
		return e.dialog.Value()
	}
	return e.input.Value()
}

func (e *editSurface) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if e.request.Mode == ModeEditingHeader {
		e.dialog, cmd = e.dialog.Update(msg)
	} else {
		e.input, cmd = e.input.Update(msg)
	}
	return cmd
}

func (e editSurface) init() tea.Cmd {
	if e.request.Mode == ModeEditingHeader {
		return e.dialog.Init()
	}
	return textinput.Blink
}

// openEditor starts editing the cursor cell or header for the current mode.
// With a Prompt configured the edit completes synchronously and the mode
// returns to Normal before this returns.
func (m *Model) openEditor() {
	names := m.store.ColumnNames()
	req := PromptRequest{
		Mode:   m.mode,
		Row:    m.cursor.Row,
		Col:    m.cursor.Col,
		Column: names[m.cursor.Col],
	}
	switch m.mode {
	case ModeInsert:
		req.Value, _ = m.store.Cell(req.Row, req.Col)
	case ModeEditingHeader:
		req.Value = req.Column
	}

	if m.config.Prompt != nil {
		if value, ok := m.config.Prompt(req); ok {
			m.commitEdit(req, value)
			m.layout()
		}
		m.mode = ModeNormal
		return
	}

	width := m.columnWidth(req.Col)
	if req.Mode == ModeSearch {
		width = m.width
	}
	m.editor = newEditSurface(req, width)
	m.editor.dialog.SetSize(m.width, m.height)
	m.queue(m.editor.init())
}

// commitEdit applies an edited value. Cell edits notify when the value changed;
// header edits are trimmed and an empty name is ignored. A search query runs.
func (m *Model) commitEdit(req PromptRequest, value string) {
	switch req.Mode {
	case ModeInsert:
		if change, ok := m.store.SetCell(req.Row, req.Col, value); ok {
			m.notify(change)
		}
	case ModeEditingHeader:
		name := strings.TrimSpace(value)
		if name == "" {
			log.Debug(log.CatGrid, "empty header ignored", "table", m.id, "col", req.Col)
			return
		}
		m.store.RenameColumn(req.Col, name)
	case ModeSearch:
		m.runSearch(value)
	}
}

func (m *Model) closeEditor() {
	m.editor = editSurface{}
}

// ============================================================================
// Edit Commands
// ============================================================================

// CommitEditCommand commits the edit surface and returns to Normal (Enter).
type CommitEditCommand struct {
	CommitBase
	mode Mode
}

// Execute commits the edited text.
func (c *CommitEditCommand) Execute(m *Model) ExecuteResult {
	if m.editor.active {
		m.commitEdit(m.editor.request, m.editor.Value())
	}
	m.closeEditor()
	m.mode = ModeNormal
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *CommitEditCommand) Keys() []string {
	return []string{"<enter>"}
}

// Mode returns the mode this command operates in.
func (c *CommitEditCommand) Mode() Mode {
	return c.mode
}

// ID returns the hierarchical identifier for this command.
func (c *CommitEditCommand) ID() string {
	return "edit.commit"
}

// CancelEditCommand discards the edit surface and returns to Normal (Escape).
type CancelEditCommand struct {
	ModeEntryBase
	mode Mode
}

// Execute discards the edited text.
func (c *CancelEditCommand) Execute(m *Model) ExecuteResult {
	m.closeEditor()
	m.mode = ModeNormal
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *CancelEditCommand) Keys() []string {
	return []string{"<escape>"}
}

// Mode returns the mode this command operates in.
func (c *CancelEditCommand) Mode() Mode {
	return c.mode
}

// ID returns the hierarchical identifier for this command.
func (c *CancelEditCommand) ID() string {
	return "edit.cancel"
}
