package vimtable

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// newTestModel creates a focused 80x24 table with the given headers and rows.
func newTestModel(t *testing.T, cols []string, rows ...[]string) Model {
	t.Helper()
	return newTestModelWithConfig(t, Config{Columns: cols}, rows...)
}

// newTestModelWithConfig is newTestModel with extra configuration.
func newTestModelWithConfig(t *testing.T, cfg Config, rows ...[]string) Model {
	t.Helper()
	m, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, m.SetData(rows))
	m.SetSize(80, 24)
	m.Focus()
	return m
}

// keyMsg converts a registry key string ("j", "<escape>") into a tea.KeyMsg.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "<escape>":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "<enter>":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "<backspace>":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "<left>":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "<right>":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "<up>":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "<down>":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// sendKeys feeds keys through Update and returns every message the resulting
// commands produced.
func sendKeys(m Model, keys ...string) (Model, []tea.Msg) {
	var msgs []tea.Msg
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(keyMsg(k))
		msgs = append(msgs, collectMsgs(cmd)...)
	}
	return m, msgs
}

// typeText sends every rune of s as its own key press.
func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// collectMsgs runs cmd and flattens batches. Commands that block (cursor blink
// and timeout ticks) are abandoned after a short wait.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(50 * time.Millisecond):
		return nil
	}

	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collectMsgs(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

// msgsOfType filters msgs down to those of type T.
func msgsOfType[T any](msgs []tea.Msg) []T {
	var out []T
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// recordingClipboard captures clipboard writes.
type recordingClipboard struct {
	writes []string
	err    error
}

func (c *recordingClipboard) WriteAll(text string) error {
	c.writes = append(c.writes, text)
	return c.err
}
