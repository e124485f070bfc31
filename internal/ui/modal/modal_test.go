package modal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func typeRunes(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNew_InitialValue(t *testing.T) {
	m := New(Config{Title: "Rename column", Label: "Header", Value: "Name"})

	require.Equal(t, "Name", m.Value())
	require.NotNil(t, m.Init())
}

func TestUpdate_TypingAppendsAtEnd(t *testing.T) {
	m := New(Config{Value: "Na"})
	m = typeRunes(m, "me")

	require.Equal(t, "Name", m.Value())
}

func TestUpdate_Backspace(t *testing.T) {
	m := New(Config{Value: "Ages"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	require.Equal(t, "Age", m.Value())
}

func TestUpdate_MaxLength(t *testing.T) {
	m := New(Config{MaxLength: 3})
	m = typeRunes(m, "abcdef")

	require.Equal(t, "abc", m.Value())
}

func TestUpdate_WindowSize(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	require.Equal(t, 100, m.width)
	require.Equal(t, 30, m.height)
}

func TestView_ContainsTitleAndLabel(t *testing.T) {
	view := New(Config{Title: "Rename column", Label: "Header", Value: "Age"}).View()

	require.Contains(t, view, "Rename column")
	require.Contains(t, view, "Header")
	require.Contains(t, view, "Age")
	require.Contains(t, view, "╭")
}

func TestView_DefaultLabel(t *testing.T) {
	require.Contains(t, New(Config{Title: "T"}).View(), "Input")
}

func TestOverlay_Centered(t *testing.T) {
	m := New(Config{Title: "Rename column", Value: "Age"})
	m.SetSize(80, 24)
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")

	lines := strings.Split(m.Overlay(bg), "\n")
	require.Len(t, lines, 24)
	require.Equal(t, strings.Repeat(".", 80), lines[0])
	require.Equal(t, strings.Repeat(".", 80), lines[23])
	require.Contains(t, strings.Join(lines, "\n"), "Rename column")
}
