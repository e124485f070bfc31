package vimtable

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimgrid/internal/grid"
)

var (
	nameAge = []string{"Name", "Age"}
	alice   = []string{"Alice", "25"}
	bob     = []string{"Bob", "31"}
	carol   = []string{"Carol", "47"}
)

func TestNew_RequiresColumns(t *testing.T) {
	_, err := New(Config{})
	require.ErrorIs(t, err, grid.ErrNoColumns)
}

func TestNew_Defaults(t *testing.T) {
	m, err := New(Config{Columns: nameAge})
	require.NoError(t, err)

	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, Position{}, m.Cursor())
	assert.Equal(t, 0, m.RowCount())
	assert.Equal(t, 2, m.ColumnCount())
	assert.Equal(t, defaultMaxCellWidth, m.config.MaxCellWidth)
	assert.Equal(t, "vimtable", m.config.ZonePrefix)
	assert.Len(t, m.ID(), 8)
	assert.Equal(t, PayloadEmpty, m.Register().Kind)
	assert.False(t, m.Focused())
}

func TestNew_InstancesAreIndependent(t *testing.T) {
	a := newTestModel(t, nameAge, alice)
	b := newTestModel(t, nameAge, bob)
	require.NotEqual(t, a.ID(), b.ID())

	a, _ = sendKeys(a, "y", "y")
	require.Equal(t, PayloadRow, a.Register().Kind)
	require.Equal(t, PayloadEmpty, b.Register().Kind, "registers are per table")
}

// ============================================================================
// Scenarios
// ============================================================================

func TestScenario_DeleteOnlyRow(t *testing.T) {
	m := newTestModel(t, nameAge, alice)

	m, _ = sendKeys(m, "d", "d")

	require.Equal(t, 0, m.RowCount())
	require.Equal(t, Position{Row: 0, Col: 0}, m.Cursor())
	require.Equal(t, 2, m.ColumnCount())
}

func TestScenario_YankPasteRow(t *testing.T) {
	m := newTestModel(t, nameAge, alice)

	m, _ = sendKeys(m, "y", "y", "p")

	require.Equal(t, 2, m.RowCount())
	row := m.Rows()[1]
	require.Equal(t, []string{"Alice", "25"}, row)
	require.Equal(t, 1, m.Cursor().Row, "cursor moves to the pasted row")
}

func TestScenario_DeleteLastColumnRefused(t *testing.T) {
	m := newTestModel(t, []string{"Name"}, []string{"Alice"})

	m, msgs := sendKeys(m, "d", "c")

	require.Equal(t, 1, m.ColumnCount())
	require.Equal(t, [][]string{{"Alice"}}, m.Rows())
	refused := msgsOfType[RefusedMsg](msgs)
	require.Len(t, refused, 1)
	require.Equal(t, "column.delete", refused[0].CommandID)
	require.Equal(t, grid.ErrLastColumn.Error(), refused[0].Reason)
	require.Equal(t, m.ID(), refused[0].TableID)
}

func TestScenario_UpdateColumnExternalTooShort(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob, carol)
	before := m.Rows()

	cmd, err := m.UpdateColumnExternal(1, []string{"X"})

	require.ErrorIs(t, err, grid.ErrColumnTooShort)
	require.Nil(t, cmd)
	require.Equal(t, before, m.Rows())
}

// ============================================================================
// Motions
// ============================================================================

func TestMotion_BlockedAtEdges(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob)

	m, _ = sendKeys(m, "k", "h")
	require.Equal(t, Position{}, m.Cursor())

	m, _ = sendKeys(m, "j", "j", "j", "l", "l", "l")
	require.Equal(t, Position{Row: 1, Col: 1}, m.Cursor())

	m, _ = sendKeys(m, "<up>", "<left>")
	require.Equal(t, Position{}, m.Cursor())

	m, _ = sendKeys(m, "<down>", "<right>")
	require.Equal(t, Position{Row: 1, Col: 1}, m.Cursor())
}

func TestMotion_EmptyGridMovesAcrossColumnsOnly(t *testing.T) {
	m := newTestModel(t, nameAge)

	m, _ = sendKeys(m, "j", "l")
	require.Equal(t, Position{Row: 0, Col: 1}, m.Cursor())
}

// ============================================================================
// Row and column commands
// ============================================================================

func TestInsertRowBelow(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob)

	m, _ = sendKeys(m, "l", "o")

	require.Equal(t, [][]string{alice, {"", ""}, bob}, m.Rows())
	require.Equal(t, Position{Row: 1, Col: 1}, m.Cursor(), "column unchanged")
}

func TestInsertRowAbove(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob)

	m, _ = sendKeys(m, "j", "O")

	require.Equal(t, [][]string{alice, {"", ""}, bob}, m.Rows())
	require.Equal(t, 1, m.Cursor().Row)
}

func TestInsertRow_EmptyGrid(t *testing.T) {
	m := newTestModel(t, nameAge)

	m, _ = sendKeys(m, "o")

	require.Equal(t, [][]string{{"", ""}}, m.Rows())
	require.Equal(t, Position{}, m.Cursor())
}

func TestInsertColumnRight(t *testing.T) {
	m := newTestModel(t, nameAge, alice)

	m, _ = sendKeys(m, "a")

	require.Equal(t, []string{"Name", "Col3", "Age"}, m.ColumnNames())
	require.Equal(t, [][]string{{"Alice", "", "25"}}, m.Rows())
	require.Equal(t, 1, m.Cursor().Col)
}

func TestAppendColumn(t *testing.T) {
	m := newTestModel(t, nameAge, alice)

	m, _ = sendKeys(m, "A")

	require.Equal(t, []string{"Name", "Age", "Col3"}, m.ColumnNames())
	require.Equal(t, [][]string{{"Alice", "25", ""}}, m.Rows())
	require.Equal(t, 2, m.Cursor().Col)
}

func TestDeleteColumn_ClampsCursor(t *testing.T) {
	m := newTestModel(t, nameAge, alice)

	m, msgs := sendKeys(m, "l", "d", "c")

	require.Empty(t, msgsOfType[RefusedMsg](msgs))
	require.Equal(t, []string{"Name"}, m.ColumnNames())
	require.Equal(t, [][]string{{"Alice"}}, m.Rows())
	require.Equal(t, Position{}, m.Cursor())
}

func TestDeleteRow_ClampsCursorToLastRow(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob)

	m, _ = sendKeys(m, "j", "d", "d")

	require.Equal(t, [][]string{alice}, m.Rows())
	require.Equal(t, 0, m.Cursor().Row)
}

func TestDeleteRow_EmptyGridIsNoop(t *testing.T) {
	m := newTestModel(t, nameAge)

	m, msgs := sendKeys(m, "d", "d")

	require.Equal(t, 0, m.RowCount())
	require.Empty(t, msgs)
}

func TestRefresh_KeepsData(t *testing.T) {
	m := newTestModel(t, nameAge, alice)
	before := m.Rows()

	m, msgs := sendKeys(m, "r")

	require.Equal(t, before, m.Rows())
	require.Empty(t, msgs)
}

// ============================================================================
// Yank and paste
// ============================================================================

func TestPaste_EmptyRegisterIsNoop(t *testing.T) {
	m := newTestModel(t, nameAge, alice)

	m, msgs := sendKeys(m, "p")

	require.Equal(t, [][]string{alice}, m.Rows())
	require.Empty(t, msgs)
}

func TestPaste_RowFitsColumnCount(t *testing.T) {
	m := newTestModel(t, nameAge, alice)
	m, _ = sendKeys(m, "y", "y", "A")

	m, _ = sendKeys(m, "p")
	require.Equal(t, []string{"Alice", "25", ""}, m.Rows()[1], "padded")

	m, _ = sendKeys(m, "y", "y", "d", "c", "d", "c", "p")
	require.Equal(t, 1, m.ColumnCount())
	require.Equal(t, []string{"Alice"}, m.Rows()[len(m.Rows())-1], "truncated")
}

func TestPaste_CellNotifies(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob)
	m, _ = sendKeys(m, "v", "y")
	require.Equal(t, Payload{Kind: PayloadCell, Value: "Alice"}, m.Register())

	m, msgs := sendKeys(m, "j", "p")

	require.Equal(t, "Alice", m.Rows()[1][0])
	require.Equal(t, []CellEditedMsg{{TableID: m.ID(), Row: 1, Col: 0, Old: "Bob", New: "Alice"}},
		msgsOfType[CellEditedMsg](msgs))
}

func TestPaste_CellSameValueSilent(t *testing.T) {
	m := newTestModel(t, nameAge, alice)
	m, _ = sendKeys(m, "v", "y")

	_, msgs := sendKeys(m, "p")

	require.Empty(t, msgsOfType[CellEditedMsg](msgs))
}

func TestYankRow_EmptyGridSkipped(t *testing.T) {
	m := newTestModel(t, nameAge)

	m, _ = sendKeys(m, "y", "y")

	require.Equal(t, PayloadEmpty, m.Register().Kind)
}

// ============================================================================
// Visual modes
// ============================================================================

func TestVisualCell_SelectionFollowsCursor(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob)

	m, _ = sendKeys(m, "v", "j", "l")

	require.Equal(t, ModeVisualCell, m.Mode())
	require.Equal(t, Position{}, m.Anchor())
	start, end := m.SelectionBounds()
	require.Equal(t, Position{Row: 1, Col: 1}, start)
	require.Equal(t, start, end)

	m, _ = sendKeys(m, "y")
	require.Equal(t, ModeNormal, m.Mode())
	require.Equal(t, Payload{Kind: PayloadCell, Value: "31"}, m.Register())
}

func TestVisualLine_YanksAnchorRow(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob, carol)

	m, _ = sendKeys(m, "j", "V", "j")

	start, end := m.SelectionBounds()
	require.Equal(t, Position{Row: 1, Col: 0}, start)
	require.Equal(t, Position{Row: 2, Col: 1}, end)

	m, _ = sendKeys(m, "y")
	require.Equal(t, ModeNormal, m.Mode())
	require.Equal(t, Payload{Kind: PayloadRow, Values: bob}, m.Register())
	require.Equal(t, 2, m.Cursor().Row, "cursor stays where it was")
}

func TestVisual_EscapeLeavesRegister(t *testing.T) {
	for _, key := range []string{"v", "V"} {
		t.Run(key, func(t *testing.T) {
			m := newTestModel(t, nameAge, alice)

			m, _ = sendKeys(m, key, "<escape>")

			require.Equal(t, ModeNormal, m.Mode())
			require.Equal(t, PayloadEmpty, m.Register().Kind)
			start, end := m.SelectionBounds()
			require.Equal(t, Position{}, start)
			require.Equal(t, Position{}, end)
		})
	}
}

func TestVisual_EmptyGridSkipped(t *testing.T) {
	m := newTestModel(t, nameAge)

	m, msgs := sendKeys(m, "v")
	require.Equal(t, ModeNormal, m.Mode())
	require.Empty(t, msgs)

	m, _ = sendKeys(m, "V")
	require.Equal(t, ModeNormal, m.Mode())
}

func TestVisual_StructuralKeysIgnored(t *testing.T) {
	m := newTestModel(t, nameAge, alice)

	m, _ = sendKeys(m, "v", "o", "p", "a")

	require.Equal(t, ModeVisualCell, m.Mode())
	require.Equal(t, [][]string{alice}, m.Rows())
	require.Equal(t, 2, m.ColumnCount())
}

func TestVisual_DeleteEndsSelection(t *testing.T) {
	for _, key := range []string{"v", "V"} {
		t.Run(key, func(t *testing.T) {
			m := newTestModel(t, nameAge, alice, bob)

			m, msgs := sendKeys(m, key, "j", "d")

			require.Equal(t, ModeNormal, m.Mode())
			require.Equal(t, [][]string{alice, bob}, m.Rows(), "nothing is deleted")
			require.Equal(t, PayloadEmpty, m.Register().Kind)
			require.Equal(t, "", m.PendingKeys(), "d does not start a prefix")
			require.Len(t, msgsOfType[ModeChangeMsg](msgs), 2)
		})
	}
}

// ============================================================================
// Mode change notifications
// ============================================================================

func TestModeChangeMsg(t *testing.T) {
	m := newTestModel(t, nameAge, alice)

	m, msgs := sendKeys(m, "v")
	changes := msgsOfType[ModeChangeMsg](msgs)
	require.Equal(t, []ModeChangeMsg{{TableID: m.ID(), Mode: ModeVisualCell, Previous: ModeNormal}}, changes)

	_, msgs = sendKeys(m, "<escape>")
	changes = msgsOfType[ModeChangeMsg](msgs)
	require.Equal(t, []ModeChangeMsg{{TableID: m.ID(), Mode: ModeNormal, Previous: ModeVisualCell}}, changes)
}

func TestModeChange_NoMessageWithoutChange(t *testing.T) {
	m := newTestModel(t, nameAge, alice)

	_, msgs := sendKeys(m, "j", "<escape>", "o")

	require.Empty(t, msgsOfType[ModeChangeMsg](msgs))
}

type customModeMsg struct {
	mode, previous Mode
}

func TestOnModeChange_CustomMessage(t *testing.T) {
	m := newTestModelWithConfig(t, Config{
		Columns: nameAge,
		OnModeChange: func(mode, previous Mode) tea.Msg {
			return customModeMsg{mode: mode, previous: previous}
		},
	}, alice)

	_, msgs := sendKeys(m, "V")

	require.Empty(t, msgsOfType[ModeChangeMsg](msgs))
	require.Equal(t, []customModeMsg{{mode: ModeVisualLine, previous: ModeNormal}}, msgsOfType[customModeMsg](msgs))
}

// ============================================================================
// Pending prefixes
// ============================================================================

func TestPending_BuffersPrefix(t *testing.T) {
	m := newTestModel(t, nameAge, alice)

	m, msgs := sendKeys(m, "d")

	require.Equal(t, "d", m.PendingKeys())
	require.Empty(t, msgs, "no timeout armed by default")
	require.Equal(t, [][]string{alice}, m.Rows())
}

func TestPending_UnknownContinuationIsDropped(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob)

	m, _ = sendKeys(m, "d", "j")

	require.Equal(t, "", m.PendingKeys())
	require.Equal(t, Position{}, m.Cursor(), "j is not replayed as a motion")
	require.Equal(t, 2, m.RowCount())
}

func TestPending_CrossOperatorIsDropped(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob)

	m, _ = sendKeys(m, "y", "d", "d")

	require.Equal(t, "d", m.PendingKeys(), "second d starts a fresh prefix")
	require.Equal(t, 2, m.RowCount())
	require.Equal(t, PayloadEmpty, m.Register().Kind)
}

func TestPending_EscapeCancels(t *testing.T) {
	m := newTestModel(t, nameAge, alice)

	m, _ = sendKeys(m, "d", "<escape>", "d")

	require.Equal(t, "d", m.PendingKeys())
	require.Equal(t, 1, m.RowCount())
}

func TestPending_Timeout(t *testing.T) {
	m := newTestModelWithConfig(t, Config{Columns: nameAge, PendingTimeout: 5 * time.Millisecond}, alice)

	m, msgs := sendKeys(m, "d")
	timeouts := msgsOfType[pendingTimeoutMsg](msgs)
	require.Len(t, timeouts, 1)
	require.Equal(t, m.ID(), timeouts[0].tableID)

	m, _ = m.Update(timeouts[0])
	require.Equal(t, "", m.PendingKeys())

	m, _ = sendKeys(m, "d")
	require.Equal(t, 1, m.RowCount(), "the timed out d does not complete dd")
}

func TestPending_StaleTimeoutIgnored(t *testing.T) {
	m := newTestModelWithConfig(t, Config{Columns: nameAge, PendingTimeout: 5 * time.Millisecond}, alice)

	m, msgs := sendKeys(m, "d")
	stale := msgsOfType[pendingTimeoutMsg](msgs)
	require.Len(t, stale, 1)

	m, _ = sendKeys(m, "<escape>", "d")
	m, _ = m.Update(stale[0])

	require.Equal(t, "d", m.PendingKeys(), "a newer prefix survives an old timeout")
}

func TestPending_TimeoutForOtherTableIgnored(t *testing.T) {
	m := newTestModel(t, nameAge, alice)
	m, _ = sendKeys(m, "d")

	m, _ = m.Update(pendingTimeoutMsg{tableID: "other", generation: m.pendingBuilder.Generation()})

	require.Equal(t, "d", m.PendingKeys())
}

func TestBlur_ClearsPending(t *testing.T) {
	m := newTestModel(t, nameAge, alice)
	m, _ = sendKeys(m, "y")

	m.Blur()

	require.False(t, m.Focused())
	require.True(t, m.pendingBuilder.IsEmpty())
}

// ============================================================================
// External updates
// ============================================================================

func TestSetData_ResetsState(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob)
	m, _ = sendKeys(m, "j", "l", "V", "d")

	require.NoError(t, m.SetData([][]string{carol}))

	require.Equal(t, [][]string{carol}, m.Rows())
	require.Equal(t, nameAge, m.ColumnNames(), "headers kept")
	require.Equal(t, Position{}, m.Cursor())
	require.Equal(t, ModeNormal, m.Mode())
	require.Equal(t, "", m.PendingKeys())
}

func TestSetData_RejectsBadShape(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob)
	m, _ = sendKeys(m, "j")

	err := m.SetData([][]string{carol, {"only"}})

	require.ErrorIs(t, err, grid.ErrRowShape)
	require.Equal(t, [][]string{alice, bob}, m.Rows())
	require.Equal(t, 1, m.Cursor().Row, "cursor untouched on rejection")
}

func TestUpdateRowExternal(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob)

	cmd, err := m.UpdateRowExternal(1, []string{"Bob", "32"})
	require.NoError(t, err)

	require.Equal(t, bob[0], m.Rows()[1][0])
	require.Equal(t, "32", m.Rows()[1][1])
	require.Equal(t, []tea.Msg{CellEditedMsg{TableID: m.ID(), Row: 1, Col: 1, Old: "31", New: "32"}}, collectMsgs(cmd))
}

func TestUpdateRowExternal_Rejections(t *testing.T) {
	m := newTestModel(t, nameAge, alice)

	_, err := m.UpdateRowExternal(0, []string{"x"})
	require.ErrorIs(t, err, grid.ErrRowShape)

	cmd, err := m.UpdateRowExternal(9, []string{"x", "y"})
	require.NoError(t, err, "out-of-range rows are ignored")
	require.Nil(t, cmd)

	cmd, err = m.UpdateRowExternal(9, []string{"x"})
	require.NoError(t, err, "the range check comes before the shape check")
	require.Nil(t, cmd)
	require.Equal(t, [][]string{alice}, m.Rows())
}

func TestAppendRowExternal(t *testing.T) {
	var calls int
	m := newTestModelWithConfig(t, Config{
		Columns:    nameAge,
		OnCellEdit: func(int, int, string, string) { calls++ },
	}, alice)

	require.Equal(t, 1, m.AppendRowExternal("Bob", "31", "extra"))
	require.Equal(t, 2, m.AppendRowExternal("Carol"))

	require.Equal(t, [][]string{alice, bob, {"Carol", ""}}, m.Rows())
	require.Equal(t, Position{}, m.Cursor())
	require.Zero(t, calls, "structural changes are silent")
}

func TestAppendRowExternal_EmptyGrid(t *testing.T) {
	m := newTestModel(t, nameAge)

	require.Equal(t, 0, m.AppendRowExternal())
	require.Equal(t, [][]string{{"", ""}}, m.Rows())
}

func TestClearData(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob)
	m, _ = sendKeys(m, "j", "V")

	m.ClearData()

	require.Zero(t, m.RowCount())
	require.Equal(t, nameAge, m.ColumnNames())
	require.Equal(t, ModeNormal, m.Mode())
	require.Equal(t, Position{}, m.Cursor())
}

func TestUpdateColumnExternal(t *testing.T) {
	m := newTestModel(t, nameAge, alice, bob)

	cmd, err := m.UpdateColumnExternal(1, []string{"25", "40", "ignored"})
	require.NoError(t, err)

	require.Equal(t, [][]string{alice, {"Bob", "40"}}, m.Rows())
	msgs := collectMsgs(cmd)
	require.Equal(t, []tea.Msg{CellEditedMsg{TableID: m.ID(), Row: 1, Col: 1, Old: "31", New: "40"}}, msgs)
}

func TestUpdateColumnExternal_OutOfRangeIgnored(t *testing.T) {
	m := newTestModel(t, nameAge, alice)

	cmd, err := m.UpdateColumnExternal(5, []string{"x"})

	require.NoError(t, err)
	require.Nil(t, cmd)
}

func TestUpdateCellExternal(t *testing.T) {
	var calls int
	m := newTestModelWithConfig(t, Config{
		Columns:    nameAge,
		OnCellEdit: func(int, int, string, string) { calls++ },
	}, alice)

	cmd := m.UpdateCellExternal(0, 0, "Alicia")
	require.Equal(t, "Alicia", m.Rows()[0][0])
	require.Equal(t, 1, calls)
	require.Len(t, msgsOfType[CellEditedMsg](collectMsgs(cmd)), 1)

	require.Nil(t, m.UpdateCellExternal(0, 0, "Alicia"), "same value")
	require.Nil(t, m.UpdateCellExternal(3, 0, "x"), "out of range")
	require.Equal(t, 1, calls)
}

// ============================================================================
// Key handling
// ============================================================================

func TestKeyToString(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, "j"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("jk")}, ""},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j"), Alt: true}, ""},
		{tea.KeyMsg{Type: tea.KeyEscape}, "<escape>"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "<enter>"},
		{tea.KeyMsg{Type: tea.KeyBackspace}, "<backspace>"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "<left>"},
		{tea.KeyMsg{Type: tea.KeyDown}, "<down>"},
		{tea.KeyMsg{Type: tea.KeySpace}, "<space>"},
		{tea.KeyMsg{Type: tea.KeyCtrlA}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			require.Equal(t, tt.want, keyToString(tt.msg))
		})
	}
}

func TestModeIndicator(t *testing.T) {
	m := newTestModel(t, nameAge, alice)
	require.Equal(t, "[NORMAL]", m.ModeIndicator())

	m, _ = sendKeys(m, "V")
	require.Equal(t, "[VISUAL LINE]", m.ModeIndicator())
}

func TestHelpKeys_PerMode(t *testing.T) {
	m := newTestModel(t, nameAge, alice)
	require.Len(t, m.HelpKeys(), 22)

	m, _ = sendKeys(m, "v")
	require.Len(t, m.HelpKeys(), 9)

	m, _ = sendKeys(m, "<escape>", "i")
	keys := m.HelpKeys()
	require.Len(t, keys, 2)
	require.Equal(t, "commit", keys[0].Help().Desc)

	m, _ = sendKeys(m, "<escape>", "/")
	require.Len(t, m.HelpKeys(), 2)
}
