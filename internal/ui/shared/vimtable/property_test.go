package vimtable

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// normalKeys are the keys a Normal-mode session is built from. Editing keys are
// left out so every step stays synchronous.
var normalKeys = []string{
	"h", "j", "k", "l", "<up>", "<down>", "g", "G", "n", "N",
	"o", "O", "a", "A", "d", "c", "y", "p", "r",
	"v", "V", "<escape>",
}

func drawRows(t *rapid.T, cols int) [][]string {
	n := rapid.IntRange(0, 6).Draw(t, "rows")
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = rapid.SliceOfN(rapid.StringMatching(`[a-z0-9]{0,6}`), cols, cols).Draw(t, "row")
	}
	return rows
}

func newPropertyModel(t *rapid.T) Model {
	cols := rapid.IntRange(1, 4).Draw(t, "cols")
	names := rapid.SliceOfN(rapid.StringMatching(`[A-Z][a-z]{0,5}`), cols, cols).Draw(t, "names")
	m, err := New(Config{Columns: names})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := m.SetData(drawRows(t, cols)); err != nil {
		t.Fatalf("SetData: %v", err)
	}
	m.SetSize(80, 10)
	return m
}

// checkInvariants asserts the shape and cursor invariants of the table.
func checkInvariants(t *rapid.T, m Model) {
	cols := m.ColumnCount()
	if cols < 1 {
		t.Fatalf("column count %d", cols)
	}
	if len(m.ColumnNames()) != cols {
		t.Fatalf("%d headers for %d columns", len(m.ColumnNames()), cols)
	}
	for i, row := range m.Rows() {
		if len(row) != cols {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), cols)
		}
	}

	c := m.Cursor()
	if m.RowCount() == 0 {
		if c.Row != 0 {
			t.Fatalf("cursor row %d on empty grid", c.Row)
		}
	} else if c.Row < 0 || c.Row >= m.RowCount() {
		t.Fatalf("cursor row %d outside %d rows", c.Row, m.RowCount())
	}
	if c.Col < 0 || c.Col >= cols {
		t.Fatalf("cursor col %d outside %d columns", c.Col, cols)
	}
}

func TestProperty_InvariantsHoldForAnyKeySequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := newPropertyModel(t)
		checkInvariants(t, m)

		keys := rapid.SliceOfN(rapid.SampledFrom(normalKeys), 1, 60).Draw(t, "keys")
		for _, k := range keys {
			m, _ = m.Update(keyMsg(k))
			checkInvariants(t, m)
		}
	})
}

func TestProperty_YankPasteRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := newPropertyModel(t)
		if m.RowCount() == 0 {
			m, _ = m.Update(keyMsg("o"))
		}
		row := rapid.IntRange(0, m.RowCount()-1).Draw(t, "row")
		for range row {
			m, _ = m.Update(keyMsg("j"))
		}
		want, _ := m.store.Row(row)
		before := m.RowCount()

		for _, k := range []string{"y", "y", "p"} {
			m, _ = m.Update(keyMsg(k))
		}

		if m.RowCount() != before+1 {
			t.Fatalf("row count %d, want %d", m.RowCount(), before+1)
		}
		got, _ := m.store.Row(row + 1)
		if len(got) != len(want) {
			t.Fatalf("pasted %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("pasted %v, want %v", got, want)
			}
		}
		if m.Cursor().Row != row+1 {
			t.Fatalf("cursor row %d, want %d", m.Cursor().Row, row+1)
		}
	})
}

func TestProperty_NotifiesOnlyRealChanges(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := newPropertyModel(t)
		var events []CellEditedMsg
		m.Subscribe(func(msg CellEditedMsg) { events = append(events, msg) })

		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for range steps {
			if m.RowCount() == 0 {
				m, _ = m.Update(keyMsg("o"))
				continue
			}
			row := rapid.IntRange(0, m.RowCount()-1).Draw(t, "row")
			col := rapid.IntRange(0, m.ColumnCount()-1).Draw(t, "col")
			value := rapid.StringMatching(`[ab]{0,2}`).Draw(t, "value")
			old, _ := m.Cell(row, col)

			events = events[:0]
			m.UpdateCellExternal(row, col, value)

			if old == value && len(events) != 0 {
				t.Fatalf("identical write to (%d,%d) notified %d times", row, col, len(events))
			}
			if old != value {
				if len(events) != 1 {
					t.Fatalf("change at (%d,%d) notified %d times", row, col, len(events))
				}
				if events[0].Old != old || events[0].New != value {
					t.Fatalf("event %+v for %q -> %q", events[0], old, value)
				}
			}
		}
	})
}

func TestProperty_ColumnsNeverDropToZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := newPropertyModel(t)
		cols := m.ColumnCount()
		deletes := rapid.IntRange(1, 8).Draw(t, "deletes")

		for i := range deletes {
			var msgs []tea.Msg
			m, msgs = sendKeys(m, "d", "c")
			refused := msgsOfType[RefusedMsg](msgs)
			if i >= cols-1 {
				if len(refused) != 1 || refused[0].CommandID != "column.delete" {
					t.Fatalf("dc #%d on one column: refusals %+v", i+1, refused)
				}
			} else if len(refused) != 0 {
				t.Fatalf("dc #%d with %d columns refused", i+1, cols-i)
			}
		}
		require.Equal(t, max(cols-deletes, 1), m.ColumnCount())
	})
}
