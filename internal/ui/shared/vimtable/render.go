package vimtable

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/vimgrid/internal/ui/styles"
)

const (
	minColumnWidth  = 3
	headerLines     = 2 // header row + rule
	columnSeparator = "│"
	ruleCross       = "┼"
	ruleLine        = "─"
	ellipsis        = "…"
)

// layout rebuilds column widths from the grid store.
func (m *Model) layout() {
	cols := m.store.ColumnNames()
	rows := m.store.Rows()
	widths := make([]int, len(cols))
	for c, name := range cols {
		w := runewidth.StringWidth(name)
		for _, row := range rows {
			w = max(w, runewidth.StringWidth(sanitizeCell(row[c])))
		}
		widths[c] = max(min(w, m.config.MaxCellWidth), minColumnWidth)
	}
	m.widths = widths
}

// columnWidth returns the rendered content width of a column.
func (m Model) columnWidth(col int) int {
	if col < 0 || col >= len(m.widths) {
		return minColumnWidth
	}
	return m.widths[col]
}

// bodyHeight returns how many data rows fit, or 0 when the height is unbounded.
func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-headerLines-m.footerLines(), 1)
}

// footerLines is 1 while the search line is shown.
func (m Model) footerLines() int {
	if m.searching() {
		return 1
	}
	return 0
}

func (m Model) searching() bool {
	return m.editor.active && m.editor.request.Mode == ModeSearch
}

// visibleRows returns the half-open range of data rows currently on screen.
func (m Model) visibleRows() (first, last int) {
	rows := m.store.RowCount()
	h := m.bodyHeight()
	if h == 0 {
		return 0, rows
	}
	first = min(m.offset, rows)
	return first, min(first+h, rows)
}

// ensureCursorVisible adjusts the scroll offset so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	h := m.bodyHeight()
	if h == 0 {
		m.offset = 0
		return
	}
	if m.cursor.Row < m.offset {
		m.offset = m.cursor.Row
	}
	if m.cursor.Row >= m.offset+h {
		m.offset = m.cursor.Row - h + 1
	}
	m.offset = max(min(m.offset, m.store.RowCount()-h), 0)
}

// View renders the header, a rule and the visible rows, followed by the
// search line while searching. The header editor, when open, is drawn over the grid.
func (m Model) View() string {
	var lines []string
	lines = append(lines, m.renderHeader(), m.renderRule())

	if m.store.RowCount() == 0 {
		empty := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true)
		lines = append(lines, empty.Render(" no rows, press o to add one"))
	}
	first, last := m.visibleRows()
	for row := first; row < last; row++ {
		lines = append(lines, m.renderRow(row))
	}
	if m.searching() {
		lines = append(lines, m.editor.input.View())
	}

	if m.width > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, m.width, "")
		}
	}
	view := strings.Join(lines, "\n")

	if m.editor.active && m.editor.request.Mode == ModeEditingHeader {
		if m.width > 0 && m.height > 0 {
			return m.editor.dialog.Overlay(view)
		}
		return view + "\n" + m.editor.dialog.View()
	}
	return view
}

func (m Model) renderHeader() string {
	base := lipgloss.NewStyle().Bold(true).Foreground(styles.GridHeaderColor)
	active := base.Foreground(styles.GridHeaderActiveColor).Underline(true)
	sep := lipgloss.NewStyle().Foreground(styles.GridRuleColor).Render(columnSeparator)

	cells := make([]string, 0, m.store.ColumnCount())
	for c, name := range m.store.ColumnNames() {
		style := base
		if c == m.cursor.Col {
			style = active
		}
		cells = append(cells, " "+style.Render(fitCell(name, m.columnWidth(c)))+" ")
	}
	return strings.Join(cells, sep)
}

func (m Model) renderRule() string {
	parts := make([]string, len(m.widths))
	for c, w := range m.widths {
		parts[c] = strings.Repeat(ruleLine, w+2)
	}
	return lipgloss.NewStyle().Foreground(styles.GridRuleColor).Render(strings.Join(parts, ruleCross))
}

func (m Model) renderRow(row int) string {
	values, _ := m.store.Row(row)
	sep := lipgloss.NewStyle().Foreground(styles.GridRuleColor).Render(columnSeparator)

	rowStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	if m.config.ZebraStripes && row%2 == 1 {
		rowStyle = rowStyle.Background(styles.GridZebraBgColor)
	}

	cells := make([]string, len(values))
	for c, value := range values {
		w := m.columnWidth(c)
		isCursor := row == m.cursor.Row && c == m.cursor.Col

		var content string
		switch {
		case isCursor && m.editor.active && m.editor.request.Mode == ModeInsert:
			content = padCell(m.editor.input.View(), w)
		case isCursor:
			content = lipgloss.NewStyle().
				Foreground(styles.GridCursorFgColor).
				Background(styles.GridCursorBgColor).
				Render(fitCell(value, w))
		case m.inSelection(row, c):
			content = lipgloss.NewStyle().
				Foreground(styles.TextPrimaryColor).
				Background(styles.GridSelectionBgColor).
				Render(fitCell(value, w))
		default:
			content = rowStyle.Render(fitCell(value, w))
		}
		cells[c] = zone.Mark(m.cellZoneID(row, c), rowStyle.Render(" ")+content+rowStyle.Render(" "))
	}
	return strings.Join(cells, sep)
}

// sanitizeCell flattens control whitespace so a cell renders on one line.
func sanitizeCell(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\t", " ").Replace(s)
}

// fitCell pads or truncates s to exactly width terminal cells.
// Truncation walks grapheme clusters so combined characters are never split.
func fitCell(s string, width int) string {
	s = sanitizeCell(s)
	if runewidth.StringWidth(s) <= width {
		return runewidth.FillRight(s, width)
	}

	var b strings.Builder
	used := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		cw := runewidth.StringWidth(cluster)
		if used+cw > width-1 {
			break
		}
		b.WriteString(cluster)
		used += cw
	}
	b.WriteString(ellipsis)
	used++
	return b.String() + strings.Repeat(" ", max(width-used, 0))
}

// padCell right-pads an already styled string to width.
func padCell(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}
