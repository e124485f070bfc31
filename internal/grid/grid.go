// Package grid owns the cell data behind a vimtable: ordered column headers and
// ordered rows of string cells.
//
// Store is pure data. It knows nothing about keys, modes or cursors; callers
// (the vimtable command dispatcher and its external-update API) translate user
// intent into Store calls and clamp their own cursor afterwards.
//
// Invariants held after every call:
//   - there is at least one column
//   - every row has exactly ColumnCount() cells
//
// Index handling follows three rules:
//   - insert positions are clamped into range
//   - out-of-range reads, writes and deletes are no-ops, never errors
//   - operations that would break an invariant are refused with a sentinel error
//     and leave the store untouched
package grid

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNoColumns is returned when a store would be created without columns.
	ErrNoColumns = errors.New("grid must have at least one column")

	// ErrLastColumn is returned when deleting the only remaining column.
	ErrLastColumn = errors.New("cannot delete the last remaining column")

	// ErrRowShape is returned when a row's length does not match the column count.
	ErrRowShape = errors.New("row length does not match column count")

	// ErrColumnTooShort is returned when a column update has fewer values than rows.
	ErrColumnTooShort = errors.New("column values shorter than row count")
)

// ColumnType identifies the semantic type of a column's cells.
type ColumnType int

const (
	// ColumnTypeText is plain string content. It is the only type the editor produces.
	ColumnTypeText ColumnType = iota
)

// Column is a single header entry.
type Column struct {
	Name string
	Type ColumnType
}

// CellChange describes a committed cell value change.
type CellChange struct {
	Row int
	Col int
	Old string
	New string
}

// Store holds headers and rows.
type Store struct {
	columns []Column
	rows    [][]string
}

// New creates an empty store with one text column per name.
func New(names []string) (*Store, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name, Type: ColumnTypeText}
	}
	return &Store{columns: cols}, nil
}

// RowCount returns the number of data rows.
func (s *Store) RowCount() int {
	return len(s.rows)
}

// ColumnCount returns the number of columns.
func (s *Store) ColumnCount() int {
	return len(s.columns)
}

// Columns returns a copy of the column headers.
func (s *Store) Columns() []Column {
	return slices.Clone(s.columns)
}

// ColumnNames returns the header names in order.
func (s *Store) ColumnNames() []string {
	names := make([]string, len(s.columns))
	for i, c := range s.columns {
		names[i] = c.Name
	}
	return names
}

// Rows returns a deep copy of all rows.
func (s *Store) Rows() [][]string {
	out := make([][]string, len(s.rows))
	for i, r := range s.rows {
		out[i] = slices.Clone(r)
	}
	return out
}

// Row returns a copy of the row at index.
func (s *Store) Row(at int) ([]string, bool) {
	if !s.validRow(at) {
		return nil, false
	}
	return slices.Clone(s.rows[at]), true
}

// Cell returns the value at (row, col).
func (s *Store) Cell(row, col int) (string, bool) {
	if !s.validRow(row) || !s.validCol(col) {
		return "", false
	}
	return s.rows[row][col], true
}

// SetData replaces every row, keeping the headers.
// All rows are validated before any mutation so a bad row leaves the prior data intact.
func (s *Store) SetData(rows [][]string) error {
	for i, r := range rows {
		if len(r) != len(s.columns) {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(r), len(s.columns), ErrRowShape)
		}
	}
	next := make([][]string, len(rows))
	for i, r := range rows {
		next[i] = slices.Clone(r)
	}
	s.rows = next
	return nil
}

// InsertRow inserts a row at the clamped index and returns the index used.
// Values are padded with empty strings or truncated to the column count.
func (s *Store) InsertRow(at int, values ...string) int {
	at = clamp(at, 0, len(s.rows))
	s.rows = slices.Insert(s.rows, at, s.fit(values))
	return at
}

// DeleteRow removes the row at index. Returns false when there was nothing to delete.
func (s *Store) DeleteRow(at int) bool {
	if !s.validRow(at) {
		return false
	}
	s.rows = slices.Delete(s.rows, at, at+1)
	return true
}

// InsertColumn inserts a text column at the clamped index and returns the index used.
// Every existing row gains an empty cell at the same position.
func (s *Store) InsertColumn(at int, name string) int {
	at = clamp(at, 0, len(s.columns))
	s.columns = slices.Insert(s.columns, at, Column{Name: name, Type: ColumnTypeText})
	for i := range s.rows {
		s.rows[i] = slices.Insert(s.rows[i], at, "")
	}
	return at
}

// DeleteColumn removes the column at index from the header and every row.
// Deleting the last remaining column is refused with ErrLastColumn.
func (s *Store) DeleteColumn(at int) error {
	if !s.validCol(at) {
		return nil
	}
	if len(s.columns) <= 1 {
		return ErrLastColumn
	}
	s.columns = slices.Delete(s.columns, at, at+1)
	for i := range s.rows {
		s.rows[i] = slices.Delete(s.rows[i], at, at+1)
	}
	return nil
}

// RenameColumn sets a header name. Returns false for an out-of-range index.
func (s *Store) RenameColumn(at int, name string) bool {
	if !s.validCol(at) {
		return false
	}
	s.columns[at].Name = name
	return true
}

// SetCell writes a value and reports whether the stored value changed.
func (s *Store) SetCell(row, col int, value string) (CellChange, bool) {
	if !s.validRow(row) || !s.validCol(col) {
		return CellChange{}, false
	}
	old := s.rows[row][col]
	if old == value {
		return CellChange{}, false
	}
	s.rows[row][col] = value
	return CellChange{Row: row, Col: col, Old: old, New: value}, true
}

// UpdateRow overwrites a whole row. The values must match the column count.
// An out-of-range row is ignored. One change is returned per cell that differed.
func (s *Store) UpdateRow(at int, values []string) ([]CellChange, error) {
	if !s.validRow(at) {
		return nil, nil
	}
	if len(values) != len(s.columns) {
		return nil, fmt.Errorf("update row %d with %d values, want %d: %w", at, len(values), len(s.columns), ErrRowShape)
	}
	var changes []CellChange
	for col, v := range values {
		if c, ok := s.SetCell(at, col, v); ok {
			changes = append(changes, c)
		}
	}
	return changes, nil
}

// UpdateColumn overwrites a whole column. values must cover every row;
// values beyond the row count are ignored. An out-of-range column is ignored.
func (s *Store) UpdateColumn(at int, values []string) ([]CellChange, error) {
	if !s.validCol(at) {
		return nil, nil
	}
	if len(values) < len(s.rows) {
		return nil, fmt.Errorf("update column %d with %d values for %d rows: %w", at, len(values), len(s.rows), ErrColumnTooShort)
	}
	var changes []CellChange
	for row := range s.rows {
		if c, ok := s.SetCell(row, at, values[row]); ok {
			changes = append(changes, c)
		}
	}
	return changes, nil
}

// fit returns a fresh row sized to the column count.
func (s *Store) fit(values []string) []string {
	row := make([]string, len(s.columns))
	copy(row, values)
	return row
}

func (s *Store) validRow(i int) bool { return i >= 0 && i < len(s.rows) }

func (s *Store) validCol(i int) bool { return i >= 0 && i < len(s.columns) }

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
