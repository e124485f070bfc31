package vimtable

import (
	"slices"
	"strings"

	"github.com/zjrosen/vimgrid/internal/log"
)

// PayloadKind tags the content of the Register.
type PayloadKind int

const (
	// PayloadEmpty means nothing has been yanked yet.
	PayloadEmpty PayloadKind = iota
	// PayloadRow holds a whole row of values.
	PayloadRow
	// PayloadCell holds a single cell value.
	PayloadCell
)

// String returns a short label for the kind.
func (k PayloadKind) String() string {
	switch k {
	case PayloadRow:
		return "row"
	case PayloadCell:
		return "cell"
	default:
		return "empty"
	}
}

// Payload is a snapshot of the Register content.
type Payload struct {
	Kind   PayloadKind
	Values []string // PayloadRow only
	Value  string   // PayloadCell only
}

// ClipboardWriter receives a text copy of every yank.
// github.com/atotto/clipboard satisfies it through the adapter in cmd.
type ClipboardWriter interface {
	WriteAll(text string) error
}

// Register is the single-slot yank buffer of one table. Each yank overwrites it.
type Register struct {
	payload   Payload
	clipboard ClipboardWriter
}

// NewRegister creates an empty register that mirrors yanks to clipboard when non-nil.
func NewRegister(clipboard ClipboardWriter) *Register {
	return &Register{clipboard: clipboard}
}

// YankRow stores a copy of values as a row payload.
func (r *Register) YankRow(values []string) {
	r.payload = Payload{Kind: PayloadRow, Values: slices.Clone(values)}
	r.mirror(strings.Join(values, "\t"))
}

// YankCell stores value as a cell payload.
func (r *Register) YankCell(value string) {
	r.payload = Payload{Kind: PayloadCell, Value: value}
	r.mirror(value)
}

// Payload returns a copy of the current content.
func (r *Register) Payload() Payload {
	p := r.payload
	p.Values = slices.Clone(p.Values)
	return p
}

// Empty reports whether nothing has been yanked.
func (r *Register) Empty() bool {
	return r.payload.Kind == PayloadEmpty
}

// mirror copies text to the system clipboard. Failures are logged only.
func (r *Register) mirror(text string) {
	if r.clipboard == nil {
		return
	}
	if err := r.clipboard.WriteAll(text); err != nil {
		log.ErrorErr(log.CatClipboard, "clipboard write failed", err)
	}
}
