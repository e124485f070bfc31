package vimtable

import "reflect"

// ExecuteResult indicates the outcome of command execution.
type ExecuteResult int

const (
	// Executed means the command ran and consumed the key.
	Executed ExecuteResult = iota
	// Skipped means pre-conditions weren't met (e.g., insert on an empty grid).
	// The key is consumed but nothing changes.
	Skipped
	// Refused means the command would break a grid invariant. The grid is unchanged
	// and the refusal is reported to the host.
	Refused
)

// Command represents one resolved key action against the grid.
//
// Commands are registered as prototypes and cloned before every execution, so an
// implementation may keep per-execution state (such as a refusal reason) in its fields.
type Command interface {
	// Execute applies the command to the model.
	Execute(m *Model) ExecuteResult

	// Keys returns the trigger key(s) that invoke this command.
	// Special keys use the keyToString form: "<enter>", "<escape>", "<left>".
	Keys() []string

	// Mode returns which mode this command operates in.
	Mode() Mode

	// ID returns a hierarchical identifier for this command type.
	// Examples: "move.down", "row.delete", "yank.cell".
	ID() string

	// ChangesGrid returns true if this command may modify cells, rows or columns.
	// The dispatcher clamps the cursor after every such command.
	ChangesGrid() bool

	// IsModeChange returns true if this command may change the mode.
	IsModeChange() bool
}

// Refuser is implemented by commands that can return Refused.
type Refuser interface {
	RefusalReason() string
}

// MotionBase provides defaults for cursor motions.
type MotionBase struct{}

func (MotionBase) ChangesGrid() bool  { return false }
func (MotionBase) IsModeChange() bool { return false }

// ModeEntryBase provides defaults for commands that only switch modes.
type ModeEntryBase struct{}

func (ModeEntryBase) ChangesGrid() bool  { return false }
func (ModeEntryBase) IsModeChange() bool { return true }

// MutationBase provides defaults for structural and cell mutations made from Normal mode.
type MutationBase struct{}

func (MutationBase) ChangesGrid() bool  { return true }
func (MutationBase) IsModeChange() bool { return false }

// CommitBase provides defaults for commands that mutate the grid and leave a mode.
type CommitBase struct{}

func (CommitBase) ChangesGrid() bool  { return true }
func (CommitBase) IsModeChange() bool { return true }

// cloneCommand creates a shallow copy of a command via reflection.
func cloneCommand(cmd Command) Command {
	v := reflect.ValueOf(cmd).Elem()
	clone := reflect.New(v.Type())
	clone.Elem().Set(v)
	return clone.Interface().(Command)
}

// ============================================================================
// CommandRegistry
// ============================================================================

// CommandRegistry provides mode-aware, key-based command dispatch.
type CommandRegistry struct {
	// commands maps Mode -> trigger key -> prototype command
	commands map[Mode]map[string]Command
}

// NewCommandRegistry creates an empty command registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[Mode]map[string]Command),
	}
}

// Register adds a command under its own Mode() for each of its Keys().
func (r *CommandRegistry) Register(cmd Command) {
	r.registerWithModeKeys(cmd.Mode(), cmd)
}

// Get retrieves a command for a specific mode and key.
func (r *CommandRegistry) Get(mode Mode, key string) (Command, bool) {
	cmd, ok := r.commands[mode][key]
	return cmd, ok
}

// registerWithModeKeys adds a command under an explicit mode.
// Motions use this to share one implementation across Normal and the visual modes.
func (r *CommandRegistry) registerWithModeKeys(mode Mode, cmd Command) {
	if r.commands[mode] == nil {
		r.commands[mode] = make(map[string]Command)
	}
	for _, key := range cmd.Keys() {
		r.commands[mode][key] = cmd
	}
}

// ============================================================================
// PendingCommandRegistry
// ============================================================================

// PendingCommandRegistry maps (prefix operator, continuation key) to a command.
// Examples: ('d', "d") -> DeleteRowCommand, ('y', "y") -> YankRowCommand.
type PendingCommandRegistry struct {
	commands map[rune]map[string]Command
}

// NewPendingCommandRegistry creates an empty pending command registry.
func NewPendingCommandRegistry() *PendingCommandRegistry {
	return &PendingCommandRegistry{
		commands: make(map[rune]map[string]Command),
	}
}

// Register adds a command for a specific operator and continuation key.
func (r *PendingCommandRegistry) Register(operator rune, key string, cmd Command) {
	if r.commands[operator] == nil {
		r.commands[operator] = make(map[string]Command)
	}
	r.commands[operator][key] = cmd
}

// Get retrieves the command completing operator with key.
func (r *PendingCommandRegistry) Get(operator rune, key string) (Command, bool) {
	cmd, ok := r.commands[operator][key]
	return cmd, ok
}

// Continuations returns the keys that complete the operator.
func (r *PendingCommandRegistry) Continuations(operator rune) []string {
	keys := make([]string, 0, len(r.commands[operator]))
	for k := range r.commands[operator] {
		keys = append(keys, k)
	}
	return keys
}

// ============================================================================
// PendingCommandBuilder
// ============================================================================

// PendingCommandBuilder holds a prefix key waiting for its continuation.
// Sequences are at most two keys, so only the operator is buffered.
type PendingCommandBuilder struct {
	operator   rune // 'd', 'y', 'g', or 0 for none
	generation int  // bumped on every Start so stale timeouts can be told apart
}

// NewPendingCommandBuilder creates an empty pending command builder.
func NewPendingCommandBuilder() *PendingCommandBuilder {
	return &PendingCommandBuilder{}
}

// Start buffers a prefix operator and returns its generation.
func (b *PendingCommandBuilder) Start(op rune) int {
	b.operator = op
	b.generation++
	return b.generation
}

// Clear resets the builder to empty state.
func (b *PendingCommandBuilder) Clear() {
	b.operator = 0
}

// IsEmpty returns true if no prefix is buffered.
func (b *PendingCommandBuilder) IsEmpty() bool {
	return b.operator == 0
}

// Operator returns the buffered prefix operator.
func (b *PendingCommandBuilder) Operator() rune {
	return b.operator
}

// Generation returns the generation of the current (or last) prefix.
func (b *PendingCommandBuilder) Generation() int {
	return b.generation
}

// Keys returns the buffered keys for display.
func (b *PendingCommandBuilder) Keys() string {
	if b.operator == 0 {
		return ""
	}
	return string(b.operator)
}

// ============================================================================
// Default Registries
// ============================================================================

// DefaultPendingRegistry holds every two-key sequence.
var DefaultPendingRegistry = newDefaultPendingRegistry()

func newDefaultPendingRegistry() *PendingCommandRegistry {
	r := NewPendingCommandRegistry()

	r.Register('d', "d", &DeleteRowCommand{})
	r.Register('d', "c", &DeleteColumnCommand{})
	r.Register('y', "y", &YankRowCommand{})
	r.Register('g', "g", &GoToFirstRowCommand{})

	return r
}

// DefaultRegistry is the global command registry with all built-in commands registered.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	// ============================================================================
	// Normal Mode Commands
	// ============================================================================

	r.Register(&MoveLeftCommand{})
	r.Register(&MoveRightCommand{})
	r.Register(&MoveUpCommand{})
	r.Register(&MoveDownCommand{})
	r.Register(&GoToLastRowCommand{})
	r.Register(&StartPendingCommand{operator: 'g'})

	r.Register(&EnterInsertModeCommand{})
	r.Register(&EnterEditHeaderCommand{})
	r.Register(&EnterVisualCellCommand{})
	r.Register(&EnterVisualLineCommand{})

	r.Register(&InsertRowBelowCommand{})
	r.Register(&InsertRowAboveCommand{})
	r.Register(&InsertColumnRightCommand{})
	r.Register(&AppendColumnCommand{})

	r.Register(&PasteCommand{})
	r.Register(&RefreshCommand{})
	r.Register(&EnterSearchCommand{})
	r.Register(&SearchNextCommand{})
	r.Register(&SearchPreviousCommand{})
	r.Register(&StartPendingCommand{operator: 'd'})
	r.Register(&StartPendingCommand{operator: 'y'})
	r.Register(&NormalModeEscapeCommand{})

	// ============================================================================
	// Visual Mode Commands
	// ============================================================================

	for _, mode := range []Mode{ModeVisualCell, ModeVisualLine} {
		r.registerWithModeKeys(mode, &MoveLeftCommand{})
		r.registerWithModeKeys(mode, &MoveRightCommand{})
		r.registerWithModeKeys(mode, &MoveUpCommand{})
		r.registerWithModeKeys(mode, &MoveDownCommand{})
		r.registerWithModeKeys(mode, &GoToLastRowCommand{})
		r.registerWithModeKeys(mode, &StartPendingCommand{operator: 'g'})
		r.registerWithModeKeys(mode, &VisualModeEscapeCommand{mode: mode})
	}
	r.Register(&YankCellCommand{})
	r.Register(&YankAnchorRowCommand{})

	// ============================================================================
	// Editing Mode Commands
	// ============================================================================
	// Every other key in these modes goes to the edit surface.

	for _, mode := range []Mode{ModeInsert, ModeEditingHeader, ModeSearch} {
		r.registerWithModeKeys(mode, &CommitEditCommand{mode: mode})
		r.registerWithModeKeys(mode, &CancelEditCommand{mode: mode})
	}
	r.Register(&SearchBackspaceCommand{})

	return r
}
