package vimtable

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vimgrid/internal/grid"
	"github.com/zjrosen/vimgrid/internal/log"
	"github.com/zjrosen/vimgrid/internal/ui/styles"
)

// defaultMaxCellWidth caps a column's rendered width when Config.MaxCellWidth is 0.
const defaultMaxCellWidth = 24

// Config defines vimtable configuration with optional callbacks.
type Config struct {
	// Columns are the initial header names. At least one is required.
	Columns []string

	// ZebraStripes shades every other data row.
	ZebraStripes bool

	// OnCellEdit is called synchronously once for every cell whose value changed,
	// before subscribers and before the CellEditedMsg is delivered.
	OnCellEdit func(row, col int, oldValue, newValue string)

	// OnModeChange produces a custom message when the mode changes.
	// If nil, ModeChangeMsg is emitted.
	OnModeChange func(mode Mode, previous Mode) tea.Msg

	// Prompt, when set, edits cells and headers synchronously instead of the
	// built-in edit surface.
	Prompt PromptFunc

	// Clipboard receives a text copy of every yank. Optional.
	Clipboard ClipboardWriter

	// PendingTimeout cancels a lone prefix key after this long. 0 disables it.
	PendingTimeout time.Duration

	// MaxCellWidth caps the rendered width of a column. 0 uses the default.
	MaxCellWidth int

	// ZonePrefix namespaces the bubblezone IDs of rendered cells.
	ZonePrefix string
}

// Model holds the vimtable state.
type Model struct {
	config Config
	id     string

	// Owned stores
	store    *grid.Store
	register *Register
	notifier *notifier

	// Mode state
	mode           Mode
	pendingBuilder *PendingCommandBuilder
	cursor         Position
	visualAnchor   Position // Where the visual selection started
	editor         editSurface
	lastSearch     string // Query repeated by n and N

	// effects collects tea.Cmds produced while a command runs.
	effects []tea.Cmd

	// Display state
	widths  []int // Rendered width per column, rebuilt by layout
	width   int
	height  int
	offset  int // First visible data row
	focused bool
}

// ModeChangeMsg is sent when the mode changes (if OnModeChange is not set).
type ModeChangeMsg struct {
	TableID  string
	Mode     Mode
	Previous Mode
}

// RefusedMsg is sent when a command was refused to protect a grid invariant.
type RefusedMsg struct {
	TableID   string
	CommandID string
	Reason    string
}

// New creates a vimtable with the given configuration.
func New(cfg Config) (Model, error) {
	store, err := grid.New(cfg.Columns)
	if err != nil {
		return Model{}, fmt.Errorf("creating table: %w", err)
	}
	if cfg.MaxCellWidth <= 0 {
		cfg.MaxCellWidth = defaultMaxCellWidth
	}
	if cfg.ZonePrefix == "" {
		cfg.ZonePrefix = "vimtable"
	}

	id := uuid.NewString()[:8]
	m := Model{
		config:         cfg,
		id:             id,
		store:          store,
		register:       NewRegister(cfg.Clipboard),
		notifier:       newNotifier(id, cfg.OnCellEdit),
		mode:           ModeNormal,
		pendingBuilder: NewPendingCommandBuilder(),
	}
	m.layout()
	log.Debug(log.CatUI, "table created", "table", id, "columns", len(cfg.Columns))
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd := m.handleKeyMsg(msg)
		m.ensureCursorVisible()
		return m, cmd
	case tea.MouseMsg:
		m.handleMouseMsg(msg)
		return m, nil
	case pendingTimeoutMsg:
		if msg.tableID == m.id && msg.generation == m.pendingBuilder.Generation() && !m.pendingBuilder.IsEmpty() {
			log.Debug(log.CatMode, "pending prefix timed out", "table", m.id, "keys", m.pendingBuilder.Keys())
			m.pendingBuilder.Clear()
		}
		return m, nil
	}

	// Cursor blink and other editor messages
	if m.editor.active {
		return m, m.editor.update(msg)
	}
	return m, nil
}

// keyToString converts a tea.KeyMsg to a registry-compatible key string.
// Returns empty string for unhandled key types.
func keyToString(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return string(msg.Runes[0])
		}
		return ""
	case tea.KeyEscape:
		return "<escape>"
	case tea.KeyEnter:
		return "<enter>"
	case tea.KeyBackspace:
		return "<backspace>"
	case tea.KeyDelete:
		return "<delete>"
	case tea.KeySpace:
		return "<space>"
	case tea.KeyTab:
		return "<tab>"
	case tea.KeyLeft:
		return "<left>"
	case tea.KeyRight:
		return "<right>"
	case tea.KeyUp:
		return "<up>"
	case tea.KeyDown:
		return "<down>"
	default:
		return ""
	}
}

// handleKeyMsg processes keyboard input via registry dispatch.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	// A buffered prefix consumes the next key, whatever it is
	if !m.pendingBuilder.IsEmpty() {
		return m.handlePendingCommand(msg)
	}

	keyStr := keyToString(msg)
	cmd, ok := DefaultRegistry.Get(m.mode, keyStr)
	if !ok || keyStr == "" {
		// Editing modes forward everything else to the edit surface
		if m.mode.IsEditing() && m.editor.active {
			return m, m.editor.update(msg)
		}
		return m, nil
	}

	return m.executeAndRespond(cmd, m.mode)
}

// handlePendingCommand resolves a buffered prefix with its continuation.
// An unrecognized continuation (Escape included) clears the buffer and is not
// reinterpreted as a fresh command.
func (m Model) handlePendingCommand(msg tea.KeyMsg) (Model, tea.Cmd) {
	operator := m.pendingBuilder.Operator()
	m.pendingBuilder.Clear()

	key := keyToString(msg)
	cmd, ok := DefaultPendingRegistry.Get(operator, key)
	if !ok {
		log.Debug(log.CatMode, "pending prefix cancelled", "table", m.id, "operator", string(operator), "key", key)
		return m, nil
	}
	return m.executeAndRespond(cmd, m.mode)
}

// executeAndRespond executes a command and produces the appropriate response.
// Handles ExecuteResult, refusals and mode changes.
func (m Model) executeAndRespond(cmd Command, previousMode Mode) (Model, tea.Cmd) {
	cmd, result, teaCmd := m.executeCommand(cmd)

	switch result {
	case Skipped:
		return m, teaCmd
	case Refused:
		refused := RefusedMsg{TableID: m.id, CommandID: cmd.ID()}
		if r, ok := cmd.(Refuser); ok {
			refused.Reason = r.RefusalReason()
		}
		log.Warn(log.CatGrid, "command refused", "table", m.id, "command", refused.CommandID, "reason", refused.Reason)
		return m, tea.Batch(teaCmd, func() tea.Msg { return refused })
	case Executed:
	}

	if cmd.IsModeChange() && m.mode != previousMode {
		log.Debug(log.CatMode, "mode changed", "table", m.id, "from", previousMode, "to", m.mode)
		return m, tea.Batch(teaCmd, m.modeChangeCmd(previousMode))
	}
	return m, teaCmd
}

// executeCommand runs a fresh clone of cmd and collects the tea.Cmds it queued.
// Any executed command that may have changed the grid is followed by a cursor
// clamp and a layout rebuild.
func (m *Model) executeCommand(cmd Command) (Command, ExecuteResult, tea.Cmd) {
	cmd = cloneCommand(cmd)

	result := cmd.Execute(m)
	if result == Executed && cmd.ChangesGrid() {
		m.clampCursor()
		m.layout()
	}
	return cmd, result, m.drainEffects()
}

// queue schedules a tea.Cmd to be returned by the current dispatch.
func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.effects = append(m.effects, cmd)
	}
}

func (m *Model) drainEffects() tea.Cmd {
	if len(m.effects) == 0 {
		return nil
	}
	cmd := tea.Batch(m.effects...)
	m.effects = nil
	return cmd
}

// notify reports a committed cell change on every channel.
func (m *Model) notify(c grid.CellChange) {
	m.queue(m.notifier.emit(c))
}

// modeChangeCmd returns a command that emits a mode change message.
func (m Model) modeChangeCmd(previous Mode) tea.Cmd {
	mode := m.mode
	if m.config.OnModeChange != nil {
		onModeChange := m.config.OnModeChange
		return func() tea.Msg {
			return onModeChange(mode, previous)
		}
	}
	id := m.id
	return func() tea.Msg {
		return ModeChangeMsg{TableID: id, Mode: mode, Previous: previous}
	}
}

// handleMouseMsg moves the cursor to a clicked cell in Normal mode.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return
	}
	if m.mode != ModeNormal || !m.pendingBuilder.IsEmpty() {
		return
	}
	first, last := m.visibleRows()
	for row := first; row < last; row++ {
		for col := range m.store.ColumnCount() {
			if z := zone.Get(m.cellZoneID(row, col)); z != nil && z.InBounds(msg) {
				m.cursor = Position{Row: row, Col: col}
				return
			}
		}
	}
}

// cellZoneID returns the bubblezone ID of a rendered cell.
func (m Model) cellZoneID(row, col int) string {
	return fmt.Sprintf("%s-%s-%d-%d", m.config.ZonePrefix, m.id, row, col)
}

// ============================================================================
// External updates
// ============================================================================

// SetData replaces every row, keeping the headers. A row with the wrong number
// of cells rejects the whole call and leaves the grid untouched. On success the
// cursor returns to (0,0), the mode to Normal, and any prefix is cleared.
func (m *Model) SetData(rows [][]string) error {
	if err := m.store.SetData(rows); err != nil {
		log.Warn(log.CatGrid, "set data rejected", "table", m.id, "error", err)
		return err
	}
	m.cursor = Position{}
	m.visualAnchor = Position{}
	m.mode = ModeNormal
	m.closeEditor()
	m.pendingBuilder.Clear()
	m.offset = 0
	m.layout()
	return nil
}

// UpdateRowExternal overwrites a row programmatically. values must match the
// column count; an out-of-range row is ignored. Every changed cell is notified
// exactly as an interactive edit would be.
func (m *Model) UpdateRowExternal(row int, values []string) (tea.Cmd, error) {
	changes, err := m.store.UpdateRow(row, values)
	if err != nil {
		log.Warn(log.CatGrid, "row update rejected", "table", m.id, "row", row, "error", err)
		return nil, err
	}
	return m.applyExternal(changes), nil
}

// UpdateColumnExternal overwrites a column programmatically. values must cover
// every row; extra values are ignored and an out-of-range column is ignored.
func (m *Model) UpdateColumnExternal(col int, values []string) (tea.Cmd, error) {
	changes, err := m.store.UpdateColumn(col, values)
	if err != nil {
		log.Warn(log.CatGrid, "column update rejected", "table", m.id, "col", col, "error", err)
		return nil, err
	}
	return m.applyExternal(changes), nil
}

// UpdateCellExternal overwrites one cell programmatically. Out-of-range
// coordinates are ignored.
func (m *Model) UpdateCellExternal(row, col int, value string) tea.Cmd {
	var changes []grid.CellChange
	if c, ok := m.store.SetCell(row, col, value); ok {
		changes = append(changes, c)
	}
	return m.applyExternal(changes)
}

func (m *Model) applyExternal(changes []grid.CellChange) tea.Cmd {
	for _, c := range changes {
		m.notify(c)
	}
	m.clampCursor()
	m.layout()
	return m.drainEffects()
}

// AppendRowExternal adds a row after the last one and returns its index.
// Values are padded or truncated to the column count. Like other structural
// changes it notifies nothing.
func (m *Model) AppendRowExternal(values ...string) int {
	at := m.store.InsertRow(m.store.RowCount(), values...)
	m.clampCursor()
	m.layout()
	return at
}

// ClearData removes every row, keeping the headers, and resets the cursor and mode.
func (m *Model) ClearData() {
	_ = m.SetData(nil)
}

// ============================================================================
// Accessors
// ============================================================================

// ID returns the short unique identifier of this table instance.
func (m Model) ID() string {
	return m.id
}

// Mode returns the current mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Cursor returns the cursor position.
func (m Model) Cursor() Position {
	return m.cursor
}

// Anchor returns the visual anchor. Only meaningful in visual modes.
func (m Model) Anchor() Position {
	return m.visualAnchor
}

// Columns returns a copy of the column headers.
func (m Model) Columns() []grid.Column {
	return m.store.Columns()
}

// ColumnNames returns the header names in order.
func (m Model) ColumnNames() []string {
	return m.store.ColumnNames()
}

// Rows returns a copy of all data rows.
func (m Model) Rows() [][]string {
	return m.store.Rows()
}

// Cell returns the value at (row, col).
func (m Model) Cell(row, col int) (string, bool) {
	return m.store.Cell(row, col)
}

// RowCount returns the number of data rows.
func (m Model) RowCount() int {
	return m.store.RowCount()
}

// ColumnCount returns the number of columns.
func (m Model) ColumnCount() int {
	return m.store.ColumnCount()
}

// Register returns a copy of the yank register content.
func (m Model) Register() Payload {
	return m.register.Payload()
}

// PendingKeys returns the buffered prefix keys, or "" when none.
func (m Model) PendingKeys() string {
	return m.pendingBuilder.Keys()
}

// EditValue returns the text in the active edit surface.
func (m Model) EditValue() (string, bool) {
	if !m.editor.active {
		return "", false
	}
	return m.editor.Value(), true
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	if m.editor.active {
		m.editor.dialog.SetSize(w, h)
		if m.searching() {
			m.editor.input.Width = max(w-2, 1)
		}
	}
	m.ensureCursorVisible()
}

// Focus focuses the table.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus from the table and clears any pending prefix.
func (m *Model) Blur() {
	m.focused = false
	m.pendingBuilder.Clear()
}

// Focused returns whether the table is focused.
func (m Model) Focused() bool {
	return m.focused
}

// ModeIndicator returns a styled mode indicator string (e.g., "[NORMAL]").
func (m Model) ModeIndicator() string {
	var color lipgloss.AdaptiveColor
	switch m.mode {
	case ModeNormal:
		color = styles.VimNormalModeColor
	case ModeInsert:
		color = styles.VimInsertModeColor
	case ModeEditingHeader:
		color = styles.VimHeaderModeColor
	case ModeVisualCell, ModeVisualLine:
		color = styles.VimVisualModeColor
	case ModeSearch:
		color = styles.VimSearchModeColor
	default:
		color = styles.TextMutedColor
	}
	return lipgloss.NewStyle().Foreground(color).Render("[" + m.mode.String() + "]")
}
