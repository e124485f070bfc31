package vimtable

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vimgrid/internal/grid"
	"github.com/zjrosen/vimgrid/internal/pubsub"
)

// CellEditedMsg reports one committed cell value change.
// It is the payload of every notification channel the table offers.
type CellEditedMsg struct {
	TableID string
	Row     int
	Col     int
	Old     string
	New     string
}

// CellEditedEvent is a pubsub event carrying a CellEditedMsg.
type CellEditedEvent = pubsub.Event[CellEditedMsg]

// CellEditListener wraps a continuous listener for cell edit events.
type CellEditListener = pubsub.ContinuousListener[CellEditedMsg]

type observer struct {
	id int
	fn func(CellEditedMsg)
}

// notifier fans a cell change out to, in order: the OnCellEdit callback,
// subscribed observers, a tea.Cmd for the host, and the pubsub change feed.
type notifier struct {
	tableID    string
	onCellEdit func(row, col int, oldValue, newValue string)
	observers  []observer
	nextID     int
	feed       *pubsub.Broker[CellEditedMsg]
}

func newNotifier(tableID string, onCellEdit func(row, col int, oldValue, newValue string)) *notifier {
	return &notifier{
		tableID:    tableID,
		onCellEdit: onCellEdit,
		feed:       pubsub.NewBroker[CellEditedMsg](),
	}
}

// subscribe registers fn and returns a function that removes it.
func (n *notifier) subscribe(fn func(CellEditedMsg)) func() {
	n.nextID++
	id := n.nextID
	n.observers = append(n.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range n.observers {
			if o.id == id {
				n.observers = append(n.observers[:i], n.observers[i+1:]...)
				return
			}
		}
	}
}

// emit delivers one change synchronously and returns the host message as a command.
func (n *notifier) emit(c grid.CellChange) tea.Cmd {
	msg := CellEditedMsg{TableID: n.tableID, Row: c.Row, Col: c.Col, Old: c.Old, New: c.New}

	if n.onCellEdit != nil {
		n.onCellEdit(c.Row, c.Col, c.Old, c.New)
	}
	for _, o := range n.observers {
		o.fn(msg)
	}
	n.feed.Publish(pubsub.UpdatedEvent, msg)

	return func() tea.Msg { return msg }
}

// ============================================================================
// Public notification API
// ============================================================================

// Subscribe registers an observer called synchronously for every changed cell,
// after OnCellEdit. The returned function unsubscribes it.
func (m Model) Subscribe(fn func(CellEditedMsg)) (unsubscribe func()) {
	return m.notifier.subscribe(fn)
}

// ChangeFeed returns the broker that publishes every cell change.
func (m Model) ChangeFeed() *pubsub.Broker[CellEditedMsg] {
	return m.notifier.feed
}

// NewChangeListener creates a listener for cell edit events that can be
// polled from a Bubble Tea update loop. It is cleaned up when ctx is cancelled.
func (m Model) NewChangeListener(ctx context.Context) *CellEditListener {
	return pubsub.NewContinuousListener(ctx, m.notifier.feed)
}

// Close shuts down the change feed. The table stays usable; later edits are
// simply not published.
func (m Model) Close() {
	m.notifier.feed.Close()
}
