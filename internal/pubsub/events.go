// Package pubsub fans typed events out to any number of subscribers.
// The grid uses it for its cell change feed and the logger for log lines.
package pubsub

import (
	"context"
	"time"
)

// EventType names what happened to the payload.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	DeletedEvent EventType = "deleted"
)

// Event is one published payload stamped with its type and publish time.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber hands out event channels bound to a context.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher publishes typed payloads.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T) int
}

var (
	_ Subscriber[string] = (*Broker[string])(nil)
	_ Publisher[string]  = (*Broker[string])(nil)
)
