// Package events fans widget notifications out to observers.
//
// Widgets publish on named channels ("changed", "enter", "focus", "blur",
// "press", "log"). A Broker delivers each event to every subscriber without ever
// blocking the publisher, so input handling cannot be stalled by a slow
// observer.
package events

import (
	"context"
	"time"
)

// Channel names the stream an event belongs to.
type Channel string

const (
	Changed Channel = "changed"
	Enter   Channel = "enter"
	Focus   Channel = "focus"
	Blur    Channel = "blur"
	Press   Channel = "press"
	Log     Channel = "log"
)

// Event is a published notification with a typed payload.
type Event[T any] struct {
	Channel   Channel
	Source    string
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(ch Channel, source string, payload T)
}
