package events

import "context"

// EventPublisher defines the interface for sending and receiving store change events.
// Services publish after every successful write; views listen so they can
// reload and recompute the radar layout.
type EventPublisher interface {
	// SendEvent delivers an event to every current listener
	SendEvent(event Event) error

	// Listen returns a channel of events that is closed when ctx ends or the publisher closes
	Listen(ctx context.Context) (<-chan Event, error)

	// Close stops delivery and closes every listener channel
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
