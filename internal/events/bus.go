package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// listenerBuffer bounds how far a slow listener can fall behind before events are dropped
const listenerBuffer = 64

// Bus is an in-process EventPublisher. Delivery never blocks the sender:
// a listener whose buffer is full misses the event.
type Bus struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	closed    bool
	done      chan struct{}
	watchers  sync.WaitGroup

	sequence atomic.Int64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{listeners: make(map[int]chan Event), done: make(chan struct{})}
}

// SendEvent stamps the event and fans it out to every listener
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}

	event.SequenceID = b.sequence.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for id, ch := range b.listeners {
		select {
		case ch <- event:
		default:
			slog.Warn("dropping event for slow listener",
				"listener", id,
				"event_type", event.Type,
				"kind", event.Kind,
				"sequence", event.SequenceID)
		}
	}
	return nil
}

// Listen registers a listener that lives until ctx is done or the bus closes
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	id := b.nextID
	b.nextID++
	ch := make(chan Event, listenerBuffer)
	b.listeners[id] = ch
	b.watchers.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.watchers.Done()
		select {
		case <-ctx.Done():
			b.remove(id)
		case <-b.done:
		}
	}()
	return ch, nil
}

// Close closes every listener channel; further sends fail with ErrClosed
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)
	for id, ch := range b.listeners {
		close(ch)
		delete(b.listeners, id)
	}
	return nil
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.listeners[id]; ok {
		close(ch)
		delete(b.listeners, id)
	}
}
