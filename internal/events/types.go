package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventStoreChanged EventType = "store_changed"
)

// Entity kinds carried by store change events
const (
	KindTechnology = "technology"
	KindQuadrant   = "quadrant"
	KindRing       = "ring"
	KindProject    = "project"
	KindLink       = "technology_project"
)

// Event represents an entity store change notification
type Event struct {
	Type       EventType
	Kind       string    // which entity kind was modified
	EntityID   int       // id of the created or updated record
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
