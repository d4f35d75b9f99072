package events

import "log/slog"

// Publish sends a store change event if a publisher is configured.
// Failures are logged, never returned: a missed notification only delays a redraw.
func Publish(publisher EventPublisher, kind string, entityID int) {
	if publisher == nil {
		return
	}
	err := publisher.SendEvent(Event{Type: EventStoreChanged, Kind: kind, EntityID: entityID})
	if err != nil {
		slog.Warn("event publish failed", "kind", kind, "entity_id", entityID, "error", err)
	}
}
