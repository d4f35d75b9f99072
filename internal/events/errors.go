package events

import "errors"

// ErrClosed is returned when sending to or listening on a closed bus
var ErrClosed = errors.New("event bus is closed")
