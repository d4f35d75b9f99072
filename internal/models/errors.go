package models

import "errors"

// Error kinds surfaced by the store and the services.
// Callers tell them apart with errors.Is.
var (
	// ErrNotFound indicates that no record exists for the requested id
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that a payload failed validation
	ErrInvalidInput = errors.New("invalid input")
)
