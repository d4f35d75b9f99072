package models

// ============================================================================
// RADAR SHAPE
// ============================================================================

// The radar is always drawn with four quadrants and four rings.
const (
	QuadrantCount = 4
	RingCount     = 4
)

// ============================================================================
// PROJECT STATUS
// ============================================================================

// Common project statuses. Status is free-form; these are only suggestions.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusPlanned   = "planned"
)
