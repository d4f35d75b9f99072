package database

// DataStore defines the unified interface for every entity store operation.
// It is composed of smaller, domain-specific interfaces; consumers should
// depend on the narrowest one they need.
type DataStore interface {
	TechnologyRepository
	QuadrantRepository
	RingRepository
	ProjectRepository
	LinkRepository
}
