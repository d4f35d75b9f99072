package database

import "database/sql"

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TechnologyRepo
	*QuadrantRepo
	*RingRepo
	*ProjectRepo
	*LinkRepo
}

var _ DataStore = (*Repository)(nil)

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TechnologyRepo: &TechnologyRepo{db: db},
		QuadrantRepo:   &QuadrantRepo{db: db},
		RingRepo:       &RingRepo{db: db},
		ProjectRepo:    &ProjectRepo{db: db},
		LinkRepo:       &LinkRepo{db: db},
	}
}
