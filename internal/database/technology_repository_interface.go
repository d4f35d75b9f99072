package database

import (
	"context"

	"github.com/thenoetrevino/techradar/internal/models"
)

// TechnologyReader defines read operations for technologies.
type TechnologyReader interface {
	GetTechnologyByID(ctx context.Context, id int) (*models.Technology, error)
	GetAllTechnologies(ctx context.Context) ([]*models.Technology, error)
	CountTechnologies(ctx context.Context) (int, error)
}

// TechnologyWriter defines write operations for technologies.
type TechnologyWriter interface {
	CreateTechnology(ctx context.Context, payload models.NewTechnology) (*models.Technology, error)
	UpdateTechnology(ctx context.Context, id int, patch models.TechnologyPatch) (*models.Technology, error)
}

// TechnologyRepository combines all technology-related operations.
type TechnologyRepository interface {
	TechnologyReader
	TechnologyWriter
}
