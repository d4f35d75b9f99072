package database

import (
	"context"

	"github.com/thenoetrevino/techradar/internal/models"
)

// QuadrantRepository defines quadrant operations.
// Quadrants are listed in insertion order, which defines their indices.
type QuadrantRepository interface {
	CreateQuadrant(ctx context.Context, payload models.NewQuadrant) (*models.Quadrant, error)
	GetQuadrantByID(ctx context.Context, id int) (*models.Quadrant, error)
	GetAllQuadrants(ctx context.Context) ([]*models.Quadrant, error)
	UpdateQuadrant(ctx context.Context, id int, patch models.QuadrantPatch) (*models.Quadrant, error)
	CountQuadrants(ctx context.Context) (int, error)
}

// RingRepository defines ring operations.
type RingRepository interface {
	CreateRing(ctx context.Context, payload models.NewRing) (*models.Ring, error)
	GetRingByID(ctx context.Context, id int) (*models.Ring, error)
	GetAllRings(ctx context.Context) ([]*models.Ring, error)
	UpdateRing(ctx context.Context, id int, patch models.RingPatch) (*models.Ring, error)
	CountRings(ctx context.Context) (int, error)
}
