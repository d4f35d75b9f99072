package quadrant

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/thenoetrevino/techradar/internal/database"
	"github.com/thenoetrevino/techradar/internal/events"
	"github.com/thenoetrevino/techradar/internal/models"
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service defines all quadrant-related business operations.
// A quadrant's index is its position in ListQuadrants.
type Service interface {
	ListQuadrants(ctx context.Context) ([]*models.Quadrant, error)
	GetQuadrant(ctx context.Context, id int) (*models.Quadrant, error)
	CreateQuadrant(ctx context.Context, req CreateQuadrantRequest) (*models.Quadrant, error)
	UpdateQuadrant(ctx context.Context, req UpdateQuadrantRequest) (*models.Quadrant, error)
}

// CreateQuadrantRequest encapsulates data for creating a quadrant
type CreateQuadrantRequest struct {
	Name        string
	Description string
	Color       *string // Hex color like #3b82f6
}

// UpdateQuadrantRequest encapsulates a partial update
type UpdateQuadrantRequest struct {
	ID int
	models.QuadrantPatch
}

type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
}

// NewService creates a new quadrant service
func NewService(repo database.DataStore, eventClient events.EventPublisher) Service {
	return &service{repo: repo, eventClient: eventClient}
}

func (s *service) ListQuadrants(ctx context.Context) ([]*models.Quadrant, error) {
	return s.repo.GetAllQuadrants(ctx)
}

func (s *service) GetQuadrant(ctx context.Context, id int) (*models.Quadrant, error) {
	if id <= 0 {
		return nil, ErrInvalidQuadrantID
	}
	return s.repo.GetQuadrantByID(ctx, id)
}

// CreateQuadrant validates and stores a quadrant
func (s *service) CreateQuadrant(ctx context.Context, req CreateQuadrantRequest) (*models.Quadrant, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrEmptyDescription
	}
	if req.Color != nil && !hexColorRegex.MatchString(*req.Color) {
		return nil, ErrInvalidColor
	}

	q, err := s.repo.CreateQuadrant(ctx, models.NewQuadrant{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create quadrant: %w", err)
	}

	events.Publish(s.eventClient, events.KindQuadrant, q.ID)
	return q, nil
}

// UpdateQuadrant validates supplied fields and merges them
func (s *service) UpdateQuadrant(ctx context.Context, req UpdateQuadrantRequest) (*models.Quadrant, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidQuadrantID
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return nil, ErrEmptyDescription
	}
	if req.Color.Value != nil && !hexColorRegex.MatchString(*req.Color.Value) {
		return nil, ErrInvalidColor
	}

	q, err := s.repo.UpdateQuadrant(ctx, req.ID, req.QuadrantPatch)
	if err != nil {
		return nil, err
	}

	if !req.QuadrantPatch.IsEmpty() {
		events.Publish(s.eventClient, events.KindQuadrant, q.ID)
	}
	return q, nil
}
