package ring

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/thenoetrevino/techradar/internal/database"
	"github.com/thenoetrevino/techradar/internal/events"
	"github.com/thenoetrevino/techradar/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service defines ring operations. Rings are returned innermost first:
// index 0 is the most recommended band.
type Service interface {
	ListRings(ctx context.Context) ([]*models.Ring, error)
	GetRing(ctx context.Context, id int) (*models.Ring, error)
	CreateRing(ctx context.Context, req CreateRingRequest) (*models.Ring, error)
	UpdateRing(ctx context.Context, req UpdateRingRequest) (*models.Ring, error)
}

// CreateRingRequest encapsulates data for creating a ring
type CreateRingRequest struct {
	Name        string
	Description string
	Color       *string
}

// UpdateRingRequest encapsulates a partial update
type UpdateRingRequest struct {
	ID int
	models.RingPatch
}

type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
}

// NewService creates a new ring service
func NewService(repo database.DataStore, eventClient events.EventPublisher) Service {
	return &service{repo: repo, eventClient: eventClient}
}

func (s *service) ListRings(ctx context.Context) ([]*models.Ring, error) {
	return s.repo.GetAllRings(ctx)
}

func (s *service) GetRing(ctx context.Context, id int) (*models.Ring, error) {
	if id <= 0 {
		return nil, ErrInvalidRingID
	}
	return s.repo.GetRingByID(ctx, id)
}

func (s *service) CreateRing(ctx context.Context, req CreateRingRequest) (*models.Ring, error) {
	if err := validate(&req.Name, &req.Description, req.Color); err != nil {
		return nil, err
	}

	r, err := s.repo.CreateRing(ctx, models.NewRing{Name: req.Name, Description: req.Description, Color: req.Color})
	if err != nil {
		return nil, fmt.Errorf("failed to create ring: %w", err)
	}

	events.Publish(s.eventClient, events.KindRing, r.ID)
	return r, nil
}

func (s *service) UpdateRing(ctx context.Context, req UpdateRingRequest) (*models.Ring, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidRingID
	}
	if req.Name != nil {
		name := *req.Name
		req.Name = &name
	}
	if err := validate(req.Name, req.Description, req.Color.Value); err != nil {
		return nil, err
	}

	r, err := s.repo.UpdateRing(ctx, req.ID, req.RingPatch)
	if err != nil {
		return nil, err
	}

	if !req.RingPatch.IsEmpty() {
		events.Publish(s.eventClient, events.KindRing, r.ID)
	}
	return r, nil
}

// validate checks whichever fields are present; nil means "not supplied"
func validate(name, description, color *string) error {
	if name != nil {
		*name = strings.TrimSpace(*name)
		if *name == "" {
			return ErrEmptyName
		}
	}
	if description != nil && strings.TrimSpace(*description) == "" {
		return ErrEmptyDescription
	}
	if color != nil && !hexColorRegex.MatchString(*color) {
		return ErrInvalidColor
	}
	return nil
}
