package technology

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/thenoetrevino/techradar/internal/database"
	"github.com/thenoetrevino/techradar/internal/events"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/query"
)

// MaxNameLength bounds technology names
const MaxNameLength = 50

// Service defines all technology-related business operations
type Service interface {
	// Read operations
	ListTechnologies(ctx context.Context) ([]*models.Technology, error)
	GetTechnology(ctx context.Context, id int) (*models.Technology, error)
	Search(ctx context.Context, q string) ([]*models.Technology, error)
	Query(ctx context.Context, filter query.Filter) ([]*models.Technology, error)
	CountByQuadrant(ctx context.Context) ([]int, error)

	// Write operations
	CreateTechnology(ctx context.Context, req CreateTechnologyRequest) (*models.Technology, error)
	UpdateTechnology(ctx context.Context, req UpdateTechnologyRequest) (*models.Technology, error)
}

// CreateTechnologyRequest encapsulates data for creating a technology
type CreateTechnologyRequest struct {
	Name             string
	Quadrant         int
	Ring             int
	Description      string
	Website          *string
	Tags             []string
	CustomProperties *string
}

// UpdateTechnologyRequest encapsulates a partial update
type UpdateTechnologyRequest struct {
	ID int
	models.TechnologyPatch
}

// service implements Service interface
type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
}

// NewService creates a new technology service
func NewService(repo database.DataStore, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// ListTechnologies returns every technology in insertion order
func (s *service) ListTechnologies(ctx context.Context) ([]*models.Technology, error) {
	return s.repo.GetAllTechnologies(ctx)
}

// GetTechnology retrieves a technology, wrapping models.ErrNotFound when missing
func (s *service) GetTechnology(ctx context.Context, id int) (*models.Technology, error) {
	if id <= 0 {
		return nil, ErrInvalidTechnologyID
	}
	return s.repo.GetTechnologyByID(ctx, id)
}

// Search is a case-insensitive substring search over name, description and tags.
// An empty query lists everything.
func (s *service) Search(ctx context.Context, q string) ([]*models.Technology, error) {
	return s.Query(ctx, query.Filter{Query: q})
}

// Query applies the combined search, quadrant and ring filter
func (s *service) Query(ctx context.Context, filter query.Filter) ([]*models.Technology, error) {
	all, err := s.repo.GetAllTechnologies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list technologies: %w", err)
	}
	return filter.Apply(all), nil
}

// CountByQuadrant returns how many technologies sit in each quadrant index
func (s *service) CountByQuadrant(ctx context.Context) ([]int, error) {
	all, err := s.repo.GetAllTechnologies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list technologies: %w", err)
	}
	counts := make([]int, models.QuadrantCount)
	for _, t := range all {
		if t.Quadrant >= 0 && t.Quadrant < len(counts) {
			counts[t.Quadrant]++
		}
	}
	return counts, nil
}

// CreateTechnology validates and stores a new technology
func (s *service) CreateTechnology(ctx context.Context, req CreateTechnologyRequest) (*models.Technology, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrEmptyDescription
	}
	if err := s.validatePosition(ctx, req.Quadrant, req.Ring); err != nil {
		return nil, err
	}
	if err := validateWebsite(req.Website); err != nil {
		return nil, err
	}
	if err := validateTags(req.Tags); err != nil {
		return nil, err
	}

	tech, err := s.repo.CreateTechnology(ctx, models.NewTechnology{
		Name:             req.Name,
		Quadrant:         req.Quadrant,
		Ring:             req.Ring,
		Description:      req.Description,
		Website:          emptyToNil(req.Website),
		Tags:             req.Tags,
		CustomProperties: req.CustomProperties,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create technology: %w", err)
	}

	events.Publish(s.eventClient, events.KindTechnology, tech.ID)
	return tech, nil
}

// UpdateTechnology validates the supplied fields and merges them onto the stored record
func (s *service) UpdateTechnology(ctx context.Context, req UpdateTechnologyRequest) (*models.Technology, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidTechnologyID
	}

	patch := req.TechnologyPatch
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		return nil, ErrEmptyDescription
	}
	if patch.Quadrant != nil || patch.Ring != nil {
		current, err := s.repo.GetTechnologyByID(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		quadrant, ring := current.Quadrant, current.Ring
		if patch.Quadrant != nil {
			quadrant = *patch.Quadrant
		}
		if patch.Ring != nil {
			ring = *patch.Ring
		}
		if err := s.validatePosition(ctx, quadrant, ring); err != nil {
			return nil, err
		}
	}
	if patch.Website.Set {
		if err := validateWebsite(patch.Website.Value); err != nil {
			return nil, err
		}
		patch.Website.Value = emptyToNil(patch.Website.Value)
	}
	if patch.Tags != nil {
		if err := validateTags(*patch.Tags); err != nil {
			return nil, err
		}
	}

	tech, err := s.repo.UpdateTechnology(ctx, req.ID, patch)
	if err != nil {
		return nil, err
	}

	if !patch.IsEmpty() {
		events.Publish(s.eventClient, events.KindTechnology, tech.ID)
	}
	return tech, nil
}

// validatePosition requires the indices to address a stored record and a
// drawable radar cell.
func (s *service) validatePosition(ctx context.Context, quadrant, ring int) error {
	quadrants, err := s.repo.CountQuadrants(ctx)
	if err != nil {
		return fmt.Errorf("failed to count quadrants: %w", err)
	}
	if quadrant < 0 || quadrant >= quadrants || quadrant >= models.QuadrantCount {
		return fmt.Errorf("%w (got %d)", ErrInvalidQuadrant, quadrant)
	}

	rings, err := s.repo.CountRings(ctx)
	if err != nil {
		return fmt.Errorf("failed to count rings: %w", err)
	}
	if ring < 0 || ring >= rings || ring >= models.RingCount {
		return fmt.Errorf("%w (got %d)", ErrInvalidRing, ring)
	}

	return nil
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateWebsite(website *string) error {
	if website == nil || *website == "" {
		return nil
	}
	u, err := url.Parse(*website)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidWebsite
	}
	return nil
}

func validateTags(tags []string) error {
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return ErrEmptyTag
		}
	}
	return nil
}

// emptyToNil treats an empty website as absent, as the add form submits ""
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
