package project

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/thenoetrevino/techradar/internal/database"
	"github.com/thenoetrevino/techradar/internal/events"
	"github.com/thenoetrevino/techradar/internal/models"
)

// MaxNameLength bounds project names
const MaxNameLength = 100

// Service defines all project-related business operations, including the
// technology/project association.
type Service interface {
	// Read operations
	ListProjects(ctx context.Context) ([]*models.Project, error)
	GetProject(ctx context.Context, id int) (*models.Project, error)
	ProjectsForTechnology(ctx context.Context, technologyID int) ([]*models.Project, error)
	TechnologiesForProject(ctx context.Context, projectID int) ([]*models.Technology, error)
	ListLinks(ctx context.Context) ([]*models.TechnologyProject, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error)
	Link(ctx context.Context, req LinkRequest) (*models.TechnologyProject, error)
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name        string
	Description string
	Image       *string
	Website     *string
	Repository  *string
	Status      string
}

// UpdateProjectRequest encapsulates a partial update
type UpdateProjectRequest struct {
	ID int
	models.ProjectPatch
}

// LinkRequest associates a technology with a project
type LinkRequest struct {
	TechnologyID int
	ProjectID    int
	Notes        *string
}

// service implements Service interface
type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
}

// NewService creates a new project service
func NewService(repo database.DataStore, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// ListProjects retrieves all projects
func (s *service) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return s.repo.GetAllProjects(ctx)
}

// GetProject retrieves a project by ID
func (s *service) GetProject(ctx context.Context, id int) (*models.Project, error) {
	if id <= 0 {
		return nil, ErrInvalidProjectID
	}
	return s.repo.GetProjectByID(ctx, id)
}

// ProjectsForTechnology returns the distinct projects linked to a technology
func (s *service) ProjectsForTechnology(ctx context.Context, technologyID int) ([]*models.Project, error) {
	if technologyID <= 0 {
		return nil, ErrInvalidTechnologyID
	}
	return s.repo.GetProjectsForTechnology(ctx, technologyID)
}

// TechnologiesForProject returns the distinct technologies linked to a project
func (s *service) TechnologiesForProject(ctx context.Context, projectID int) ([]*models.Technology, error) {
	if projectID <= 0 {
		return nil, ErrInvalidProjectID
	}
	return s.repo.GetTechnologiesForProject(ctx, projectID)
}

// ListLinks returns every join record
func (s *service) ListLinks(ctx context.Context) ([]*models.TechnologyProject, error) {
	return s.repo.GetAllLinks(ctx)
}

// CreateProject creates a new project with validation
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrEmptyDescription
	}
	if strings.TrimSpace(req.Status) == "" {
		return nil, ErrEmptyStatus
	}
	if err := validateURL(req.Website); err != nil {
		return nil, err
	}
	if err := validateURL(req.Repository); err != nil {
		return nil, err
	}

	project, err := s.repo.CreateProject(ctx, models.NewProject{
		Name:        req.Name,
		Description: req.Description,
		Image:       emptyToNil(req.Image),
		Website:     emptyToNil(req.Website),
		Repository:  emptyToNil(req.Repository),
		Status:      strings.TrimSpace(req.Status),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	events.Publish(s.eventClient, events.KindProject, project.ID)
	return project, nil
}

// UpdateProject validates supplied fields and merges them
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidProjectID
	}

	patch := req.ProjectPatch
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
	if patch.Status != nil && strings.TrimSpace(*patch.Status) == "" {
		return nil, ErrEmptyStatus
	}
	if err := validateURL(patch.Website.Value); err != nil {
		return nil, err
	}
	if err := validateURL(patch.Repository.Value); err != nil {
		return nil, err
	}
	// cleared links are stored as null, matching create
	patch.Image.Value = emptyToNil(patch.Image.Value)
	patch.Website.Value = emptyToNil(patch.Website.Value)
	patch.Repository.Value = emptyToNil(patch.Repository.Value)

	project, err := s.repo.UpdateProject(ctx, req.ID, patch)
	if err != nil {
		return nil, err
	}

	if !patch.IsEmpty() {
		events.Publish(s.eventClient, events.KindProject, project.ID)
	}
	return project, nil
}

// Link appends a technology/project association. Ids are not checked for
// existence and repeated pairs produce additional join records.
func (s *service) Link(ctx context.Context, req LinkRequest) (*models.TechnologyProject, error) {
	if req.TechnologyID <= 0 {
		return nil, ErrInvalidTechnologyID
	}
	if req.ProjectID <= 0 {
		return nil, ErrInvalidProjectID
	}

	link, err := s.repo.LinkTechnologyToProject(ctx, req.TechnologyID, req.ProjectID, emptyToNil(req.Notes))
	if err != nil {
		return nil, fmt.Errorf("failed to link technology: %w", err)
	}

	events.Publish(s.eventClient, events.KindLink, link.ID)
	return link, nil
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

func validateURL(raw *string) error {
	if raw == nil || *raw == "" {
		return nil
	}
	u, err := url.Parse(*raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
