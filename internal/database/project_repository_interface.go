package database

import (
	"context"

	"github.com/thenoetrevino/techradar/internal/models"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	CreateProject(ctx context.Context, payload models.NewProject) (*models.Project, error)
	UpdateProject(ctx context.Context, id int, patch models.ProjectPatch) (*models.Project, error)
}

// ProjectRepository combines all project-related operations.
type ProjectRepository interface {
	ProjectReader
	ProjectWriter
}

// LinkRepository defines the technology/project join operations.
type LinkRepository interface {
	LinkTechnologyToProject(ctx context.Context, technologyID, projectID int, notes *string) (*models.TechnologyProject, error)
	GetAllLinks(ctx context.Context) ([]*models.TechnologyProject, error)
	GetLinksForTechnology(ctx context.Context, technologyID int) ([]*models.TechnologyProject, error)
	GetProjectsForTechnology(ctx context.Context, technologyID int) ([]*models.Project, error)
	GetTechnologiesForProject(ctx context.Context, projectID int) ([]*models.Technology, error)
}
