package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/techradar/internal/models"
)

const projectColumns = `id, name, description, image, website, repository, status`

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	db *sql.DB
}

// CreateProject stores a new project
func (r *ProjectRepo) CreateProject(ctx context.Context, payload models.NewProject) (*models.Project, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (name, description, image, website, repository, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		payload.Name, payload.Description,
		ptrToNullString(payload.Image), ptrToNullString(payload.Website), ptrToNullString(payload.Repository),
		payload.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project '%s': %w", payload.Name, err)
	}

	projectID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get project ID after insert: %w", err)
	}

	// Retrieve the created project
	return r.GetProjectByID(ctx, int(projectID))
}

// GetProjectByID retrieves a project by its ID
func (r *ProjectRepo) GetProjectByID(ctx context.Context, id int) (*models.Project, error) {
	project, err := scanProject(r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
	if err != nil {
		return nil, notFound("project", id, err)
	}
	return project, nil
}

// GetAllProjects retrieves all projects ordered by ID
func (r *ProjectRepo) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all projects: %w", err)
	}
	defer closeRows(rows)

	return collectProjects(rows)
}

// UpdateProject merges patch onto the stored project
func (r *ProjectRepo) UpdateProject(ctx context.Context, id int, patch models.ProjectPatch) (*models.Project, error) {
	var updated *models.Project
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		current, err := scanProject(tx.QueryRowContext(ctx,
			`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
		if err != nil {
			return notFound("project", id, err)
		}

		updated = patch.Apply(current)
		_, err = tx.ExecContext(ctx,
			`UPDATE projects
			 SET name = ?, description = ?, image = ?, website = ?, repository = ?, status = ?
			 WHERE id = ?`,
			updated.Name, updated.Description,
			ptrToNullString(updated.Image), ptrToNullString(updated.Website), ptrToNullString(updated.Repository),
			updated.Status, id,
		)
		if err != nil {
			return fmt.Errorf("failed to update project %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func scanProject(row rowScanner) (*models.Project, error) {
	project := &models.Project{}
	var image, website, repository sql.NullString
	if err := row.Scan(&project.ID, &project.Name, &project.Description,
		&image, &website, &repository, &project.Status); err != nil {
		return nil, err
	}
	project.Image = nullStringToPtr(image)
	project.Website = nullStringToPtr(website)
	project.Repository = nullStringToPtr(repository)
	return project, nil
}

func collectProjects(rows *sql.Rows) ([]*models.Project, error) {
	projects := make([]*models.Project, 0, 10)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}
