package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/techradar/internal/models"
)

// ============================================================================
// Technology <-> Project join
// ============================================================================

// LinkRepo handles the technology_projects join table.
type LinkRepo struct {
	db *sql.DB
}

// LinkTechnologyToProject appends a join record. Neither id is checked for
// existence and an existing pair is linked again rather than rejected.
func (r *LinkRepo) LinkTechnologyToProject(ctx context.Context, technologyID, projectID int, notes *string) (*models.TechnologyProject, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO technology_projects (technology_id, project_id, notes) VALUES (?, ?, ?)`,
		technologyID, projectID, ptrToNullString(notes),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to link technology %d to project %d: %w", technologyID, projectID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get link ID after insert: %w", err)
	}

	return &models.TechnologyProject{
		ID:           int(id),
		TechnologyID: technologyID,
		ProjectID:    projectID,
		Notes:        nullStringToPtr(ptrToNullString(notes)),
	}, nil
}

// GetAllLinks retrieves every join record in insertion order
func (r *LinkRepo) GetAllLinks(ctx context.Context) ([]*models.TechnologyProject, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, technology_id, project_id, notes FROM technology_projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer closeRows(rows)

	return collectLinks(rows)
}

// GetLinksForTechnology returns the join records of one technology, duplicates
// included, in insertion order
func (r *LinkRepo) GetLinksForTechnology(ctx context.Context, technologyID int) ([]*models.TechnologyProject, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, technology_id, project_id, notes FROM technology_projects
		 WHERE technology_id = ? ORDER BY id`,
		technologyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query links for technology %d: %w", technologyID, err)
	}
	defer closeRows(rows)

	return collectLinks(rows)
}

func collectLinks(rows *sql.Rows) ([]*models.TechnologyProject, error) {
	links := make([]*models.TechnologyProject, 0, 16)
	for rows.Next() {
		link := &models.TechnologyProject{}
		var notes sql.NullString
		if err := rows.Scan(&link.ID, &link.TechnologyID, &link.ProjectID, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan link row: %w", err)
		}
		link.Notes = nullStringToPtr(notes)
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating link rows: %w", err)
	}
	return links, nil
}

// GetProjectsForTechnology returns the distinct projects linked to a technology,
// in project insertion order. Links to missing projects are skipped.
func (r *LinkRepo) GetProjectsForTechnology(ctx context.Context, technologyID int) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects
		 WHERE id IN (SELECT project_id FROM technology_projects WHERE technology_id = ?)
		 ORDER BY id`,
		technologyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects for technology %d: %w", technologyID, err)
	}
	defer closeRows(rows)

	return collectProjects(rows)
}

// GetTechnologiesForProject returns the distinct technologies linked to a project,
// in technology insertion order.
func (r *LinkRepo) GetTechnologiesForProject(ctx context.Context, projectID int) ([]*models.Technology, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+technologyColumns+` FROM technologies
		 WHERE id IN (SELECT technology_id FROM technology_projects WHERE project_id = ?)
		 ORDER BY id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query technologies for project %d: %w", projectID, err)
	}
	defer closeRows(rows)

	return collectTechnologies(rows)
}
