package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/techradar/internal/models"
)

const technologyColumns = `id, name, quadrant, ring, description, website, tags, custom_properties`

// TechnologyRepo handles all technology-related database operations.
type TechnologyRepo struct {
	db *sql.DB
}

// CreateTechnology stores a new technology and returns it with its assigned id
func (r *TechnologyRepo) CreateTechnology(ctx context.Context, payload models.NewTechnology) (*models.Technology, error) {
	tech := payload.Build()
	tags, err := encodeTags(tech.Tags)
	if err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO technologies (name, quadrant, ring, description, website, tags, custom_properties)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tech.Name, tech.Quadrant, tech.Ring, tech.Description,
		ptrToNullString(tech.Website), tags, ptrToNullString(tech.CustomProperties),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert technology '%s': %w", tech.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get technology ID after insert: %w", err)
	}
	tech.ID = int(id)
	return tech, nil
}

// GetTechnologyByID retrieves a technology by its ID
func (r *TechnologyRepo) GetTechnologyByID(ctx context.Context, id int) (*models.Technology, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+technologyColumns+` FROM technologies WHERE id = ?`, id)
	tech, err := scanTechnology(row)
	if err != nil {
		return nil, notFound("technology", id, err)
	}
	return tech, nil
}

// GetAllTechnologies retrieves all technologies in insertion order
func (r *TechnologyRepo) GetAllTechnologies(ctx context.Context) ([]*models.Technology, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+technologyColumns+` FROM technologies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all technologies: %w", err)
	}
	defer closeRows(rows)

	return collectTechnologies(rows)
}

// UpdateTechnology merges patch onto the stored technology and returns the result.
// The read and the write share one transaction so concurrent patches never
// lose each other's fields.
func (r *TechnologyRepo) UpdateTechnology(ctx context.Context, id int, patch models.TechnologyPatch) (*models.Technology, error) {
	var updated *models.Technology
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT `+technologyColumns+` FROM technologies WHERE id = ?`, id)
		current, err := scanTechnology(row)
		if err != nil {
			return notFound("technology", id, err)
		}

		updated = patch.Apply(current)
		if patch.IsEmpty() {
			return nil
		}

		tags, err := encodeTags(updated.Tags)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE technologies
			 SET name = ?, quadrant = ?, ring = ?, description = ?, website = ?, tags = ?, custom_properties = ?
			 WHERE id = ?`,
			updated.Name, updated.Quadrant, updated.Ring, updated.Description,
			ptrToNullString(updated.Website), tags, ptrToNullString(updated.CustomProperties), id,
		)
		if err != nil {
			return fmt.Errorf("failed to update technology %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CountTechnologies returns the number of stored technologies
func (r *TechnologyRepo) CountTechnologies(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM technologies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count technologies: %w", err)
	}
	return count, nil
}

func scanTechnology(row rowScanner) (*models.Technology, error) {
	tech := &models.Technology{}
	var website, custom sql.NullString
	var rawTags string
	if err := row.Scan(&tech.ID, &tech.Name, &tech.Quadrant, &tech.Ring, &tech.Description,
		&website, &rawTags, &custom); err != nil {
		return nil, err
	}
	tags, err := decodeTags(rawTags)
	if err != nil {
		return nil, err
	}
	tech.Website = nullStringToPtr(website)
	tech.CustomProperties = nullStringToPtr(custom)
	tech.Tags = tags
	return tech, nil
}

func collectTechnologies(rows *sql.Rows) ([]*models.Technology, error) {
	technologies := make([]*models.Technology, 0, 32)
	for rows.Next() {
		tech, err := scanTechnology(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan technology row: %w", err)
		}
		technologies = append(technologies, tech)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating technology rows: %w", err)
	}
	return technologies, nil
}
