package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/techradar/internal/models"
)

// QuadrantRepo handles all quadrant-related database operations.
type QuadrantRepo struct {
	db *sql.DB
}

// CreateQuadrant stores a new quadrant. Its index is its position in insertion order.
func (r *QuadrantRepo) CreateQuadrant(ctx context.Context, payload models.NewQuadrant) (*models.Quadrant, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO quadrants (name, description, color) VALUES (?, ?, ?)`,
		payload.Name, payload.Description, ptrToNullString(payload.Color),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert quadrant '%s': %w", payload.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get quadrant ID after insert: %w", err)
	}

	return &models.Quadrant{
		ID:          int(id),
		Name:        payload.Name,
		Description: payload.Description,
		Color:       nullStringToPtr(ptrToNullString(payload.Color)),
	}, nil
}

// GetQuadrantByID retrieves a quadrant by its ID
func (r *QuadrantRepo) GetQuadrantByID(ctx context.Context, id int) (*models.Quadrant, error) {
	q := &models.Quadrant{}
	var color sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, color FROM quadrants WHERE id = ?`, id,
	).Scan(&q.ID, &q.Name, &q.Description, &color)
	if err != nil {
		return nil, notFound("quadrant", id, err)
	}
	q.Color = nullStringToPtr(color)
	return q, nil
}

// GetAllQuadrants retrieves all quadrants in insertion order
func (r *QuadrantRepo) GetAllQuadrants(ctx context.Context) ([]*models.Quadrant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description, color FROM quadrants ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all quadrants: %w", err)
	}
	defer closeRows(rows)

	quadrants := make([]*models.Quadrant, 0, models.QuadrantCount)
	for rows.Next() {
		q := &models.Quadrant{}
		var color sql.NullString
		if err := rows.Scan(&q.ID, &q.Name, &q.Description, &color); err != nil {
			return nil, fmt.Errorf("failed to scan quadrant row: %w", err)
		}
		q.Color = nullStringToPtr(color)
		quadrants = append(quadrants, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quadrant rows: %w", err)
	}
	return quadrants, nil
}

// UpdateQuadrant merges patch onto the stored quadrant
func (r *QuadrantRepo) UpdateQuadrant(ctx context.Context, id int, patch models.QuadrantPatch) (*models.Quadrant, error) {
	var updated *models.Quadrant
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		current := &models.Quadrant{}
		var color sql.NullString
		err := tx.QueryRowContext(ctx,
			`SELECT id, name, description, color FROM quadrants WHERE id = ?`, id,
		).Scan(&current.ID, &current.Name, &current.Description, &color)
		if err != nil {
			return notFound("quadrant", id, err)
		}
		current.Color = nullStringToPtr(color)

		updated = patch.Apply(current)
		_, err = tx.ExecContext(ctx,
			`UPDATE quadrants SET name = ?, description = ?, color = ? WHERE id = ?`,
			updated.Name, updated.Description, ptrToNullString(updated.Color), id,
		)
		if err != nil {
			return fmt.Errorf("failed to update quadrant %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CountQuadrants returns the number of stored quadrants, which bounds valid quadrant indices
func (r *QuadrantRepo) CountQuadrants(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quadrants`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count quadrants: %w", err)
	}
	return count, nil
}
