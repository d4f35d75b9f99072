package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/techradar/internal/models"
)

// RingRepo handles all ring-related database operations.
type RingRepo struct {
	db *sql.DB
}

// CreateRing stores a new ring. Rings are ordered innermost first by insertion order.
func (r *RingRepo) CreateRing(ctx context.Context, payload models.NewRing) (*models.Ring, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO rings (name, description, color) VALUES (?, ?, ?)`,
		payload.Name, payload.Description, ptrToNullString(payload.Color),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ring '%s': %w", payload.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get ring ID after insert: %w", err)
	}

	return &models.Ring{
		ID:          int(id),
		Name:        payload.Name,
		Description: payload.Description,
		Color:       nullStringToPtr(ptrToNullString(payload.Color)),
	}, nil
}

// GetRingByID retrieves a ring by its ID
func (r *RingRepo) GetRingByID(ctx context.Context, id int) (*models.Ring, error) {
	ring := &models.Ring{}
	var color sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, color FROM rings WHERE id = ?`, id,
	).Scan(&ring.ID, &ring.Name, &ring.Description, &color)
	if err != nil {
		return nil, notFound("ring", id, err)
	}
	ring.Color = nullStringToPtr(color)
	return ring, nil
}

// GetAllRings retrieves all rings in insertion order
func (r *RingRepo) GetAllRings(ctx context.Context) ([]*models.Ring, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description, color FROM rings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all rings: %w", err)
	}
	defer closeRows(rows)

	rings := make([]*models.Ring, 0, models.RingCount)
	for rows.Next() {
		ring := &models.Ring{}
		var color sql.NullString
		if err := rows.Scan(&ring.ID, &ring.Name, &ring.Description, &color); err != nil {
			return nil, fmt.Errorf("failed to scan ring row: %w", err)
		}
		ring.Color = nullStringToPtr(color)
		rings = append(rings, ring)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ring rows: %w", err)
	}
	return rings, nil
}

// UpdateRing merges patch onto the stored ring
func (r *RingRepo) UpdateRing(ctx context.Context, id int, patch models.RingPatch) (*models.Ring, error) {
	var updated *models.Ring
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		current := &models.Ring{}
		var color sql.NullString
		err := tx.QueryRowContext(ctx,
			`SELECT id, name, description, color FROM rings WHERE id = ?`, id,
		).Scan(&current.ID, &current.Name, &current.Description, &color)
		if err != nil {
			return notFound("ring", id, err)
		}
		current.Color = nullStringToPtr(color)

		updated = patch.Apply(current)
		_, err = tx.ExecContext(ctx,
			`UPDATE rings SET name = ?, description = ?, color = ? WHERE id = ?`,
			updated.Name, updated.Description, ptrToNullString(updated.Color), id,
		)
		if err != nil {
			return fmt.Errorf("failed to update ring %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CountRings returns the number of stored rings
func (r *RingRepo) CountRings(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rings`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rings: %w", err)
	}
	return count, nil
}
