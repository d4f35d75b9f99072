package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied statement by statement.
// AUTOINCREMENT keeps ids strictly increasing and never reused.
// technology_projects deliberately has no foreign keys and no unique pair
// constraint: dangling and duplicate links are representable.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS quadrants (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		color TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS rings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		color TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS technologies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		quadrant INTEGER NOT NULL,
		ring INTEGER NOT NULL,
		description TEXT NOT NULL,
		website TEXT,
		tags TEXT NOT NULL DEFAULT '[]',
		custom_properties TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		image TEXT,
		website TEXT,
		repository TEXT,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS technology_projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		technology_id INTEGER NOT NULL,
		project_id INTEGER NOT NULL,
		notes TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_technology_projects_technology
		ON technology_projects(technology_id)`,
	`CREATE INDEX IF NOT EXISTS idx_technology_projects_project
		ON technology_projects(project_id)`,
}

// runMigrations creates the store schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
