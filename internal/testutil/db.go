// Package testutil holds shared fixtures for tests that need a populated store.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/techradar/internal/database"
	"github.com/thenoetrevino/techradar/internal/models"
)

// SetupTestDB creates a fresh in-memory store closed at test cleanup
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// SetupTestRepo returns a repository over a fresh store
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t))
}

// SeedRadarShape inserts the four quadrants and four rings every radar needs
func SeedRadarShape(t *testing.T, repo database.DataStore) {
	t.Helper()
	ctx := context.Background()
	for _, name := range []string{"Techniques", "Tools", "Frameworks", "Platforms"} {
		if _, err := repo.CreateQuadrant(ctx, models.NewQuadrant{Name: name, Description: name + " quadrant"}); err != nil {
			t.Fatalf("Failed to create quadrant %s: %v", name, err)
		}
	}
	for _, name := range []string{"Adopt", "Trial", "Assess", "Hold"} {
		if _, err := repo.CreateRing(ctx, models.NewRing{Name: name, Description: name + " ring"}); err != nil {
			t.Fatalf("Failed to create ring %s: %v", name, err)
		}
	}
}

// CreateTestTechnology inserts a technology directly into the store and returns its ID
func CreateTestTechnology(t *testing.T, repo database.DataStore, name string, quadrant, ring int, tags ...string) int {
	t.Helper()
	tech, err := repo.CreateTechnology(context.Background(), models.NewTechnology{
		Name:        name,
		Quadrant:    quadrant,
		Ring:        ring,
		Description: name + " description",
		Tags:        tags,
	})
	if err != nil {
		t.Fatalf("Failed to create technology %s: %v", name, err)
	}
	return tech.ID
}

// CreateTestProject inserts an active project and returns its ID
func CreateTestProject(t *testing.T, repo database.DataStore, name string) int {
	t.Helper()
	project, err := repo.CreateProject(context.Background(), models.NewProject{
		Name:        name,
		Description: name + " description",
		Status:      models.ProjectStatusActive,
	})
	if err != nil {
		t.Fatalf("Failed to create project %s: %v", name, err)
	}
	return project.ID
}

// Fixture bundles the store a service under test was built on, so tests can
// seed records without going through validation.
type Fixture struct {
	Repo database.DataStore
}
