package database

import (
	"context"
	"testing"

	"github.com/thenoetrevino/techradar/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestRepo creates a fresh in-memory store for a single test
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := InitDB(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return NewRepository(db)
}

// createTestTechnology inserts a technology with sensible defaults
func createTestTechnology(t *testing.T, repo *Repository, name string, quadrant, ring int) *models.Technology {
	t.Helper()
	tech, err := repo.CreateTechnology(context.Background(), models.NewTechnology{
		Name:        name,
		Quadrant:    quadrant,
		Ring:        ring,
		Description: name + " description",
	})
	if err != nil {
		t.Fatalf("Failed to create technology %q: %v", name, err)
	}
	return tech
}

// createTestProject inserts an active project
func createTestProject(t *testing.T, repo *Repository, name string) *models.Project {
	t.Helper()
	project, err := repo.CreateProject(context.Background(), models.NewProject{
		Name:        name,
		Description: name + " description",
		Status:      models.ProjectStatusActive,
	})
	if err != nil {
		t.Fatalf("Failed to create project %q: %v", name, err)
	}
	return project
}

func technologyIDs(technologies []*models.Technology) []int {
	out := make([]int, 0, len(technologies))
	for _, tech := range technologies {
		out = append(out, tech.ID)
	}
	return out
}

func projectIDs(projects []*models.Project) []int {
	out := make([]int, 0, len(projects))
	for _, project := range projects {
		out = append(out, project.ID)
	}
	return out
}
