package database

import (
	"context"
	"reflect"
	"testing"
)

func TestLinkTechnologyToProject_TraversalSymmetry(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	tech := createTestTechnology(t, repo, "Go", 3, 0)
	project := createTestProject(t, repo, "Radar")
	notes := "backend"

	link, err := repo.LinkTechnologyToProject(ctx, tech.ID, project.ID, &notes)
	if err != nil {
		t.Fatalf("LinkTechnologyToProject failed: %v", err)
	}
	if link.ID != 1 || link.Notes == nil || *link.Notes != "backend" {
		t.Errorf("Unexpected link record: %#v", link)
	}

	projects, err := repo.GetProjectsForTechnology(ctx, tech.ID)
	if err != nil {
		t.Fatalf("GetProjectsForTechnology failed: %v", err)
	}
	if got := projectIDs(projects); !reflect.DeepEqual(got, []int{project.ID}) {
		t.Errorf("Expected project %d, got %v", project.ID, got)
	}

	technologies, err := repo.GetTechnologiesForProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetTechnologiesForProject failed: %v", err)
	}
	if got := technologyIDs(technologies); !reflect.DeepEqual(got, []int{tech.ID}) {
		t.Errorf("Expected technology %d, got %v", tech.ID, got)
	}
}

func TestLinkTechnologyToProject_DuplicatesAreStoredButDeduplicatedOnRead(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	tech := createTestTechnology(t, repo, "Go", 3, 0)
	project := createTestProject(t, repo, "Radar")

	for i := 0; i < 3; i++ {
		if _, err := repo.LinkTechnologyToProject(ctx, tech.ID, project.ID, nil); err != nil {
			t.Fatalf("LinkTechnologyToProject failed: %v", err)
		}
	}

	links, err := repo.GetAllLinks(ctx)
	if err != nil {
		t.Fatalf("GetAllLinks failed: %v", err)
	}
	if len(links) != 3 {
		t.Errorf("Expected 3 join records, got %d", len(links))
	}

	projects, err := repo.GetProjectsForTechnology(ctx, tech.ID)
	if err != nil {
		t.Fatalf("GetProjectsForTechnology failed: %v", err)
	}
	if len(projects) != 1 {
		t.Errorf("Expected 1 distinct project, got %d", len(projects))
	}
}

func TestLinkTechnologyToProject_DanglingLinkIsRepresentable(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	project := createTestProject(t, repo, "Radar")

	if _, err := repo.LinkTechnologyToProject(ctx, 404, project.ID, nil); err != nil {
		t.Fatalf("Expected dangling link to be accepted, got %v", err)
	}

	technologies, err := repo.GetTechnologiesForProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetTechnologiesForProject failed: %v", err)
	}
	if len(technologies) != 0 {
		t.Errorf("Expected dangling link to resolve to nothing, got %d technologies", len(technologies))
	}
}

func TestTraversal_ReturnsStoreOrder(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	first := createTestTechnology(t, repo, "first", 0, 0)
	second := createTestTechnology(t, repo, "second", 1, 1)
	project := createTestProject(t, repo, "Radar")

	// Linked in reverse to prove ordering comes from the technology collection
	for _, id := range []int{second.ID, first.ID} {
		if _, err := repo.LinkTechnologyToProject(ctx, id, project.ID, nil); err != nil {
			t.Fatalf("LinkTechnologyToProject failed: %v", err)
		}
	}

	technologies, err := repo.GetTechnologiesForProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetTechnologiesForProject failed: %v", err)
	}
	if got := technologyIDs(technologies); !reflect.DeepEqual(got, []int{first.ID, second.ID}) {
		t.Errorf("Expected store order, got %v", got)
	}
}

func TestTraversal_UnknownIDsReturnEmpty(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	projects, err := repo.GetProjectsForTechnology(ctx, 1)
	if err != nil || len(projects) != 0 {
		t.Errorf("Expected empty result, got %v / %v", projects, err)
	}
	technologies, err := repo.GetTechnologiesForProject(ctx, 1)
	if err != nil || len(technologies) != 0 {
		t.Errorf("Expected empty result, got %v / %v", technologies, err)
	}
}

func TestGetLinksForTechnology_KeepsDuplicatesAndNotes(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	goTech := createTestTechnology(t, repo, "Go", 3, 0)
	rust := createTestTechnology(t, repo, "Rust", 3, 1)
	project := createTestProject(t, repo, "Radar")
	notes := "cli"

	for _, techID := range []int{goTech.ID, rust.ID, goTech.ID} {
		if _, err := repo.LinkTechnologyToProject(ctx, techID, project.ID, &notes); err != nil {
			t.Fatalf("LinkTechnologyToProject failed: %v", err)
		}
	}

	links, err := repo.GetLinksForTechnology(ctx, goTech.ID)
	if err != nil {
		t.Fatalf("GetLinksForTechnology failed: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("Expected 2 links for Go, got %d", len(links))
	}
	if links[0].ID != 1 || links[1].ID != 3 {
		t.Errorf("Expected link ids [1 3], got [%d %d]", links[0].ID, links[1].ID)
	}
	if links[0].Notes == nil || *links[0].Notes != "cli" {
		t.Errorf("Expected notes to survive, got %#v", links[0].Notes)
	}
}
