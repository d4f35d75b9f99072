package database

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"sync"
	"testing"

	"github.com/thenoetrevino/techradar/internal/models"
)

// ============================================================================
// Create
// ============================================================================

func TestCreateTechnology_AppliesDefaults(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateTechnology(ctx, models.NewTechnology{
		Name:        "Go",
		Quadrant:    3,
		Ring:        0,
		Description: "A language",
	})
	if err != nil {
		t.Fatalf("CreateTechnology failed: %v", err)
	}

	all, err := repo.GetAllTechnologies(ctx)
	if err != nil {
		t.Fatalf("GetAllTechnologies failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 technology, got %d", len(all))
	}

	got := all[0]
	if got.ID != 1 || created.ID != 1 {
		t.Errorf("Expected id 1, got stored %d / returned %d", got.ID, created.ID)
	}
	if got.Quadrant != 3 || got.Ring != 0 {
		t.Errorf("Expected quadrant 3 ring 0, got %d/%d", got.Quadrant, got.Ring)
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Errorf("Expected empty tag list, got %#v", got.Tags)
	}
	if got.Website != nil {
		t.Errorf("Expected nil website, got %q", *got.Website)
	}
	if got.CustomProperties != nil {
		t.Errorf("Expected nil custom properties, got %q", *got.CustomProperties)
	}
}

func TestCreateTechnology_IDsStrictlyIncrease(t *testing.T) {
	repo := setupTestRepo(t)

	last := 0
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		tech := createTestTechnology(t, repo, name, 0, 0)
		if tech.ID <= last {
			t.Fatalf("Expected id greater than %d, got %d", last, tech.ID)
		}
		last = tech.ID
	}
}

func TestCreateTechnology_PreservesOptionalFields(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	website := "https://go.dev"
	custom := `{"owner":"platform"}`

	created, err := repo.CreateTechnology(ctx, models.NewTechnology{
		Name:             "Go",
		Description:      "A language",
		Website:          &website,
		Tags:             []string{"language", "backend"},
		CustomProperties: &custom,
	})
	if err != nil {
		t.Fatalf("CreateTechnology failed: %v", err)
	}

	got, err := repo.GetTechnologyByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTechnologyByID failed: %v", err)
	}
	if !reflect.DeepEqual(created, got) {
		t.Errorf("Stored technology differs from created one:\n got %#v\nwant %#v", got, created)
	}
}

// ============================================================================
// Read
// ============================================================================

func TestGetTechnologyByID_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetTechnologyByID(context.Background(), 42)
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetAllTechnologies_InsertionOrder(t *testing.T) {
	repo := setupTestRepo(t)
	want := []int{
		createTestTechnology(t, repo, "zeta", 1, 1).ID,
		createTestTechnology(t, repo, "alpha", 0, 0).ID,
		createTestTechnology(t, repo, "mid", 2, 3).ID,
	}

	all, err := repo.GetAllTechnologies(context.Background())
	if err != nil {
		t.Fatalf("GetAllTechnologies failed: %v", err)
	}
	if got := technologyIDs(all); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}
}

func TestGetAllTechnologies_EmptyStore(t *testing.T) {
	repo := setupTestRepo(t)

	all, err := repo.GetAllTechnologies(context.Background())
	if err != nil {
		t.Fatalf("GetAllTechnologies failed: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", all)
	}
}

// ============================================================================
// Update
// ============================================================================

func TestUpdateTechnology_EmptyPatchIsIdentity(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	website := "https://example.com"
	created, err := repo.CreateTechnology(ctx, models.NewTechnology{
		Name: "Rust", Quadrant: 2, Ring: 1, Description: "d", Website: &website, Tags: []string{"systems"},
	})
	if err != nil {
		t.Fatalf("CreateTechnology failed: %v", err)
	}

	updated, err := repo.UpdateTechnology(ctx, created.ID, models.TechnologyPatch{})
	if err != nil {
		t.Fatalf("UpdateTechnology failed: %v", err)
	}
	stored, err := repo.GetTechnologyByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTechnologyByID failed: %v", err)
	}

	if !reflect.DeepEqual(created, updated) || !reflect.DeepEqual(created, stored) {
		t.Errorf("Empty patch changed the technology:\ncreated %#v\nupdated %#v\nstored  %#v", created, updated, stored)
	}
}

func TestUpdateTechnology_MergesOnlyGivenFields(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	tech := createTestTechnology(t, repo, "Kafka", 3, 2)
	ring := 0
	tags := []string{"streaming"}

	updated, err := repo.UpdateTechnology(ctx, tech.ID, models.TechnologyPatch{
		Ring:    &ring,
		Tags:    &tags,
		Website: models.Some("https://kafka.apache.org"),
	})
	if err != nil {
		t.Fatalf("UpdateTechnology failed: %v", err)
	}

	if updated.ID != tech.ID || updated.Name != "Kafka" || updated.Quadrant != 3 {
		t.Errorf("Untouched fields changed: %#v", updated)
	}
	if updated.Ring != 0 {
		t.Errorf("Expected ring 0, got %d", updated.Ring)
	}
	if !reflect.DeepEqual(updated.Tags, tags) {
		t.Errorf("Expected tags %v, got %v", tags, updated.Tags)
	}

	stored, err := repo.GetTechnologyByID(ctx, tech.ID)
	if err != nil {
		t.Fatalf("GetTechnologyByID failed: %v", err)
	}
	if !reflect.DeepEqual(stored, updated) {
		t.Errorf("Stored technology differs from returned one")
	}
}

func TestUpdateTechnology_ClearsNullableField(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	website := "https://example.com"
	tech, err := repo.CreateTechnology(ctx, models.NewTechnology{Name: "X", Description: "d", Website: &website})
	if err != nil {
		t.Fatalf("CreateTechnology failed: %v", err)
	}

	updated, err := repo.UpdateTechnology(ctx, tech.ID, models.TechnologyPatch{Website: models.Null[string]()})
	if err != nil {
		t.Fatalf("UpdateTechnology failed: %v", err)
	}
	if updated.Website != nil {
		t.Errorf("Expected website cleared, got %q", *updated.Website)
	}
}

func TestUpdateTechnology_MissingIDDoesNotCreate(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	name := "X"

	_, err := repo.UpdateTechnology(ctx, 999, models.TechnologyPatch{Name: &name})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	count, err := repo.CountTechnologies(ctx)
	if err != nil {
		t.Fatalf("CountTechnologies failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no technologies, got %d", count)
	}
}

func TestUpdateTechnology_ConcurrentPatchesDoNotLoseFields(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	tech := createTestTechnology(t, repo, "Shared", 0, 0)

	const rounds = 20
	var wg sync.WaitGroup
	errs := make(chan error, rounds*2)
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tags := []string{"concurrent"}
			if _, err := repo.UpdateTechnology(ctx, tech.ID, models.TechnologyPatch{Tags: &tags}); err != nil {
				errs <- err
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := repo.UpdateTechnology(ctx, tech.ID, models.TechnologyPatch{Website: models.Some("https://x.dev")}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent update failed: %v", err)
	}

	stored, err := repo.GetTechnologyByID(ctx, tech.ID)
	if err != nil {
		t.Fatalf("GetTechnologyByID failed: %v", err)
	}
	if !slices.Contains(stored.Tags, "concurrent") || stored.Website == nil {
		t.Errorf("Expected both patches applied, got %#v", stored)
	}
}
