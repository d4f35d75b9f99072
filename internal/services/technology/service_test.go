package technology

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/techradar/internal/events"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/query"
	"github.com/thenoetrevino/techradar/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestService(t *testing.T) (Service, *testutil.Fixture) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	testutil.SeedRadarShape(t, repo)
	return NewService(repo, nil), &testutil.Fixture{Repo: repo}
}

func createRequest(name string, quadrant, ring int) CreateTechnologyRequest {
	return CreateTechnologyRequest{
		Name:        name,
		Quadrant:    quadrant,
		Ring:        ring,
		Description: name + " is a technology",
	}
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreateTechnology_Scenario(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTechnology(ctx, createRequest("Go", 3, 0))
	require.NoError(t, err)

	all, err := svc.ListTechnologies(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, created, all[0])
	assert.Equal(t, 3, all[0].Quadrant)
	assert.Equal(t, 0, all[0].Ring)
	assert.Equal(t, []string{}, all[0].Tags)
	assert.Nil(t, all[0].Website)
}

func TestCreateTechnology_Validation(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()
	badURL := "ftp://example.com"
	empty := ""

	tests := []struct {
		name    string
		mutate  func(*CreateTechnologyRequest)
		wantErr error
	}{
		{"blank name", func(r *CreateTechnologyRequest) { r.Name = "   " }, ErrEmptyName},
		{"long name", func(r *CreateTechnologyRequest) { r.Name = strings.Repeat("a", MaxNameLength+1) }, ErrNameTooLong},
		{"blank description", func(r *CreateTechnologyRequest) { r.Description = "" }, ErrEmptyDescription},
		{"quadrant past collection", func(r *CreateTechnologyRequest) { r.Quadrant = 4 }, ErrInvalidQuadrant},
		{"negative ring", func(r *CreateTechnologyRequest) { r.Ring = -1 }, ErrInvalidRing},
		{"bad website", func(r *CreateTechnologyRequest) { r.Website = &badURL }, ErrInvalidWebsite},
		{"empty tag", func(r *CreateTechnologyRequest) { r.Tags = []string{"ok", " "} }, ErrEmptyTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest("Valid", 0, 0)
			tt.mutate(&req)
			_, err := svc.CreateTechnology(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
			assert.False(t, errors.Is(err, models.ErrNotFound))
		})
	}

	// Empty website from a form is treated as absent
	req := createRequest("Blank site", 0, 0)
	req.Website = &empty
	tech, err := svc.CreateTechnology(ctx, req)
	require.NoError(t, err)
	assert.Nil(t, tech.Website)
}

func TestCreateTechnology_RequiresQuadrantsToExist(t *testing.T) {
	t.Parallel()
	repo := testutil.SetupTestRepo(t)
	svc := NewService(repo, nil)

	_, err := svc.CreateTechnology(context.Background(), createRequest("Orphan", 0, 0))
	assert.ErrorIs(t, err, ErrInvalidQuadrant)
}

func TestCreateTechnology_PublishesEvent(t *testing.T) {
	t.Parallel()
	repo := testutil.SetupTestRepo(t)
	testutil.SeedRadarShape(t, repo)
	bus := events.NewBus()
	defer bus.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := bus.Listen(ctx)
	require.NoError(t, err)

	svc := NewService(repo, bus)
	tech, err := svc.CreateTechnology(ctx, createRequest("Go", 3, 0))
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, events.KindTechnology, ev.Kind)
		assert.Equal(t, tech.ID, ev.EntityID)
	case <-time.After(time.Second):
		t.Fatal("expected a store change event")
	}
}

// ============================================================================
// READ / SEARCH
// ============================================================================

func TestGetTechnology(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetTechnology(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidTechnologyID)

	_, err = svc.GetTechnology(ctx, 999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSearch(t *testing.T) {
	t.Parallel()
	svc, fx := newTestService(t)
	ctx := context.Background()
	testutil.CreateTestTechnology(t, fx.Repo, "React", 2, 0, "frontend")
	testutil.CreateTestTechnology(t, fx.Repo, "Trino", 3, 0)
	testutil.CreateTestTechnology(t, fx.Repo, "D2", 1, 1, "diagrams")

	all, err := svc.ListTechnologies(ctx)
	require.NoError(t, err)

	empty, err := svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, all, empty)

	upper, err := svc.Search(ctx, "REACT")
	require.NoError(t, err)
	lower, err := svc.Search(ctx, "react")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
	require.Len(t, lower, 1)
	assert.Equal(t, "React", lower[0].Name)

	byTag, err := svc.Search(ctx, "DIAGRAM")
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "D2", byTag[0].Name)

	quadrant := 3
	filtered, err := svc.Query(ctx, query.Filter{Query: "description", Quadrant: &quadrant})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Trino", filtered[0].Name)
}

func TestCountByQuadrant(t *testing.T) {
	t.Parallel()
	svc, fx := newTestService(t)
	testutil.CreateTestTechnology(t, fx.Repo, "a", 0, 0)
	testutil.CreateTestTechnology(t, fx.Repo, "b", 3, 0)
	testutil.CreateTestTechnology(t, fx.Repo, "c", 3, 2)

	counts, err := svc.CountByQuadrant(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0, 2}, counts)
}

// ============================================================================
// UPDATE
// ============================================================================

func TestUpdateTechnology_EmptyPatchLeavesRecordUnchanged(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()
	created, err := svc.CreateTechnology(ctx, createRequest("Go", 3, 0))
	require.NoError(t, err)

	updated, err := svc.UpdateTechnology(ctx, UpdateTechnologyRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestUpdateTechnology_NotFoundIsDistinct(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()
	name := "X"

	_, err := svc.UpdateTechnology(ctx, UpdateTechnologyRequest{ID: 999, TechnologyPatch: models.TechnologyPatch{Name: &name}})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.False(t, errors.Is(err, models.ErrInvalidInput))

	all, err := svc.ListTechnologies(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateTechnology_ValidatesMovedPosition(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()
	created, err := svc.CreateTechnology(ctx, createRequest("Go", 3, 0))
	require.NoError(t, err)

	ring := 9
	_, err = svc.UpdateTechnology(ctx, UpdateTechnologyRequest{ID: created.ID, TechnologyPatch: models.TechnologyPatch{Ring: &ring}})
	assert.ErrorIs(t, err, ErrInvalidRing)

	ring = 2
	updated, err := svc.UpdateTechnology(ctx, UpdateTechnologyRequest{ID: created.ID, TechnologyPatch: models.TechnologyPatch{Ring: &ring}})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Ring)
	assert.Equal(t, 3, updated.Quadrant)
}

func TestUpdateTechnology_TrimsName(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()
	created, err := svc.CreateTechnology(ctx, createRequest("Go", 3, 0))
	require.NoError(t, err)

	name := "  Golang  "
	updated, err := svc.UpdateTechnology(ctx, UpdateTechnologyRequest{ID: created.ID, TechnologyPatch: models.TechnologyPatch{Name: &name}})
	require.NoError(t, err)
	assert.Equal(t, "Golang", updated.Name)
}
