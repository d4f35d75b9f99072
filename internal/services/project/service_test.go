package project

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/techradar/internal/events"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/testutil"
)

func newTestService(t *testing.T) (Service, *testutil.Fixture) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	testutil.SeedRadarShape(t, repo)
	return NewService(repo, nil), &testutil.Fixture{Repo: repo}
}

// ============================================================================
// CREATE / UPDATE
// ============================================================================

func TestCreateProject(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()
	blank := ""

	p, err := svc.CreateProject(ctx, CreateProjectRequest{
		Name:        "VW Tech Radar",
		Description: "Visualization tool for technology choices and assessment",
		Status:      models.ProjectStatusActive,
		Website:     &blank,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
	assert.Nil(t, p.Website)
	assert.Nil(t, p.Image)
	assert.Equal(t, models.ProjectStatusActive, p.Status)
}

func TestCreateProject_Validation(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()
	notURL := "github.com/x"

	tests := []struct {
		name    string
		req     CreateProjectRequest
		wantErr error
	}{
		{"empty name", CreateProjectRequest{Description: "d", Status: "active"}, ErrEmptyName},
		{"empty description", CreateProjectRequest{Name: "n", Status: "active"}, ErrEmptyDescription},
		{"empty status", CreateProjectRequest{Name: "n", Description: "d"}, ErrEmptyStatus},
		{"repository without scheme", CreateProjectRequest{Name: "n", Description: "d", Status: "active", Repository: &notURL}, ErrInvalidURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProject(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestUpdateProject(t *testing.T) {
	t.Parallel()
	svc, fx := newTestService(t)
	ctx := context.Background()
	id := testutil.CreateTestProject(t, fx.Repo, "Radar")

	status := "completed"
	updated, err := svc.UpdateProject(ctx, UpdateProjectRequest{ID: id, ProjectPatch: models.ProjectPatch{
		Status:  &status,
		Website: models.Some("https://radar.example.com"),
	}})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
	require.NotNil(t, updated.Website)

	_, err = svc.UpdateProject(ctx, UpdateProjectRequest{ID: 77})
	assert.ErrorIs(t, err, models.ErrNotFound)

	bad := "  "
	_, err = svc.UpdateProject(ctx, UpdateProjectRequest{ID: id, ProjectPatch: models.ProjectPatch{Status: &bad}})
	assert.ErrorIs(t, err, ErrEmptyStatus)
}

func TestUpdateProject_BlankLinksStoredAsNull(t *testing.T) {
	t.Parallel()
	svc, fx := newTestService(t)
	ctx := context.Background()
	id := testutil.CreateTestProject(t, fx.Repo, "Radar")

	_, err := svc.UpdateProject(ctx, UpdateProjectRequest{ID: id, ProjectPatch: models.ProjectPatch{
		Website:    models.Some("https://radar.example.com"),
		Repository: models.Some("https://git.example.com/radar"),
	}})
	require.NoError(t, err)

	cleared, err := svc.UpdateProject(ctx, UpdateProjectRequest{ID: id, ProjectPatch: models.ProjectPatch{
		Website:    models.Some(""),
		Repository: models.Some(""),
	}})
	require.NoError(t, err)
	assert.Nil(t, cleared.Website)
	assert.Nil(t, cleared.Repository)

	stored, err := svc.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, stored.Website)
	assert.Nil(t, stored.Repository)
}

func TestUpdateProject_EmptyPatchPublishesNothing(t *testing.T) {
	t.Parallel()
	repo := testutil.SetupTestRepo(t)
	id := testutil.CreateTestProject(t, repo, "Radar")
	bus := events.NewBus()
	defer bus.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := bus.Listen(ctx)
	require.NoError(t, err)

	svc := NewService(repo, bus)
	_, err = svc.UpdateProject(ctx, UpdateProjectRequest{ID: id})
	require.NoError(t, err)
	assert.Empty(t, ch)

	status := "completed"
	_, err = svc.UpdateProject(ctx, UpdateProjectRequest{ID: id, ProjectPatch: models.ProjectPatch{Status: &status}})
	require.NoError(t, err)
	select {
	case ev := <-ch:
		assert.Equal(t, events.KindProject, ev.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected a store change event")
	}
}

// ============================================================================
// LINKS
// ============================================================================

func TestLink_TraversalSymmetry(t *testing.T) {
	t.Parallel()
	svc, fx := newTestService(t)
	ctx := context.Background()
	techID := testutil.CreateTestTechnology(t, fx.Repo, "Go", 3, 0)
	projectID := testutil.CreateTestProject(t, fx.Repo, "Radar")
	notes := "used for the API"

	link, err := svc.Link(ctx, LinkRequest{TechnologyID: techID, ProjectID: projectID, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, techID, link.TechnologyID)

	projects, err := svc.ProjectsForTechnology(ctx, techID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, projectID, projects[0].ID)

	techs, err := svc.TechnologiesForProject(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, techs, 1)
	assert.Equal(t, techID, techs[0].ID)
}

func TestLink_PermissiveAboutReferences(t *testing.T) {
	t.Parallel()
	svc, fx := newTestService(t)
	ctx := context.Background()
	projectID := testutil.CreateTestProject(t, fx.Repo, "Radar")

	_, err := svc.Link(ctx, LinkRequest{TechnologyID: 404, ProjectID: projectID})
	require.NoError(t, err, "dangling technology ids are accepted")
	_, err = svc.Link(ctx, LinkRequest{TechnologyID: 404, ProjectID: projectID})
	require.NoError(t, err, "duplicate pairs are accepted")

	links, err := svc.ListLinks(ctx)
	require.NoError(t, err)
	assert.Len(t, links, 2)

	_, err = svc.Link(ctx, LinkRequest{TechnologyID: 0, ProjectID: projectID})
	assert.ErrorIs(t, err, ErrInvalidTechnologyID)
	_, err = svc.Link(ctx, LinkRequest{TechnologyID: 1, ProjectID: -1})
	assert.ErrorIs(t, err, ErrInvalidProjectID)
}
