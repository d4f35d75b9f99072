package project

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/testutil/clitest"
)

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var env struct {
		Success bool `json:"success"`
		Data    T    `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &env), out)
	require.True(t, env.Success)
	return env.Data
}

// ============================================================================
// Create / List Tests
// ============================================================================

// TestCreateProjectCommand tests the project create command
func TestCreateProjectCommand(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	tests := []struct {
		name      string
		args      []string
		shouldErr bool
		code      int
		checkFunc func(t *testing.T, output string)
	}{
		{
			name: "quiet prints the new id",
			args: []string{"--name", "Quiet Project", "--description", "d", "--quiet"},
			checkFunc: func(t *testing.T, output string) {
				assert.Equal(t, "2", strings.TrimSpace(output))
			},
		},
		{
			name: "JSON output carries defaults",
			args: []string{"--name", "JSON Project", "--description", "d", "--json"},
			checkFunc: func(t *testing.T, output string) {
				p := decode[models.Project](t, output)
				assert.Equal(t, "JSON Project", p.Name)
				assert.Equal(t, models.ProjectStatusActive, p.Status)
				assert.Nil(t, p.Website)
			},
		},
		{
			name: "human-readable output",
			args: []string{"--name", "Human Project", "--description", "d", "--status", "planned"},
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "created successfully")
				assert.Contains(t, output, "Human Project")
			},
		},
		{
			name:      "missing name",
			args:      []string{"--description", "d"},
			shouldErr: true,
			code:      cli.ExitUsage,
		},
		{
			name:      "bad repository url",
			args:      []string{"--name", "P", "--description", "d", "--repository", "git@host:x"},
			shouldErr: true,
			code:      cli.ExitValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := clitest.Run(t, a, ProjectCmd(), append([]string{"create"}, tt.args...)...)
			if tt.shouldErr {
				require.Error(t, err)
				assert.Equal(t, tt.code, cli.ExitCodeFor(err))
				return
			}
			require.NoError(t, err)
			tt.checkFunc(t, out)
		})
	}
}

func TestListProjects_StatusFilter(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	_, _, err := clitest.Run(t, a, ProjectCmd(), "create", "--name", "Later", "--description", "d", "--status", "planned")
	require.NoError(t, err)

	out, _, err := clitest.Run(t, a, ProjectCmd(), "list", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, strings.Fields(out))

	out, _, err = clitest.Run(t, a, ProjectCmd(), "list", "--status", "PLANNED", "--json")
	require.NoError(t, err)
	projects := decode[[]models.Project](t, out)
	require.Len(t, projects, 1)
	assert.Equal(t, "Later", projects[0].Name)

	out, _, err = clitest.Run(t, a, ProjectCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 2 projects")
	assert.Contains(t, out, "VW Tech Radar")
}

// ============================================================================
// Link / Show / Tree Tests
// ============================================================================

func TestLinkAndShow(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	for _, techID := range []string{"7", "27", "7"} {
		_, _, err := clitest.Run(t, a, ProjectCmd(), "link", "--technology", techID, "--project", "1", "--notes", "core")
		require.NoError(t, err)
	}

	out, _, err := clitest.Run(t, a, ProjectCmd(), "show", "1", "--json")
	require.NoError(t, err)
	detail := decode[struct {
		Name         string              `json:"name"`
		Technologies []models.Technology `json:"technologies"`
	}](t, out)
	assert.Equal(t, "VW Tech Radar", detail.Name)
	require.Len(t, detail.Technologies, 2, "duplicate links are listed once")
	assert.Equal(t, "GraphRAG", detail.Technologies[0].Name)
	assert.Equal(t, "Langraph", detail.Technologies[1].Name)

	out, _, err = clitest.Run(t, a, ProjectCmd(), "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "GraphRAG")

	links, err := a.ProjectService.ListLinks(t.Context())
	require.NoError(t, err)
	assert.Len(t, links, 3)
}

func TestLink_Errors(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	_, _, err := clitest.Run(t, a, ProjectCmd(), "link", "--technology", "1")
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))

	out, _, err := clitest.Run(t, a, ProjectCmd(), "link", "--technology", "999", "--project", "999", "--quiet")
	require.NoError(t, err, "links do not check that either side exists")
	assert.Equal(t, "1", strings.TrimSpace(out))
}

func TestShow_Errors(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	_, _, err := clitest.Run(t, a, ProjectCmd(), "show")
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))

	_, _, err = clitest.Run(t, a, ProjectCmd(), "show", "5")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
}

func TestUpdateProject(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	out, _, err := clitest.Run(t, a, ProjectCmd(), "update", "1", "--status", "completed", "--website", "https://example.com", "--json")
	require.NoError(t, err)
	p := decode[models.Project](t, out)
	assert.Equal(t, models.ProjectStatusCompleted, p.Status)
	require.NotNil(t, p.Website)

	_, _, err = clitest.Run(t, a, ProjectCmd(), "update", "1", "--website", "")
	require.NoError(t, err)
	stored, err := a.ProjectService.GetProject(t.Context(), 1)
	require.NoError(t, err)
	assert.Nil(t, stored.Website)

	_, _, err = clitest.Run(t, a, ProjectCmd(), "update", "1", "--json")
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}

func TestTree(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	_, _, err := clitest.Run(t, a, ProjectCmd(), "link", "--technology", "1", "--project", "1")
	require.NoError(t, err)

	out, _, err := clitest.Run(t, a, ProjectCmd(), "tree", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1\n  1\n", out)

	out, _, err = clitest.Run(t, a, ProjectCmd(), "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "VW Tech Radar")
	assert.Contains(t, out, "└── ")
	assert.Contains(t, out, "Claude Sonnet")

	out, _, err = clitest.Run(t, a, ProjectCmd(), "tree", "--json")
	require.NoError(t, err)
	tree := decode[[]treeNodeJSON](t, out)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Technologies, 1)
	assert.Equal(t, 1, tree[0].Technologies[0].ID)
}

func TestTechnologies(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	out, _, err := clitest.Run(t, a, ProjectCmd(), "technologies", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "No technologies linked")

	_, _, err = clitest.Run(t, a, ProjectCmd(), "link", "--technology", "35", "--project", "1")
	require.NoError(t, err)

	out, _, err = clitest.Run(t, a, ProjectCmd(), "technologies", "--id", "1", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "35", strings.TrimSpace(out))

	_, _, err = clitest.Run(t, a, ProjectCmd(), "technologies", "9")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
}
