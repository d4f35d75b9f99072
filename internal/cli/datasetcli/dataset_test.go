package datasetcli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/techradar/internal/app"
	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/dataset"
	"github.com/thenoetrevino/techradar/internal/testutil/clitest"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "radar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `quadrants:
  - {name: Techniques, description: ways of working}
  - {name: Tools, description: tools}
  - {name: Frameworks, description: libraries}
  - {name: Platforms, description: infrastructure}
rings:
  - {name: Adopt, description: use it}
  - {name: Trial, description: try it}
  - {name: Assess, description: look at it}
  - {name: Hold, description: avoid it}
technologies:
  - {name: Kafka, description: event streaming platform, quadrant: 3, ring: 0}
projects:
  - {name: Billing, description: invoices, status: active}
links:
  - {technology: Kafka, project: Billing}
`

// ============================================================================
// Export Tests
// ============================================================================

func TestExport_StdoutIsLoadableYAML(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	out, _, err := clitest.Run(t, a, DatasetCmd(), "export")
	require.NoError(t, err)

	ds, err := dataset.Decode(strings.NewReader(out))
	require.NoError(t, err)
	require.NoError(t, ds.Validate())
	assert.Len(t, ds.Quadrants, 4)
	assert.Len(t, ds.Rings, 4)
	assert.Len(t, ds.Technologies, 35)
	assert.Len(t, ds.Projects, 1)
}

func TestExport_FileRoundTrip(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)
	path := filepath.Join(t.TempDir(), "export.yaml")

	out, _, err := clitest.Run(t, a, DatasetCmd(), "export", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 35 technologies")

	reopened, err := app.Open(context.Background(), app.WithDataFile(path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	technologies, err := reopened.TechnologyService.ListTechnologies(context.Background())
	require.NoError(t, err)
	assert.Len(t, technologies, 35)
	assert.Equal(t, "Railway", technologies[34].Name)
}

// ============================================================================
// Validate Tests
// ============================================================================

func TestValidate_ValidFile(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)
	path := writeFile(t, validYAML)

	out, _, err := clitest.Run(t, a, DatasetCmd(), "validate", path, "--json")
	require.NoError(t, err)

	var env struct {
		Success bool   `json:"success"`
		Data    Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &env), out)
	assert.True(t, env.Success)
	assert.Equal(t, Report{Path: path, Quadrants: 4, Rings: 4, Technologies: 1, Projects: 1, Links: 1}, env.Data)
}

func TestValidate_Failures(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "ring out of range",
			content: strings.Replace(validYAML, "ring: 0}", "ring: 7}", 1),
			want:    "ring 7 outside",
		},
		{
			name:    "dangling link",
			content: strings.Replace(validYAML, "project: Billing}", "project: Payroll}", 1),
			want:    "unknown project",
		},
		{
			name:    "unknown key",
			content: validYAML + "owners: []\n",
			want:    "owners",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := clitest.SetupCLITest(t)
			path := writeFile(t, tt.content)

			out, _, err := clitest.Run(t, a, DatasetCmd(), "validate", path, "--json")
			require.Error(t, err)
			assert.Equal(t, cli.ExitDataErr, cli.ExitCodeFor(err))
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestValidate_MissingFile(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	_, _, err := clitest.Run(t, a, DatasetCmd(), "validate", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCodeFor(err))
}
