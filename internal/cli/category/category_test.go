package category

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/techradar/internal/cli"
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
// Quadrant Tests
// ============================================================================

func TestQuadrantList_CountsTechnologies(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	out, _, err := clitest.Run(t, a, QuadrantCmd(), "list", "--json")
	require.NoError(t, err)

	quadrants := decode[[]Category](t, out)
	require.Len(t, quadrants, 4)

	names := []string{"Techniques", "Tools", "Frameworks", "Platforms"}
	counts := []int{19, 6, 5, 5}
	for i, q := range quadrants {
		assert.Equal(t, i, q.Position)
		assert.Equal(t, names[i], q.Name)
		assert.Equal(t, counts[i], q.Technologies, q.Name)
	}
}

func TestQuadrantList_Human(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	out, _, err := clitest.Run(t, a, QuadrantCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 4 quadrants")
	assert.Contains(t, out, "Platforms")
	assert.Contains(t, out, "19 technologies")
}

func TestQuadrantShow(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	out, _, err := clitest.Run(t, a, QuadrantCmd(), "show", "2", "--json")
	require.NoError(t, err)
	q := decode[Category](t, out)
	assert.Equal(t, "Tools", q.Name)
	assert.Equal(t, 1, q.Position)

	_, stderr, err := clitest.Run(t, a, QuadrantCmd(), "show", "99")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	assert.Contains(t, stderr, "not found")
}

// ============================================================================
// Ring Tests
// ============================================================================

func TestRingList_Quiet(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	out, _, err := clitest.Run(t, a, RingCmd(), "list", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, strings.Fields(out))
}

func TestRingShow_EmptyRing(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	out, _, err := clitest.Run(t, a, RingCmd(), "show", "--id", "4", "--json")
	require.NoError(t, err)
	r := decode[Category](t, out)
	assert.Equal(t, "Hold", r.Name)
	assert.Equal(t, 0, r.Technologies)
}

func TestRingUpdate(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	out, _, err := clitest.Run(t, a, RingCmd(), "update", "1", "--name", "Use", "--color", "#000000")
	require.NoError(t, err)
	assert.Contains(t, out, "updated successfully")

	r, err := a.RingService.GetRing(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Use", r.Name)
	require.NotNil(t, r.Color)
	assert.Equal(t, "#000000", *r.Color)

	_, _, err = clitest.Run(t, a, RingCmd(), "update", "1", "--color", "")
	require.NoError(t, err)
	r, err = a.RingService.GetRing(t.Context(), 1)
	require.NoError(t, err)
	assert.Nil(t, r.Color)
	assert.Equal(t, "Use", r.Name)
}

func TestUpdate_Errors(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "no fields", args: []string{"update", "1"}, code: cli.ExitUsage},
		{name: "bad color", args: []string{"update", "1", "--color", "blue"}, code: cli.ExitUsage},
		{name: "blank name", args: []string{"update", "1", "--name", "  "}, code: cli.ExitValidation},
		{name: "unknown id", args: []string{"update", "42", "--name", "X"}, code: cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := clitest.Run(t, a, QuadrantCmd(), tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCodeFor(err))
		})
	}
}
