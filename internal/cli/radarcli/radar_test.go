package radarcli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/techradar/internal/cli"
	"github.com/thenoetrevino/techradar/internal/testutil/clitest"
)

// ============================================================================
// Test Helpers
// ============================================================================

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal([]byte(out), &env), out)
	require.True(t, env.Success)
	return env.Data
}

type layoutJSON struct {
	Seed       uint64           `json:"seed"`
	Placements []map[string]any `json:"placements"`
}

// ============================================================================
// Layout Tests
// ============================================================================

func TestLayout_SeedReproduces(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	first, _, err := clitest.Run(t, a, RadarCmd(), "layout", "--seed", "42", "--json")
	require.NoError(t, err)
	second, _, err := clitest.Run(t, a, RadarCmd(), "layout", "--seed", "42", "--json")
	require.NoError(t, err)

	assert.JSONEq(t, first, second)
	l := decode[layoutJSON](t, first)
	assert.Equal(t, uint64(42), l.Seed)
	assert.Len(t, l.Placements, 35)
}

func TestLayout_QuadrantFilter(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	out, _, err := clitest.Run(t, a, RadarCmd(), "layout", "--seed", "1", "--quadrant", "platforms", "--json")
	require.NoError(t, err)

	l := decode[layoutJSON](t, out)
	require.NotEmpty(t, l.Placements)
	for _, p := range l.Placements {
		assert.EqualValues(t, 3, p["quadrant"])
	}
}

func TestLayout_HumanListsEveryTechnology(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	out, _, err := clitest.Run(t, a, RadarCmd(), "layout", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "seed 9")
	assert.Contains(t, out, "Railway")
	assert.Contains(t, out, "Platforms")
}

func TestLayout_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"zero width", []string{"--width", "0"}, cli.ExitUsage},
		{"unknown quadrant", []string{"--quadrant", "gadgets"}, cli.ExitValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := clitest.SetupCLITest(t)

			_, _, err := clitest.Run(t, a, RadarCmd(), append([]string{"layout"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCodeFor(err))
		})
	}
}

// ============================================================================
// Render Tests
// ============================================================================

func TestRender_JSONLines(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	out, _, err := clitest.Run(t, a, RadarCmd(), "render", "--seed", "42", "--cols", "60", "--rows", "20", "--json")
	require.NoError(t, err)

	d := decode[Drawing](t, out)
	assert.Equal(t, uint64(42), d.Seed)
	assert.Equal(t, 35, d.Placed)
	require.Len(t, d.Lines, 20)
	assert.True(t, strings.HasPrefix(d.Lines[0], "Frameworks"))
	assert.True(t, strings.HasSuffix(d.Lines[19], "Techniques"))
	assert.Contains(t, strings.Join(d.Lines, "\n"), "●")
}

func TestRender_HumanIsPlainOffTerminal(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	out, _, err := clitest.Run(t, a, RadarCmd(), "render", "--seed", "42", "--select", "35")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, " Railway ")
	assert.Contains(t, plain, "Platforms")
	assert.Len(t, strings.Split(strings.TrimRight(plain, "\n"), "\n"), 30)
}

func TestRender_SameSeedSameDrawing(t *testing.T) {
	t.Parallel()
	a := clitest.SetupCLITest(t)

	first, _, err := clitest.Run(t, a, RadarCmd(), "render", "--seed", "5", "--json")
	require.NoError(t, err)
	second, _, err := clitest.Run(t, a, RadarCmd(), "render", "--seed", "5", "--json")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"too small", []string{"--cols", "5"}, cli.ExitUsage},
		{"missing selection", []string{"--select", "999"}, cli.ExitNotFound},
		{"unknown ring", []string{"--ring", "maybe"}, cli.ExitValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := clitest.SetupCLITest(t)

			_, _, err := clitest.Run(t, a, RadarCmd(), append([]string{"render"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCodeFor(err))
		})
	}
}
