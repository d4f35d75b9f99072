package components

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/radar"
)

func testQuadrants() []*models.Quadrant {
	return []*models.Quadrant{
		{ID: 1, Name: "Techniques"},
		{ID: 2, Name: "Tools"},
		{ID: 3, Name: "Frameworks"},
		{ID: 4, Name: "Platforms"},
	}
}

func testRings() []*models.Ring {
	return []*models.Ring{
		{ID: 1, Name: "Adopt"},
		{ID: 2, Name: "Trial"},
		{ID: 3, Name: "Assess"},
		{ID: 4, Name: "Hold"},
	}
}

func placement(id int, name string, q, r int) radar.Placement {
	return radar.Placement{
		TechnologyID: id,
		Name:         name,
		Quadrant:     q,
		Ring:         r,
		Angle:        UnitGeometry.SectorMid(q),
		Radius:       UnitGeometry.RingOuterRadius(r) * 0.85,
	}
}

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

// ============================================================================
// Geometry mapping
// ============================================================================

func TestCellSpace_RoundTrip(t *testing.T) {
	t.Parallel()
	s := newCellSpace(80, 24)
	require.Greater(t, s.scale, 0.0)

	pts := []radar.Point{{X: 0, Y: 0}, {X: 0.5, Y: 0.5}, {X: -0.9, Y: 0.1}, {X: 0.2, Y: -0.8}}
	for _, p := range pts {
		col, row := s.toCell(p)
		back := s.fromCell(col, row)
		// one column and one row of rounding
		assert.InDelta(t, p.X, back.X, 1/s.scale)
		assert.InDelta(t, p.Y, back.Y, 2/s.scale)
	}
}

func TestCellSpace_RingsStayOnCanvas(t *testing.T) {
	t.Parallel()
	for _, size := range [][2]int{{80, 24}, {40, 40}, {120, 20}} {
		s := newCellSpace(size[0], size[1])
		for a := 0.0; a < 2*math.Pi; a += 0.1 {
			col, row := s.toCell(radar.Polar(a, 1))
			assert.GreaterOrEqual(t, col, 0)
			assert.Less(t, col, size[0])
			assert.GreaterOrEqual(t, row, 0)
			assert.Less(t, row, size[1])
		}
	}
}

// ============================================================================
// Rendering
// ============================================================================

func TestRenderCanvas_Dimensions(t *testing.T) {
	t.Parallel()
	out := RenderCanvas(CanvasProps{
		Width:     60,
		Height:    20,
		Quadrants: testQuadrants(),
		Rings:     testRings(),
	})
	lines := plainLines(out)
	require.Len(t, lines, 20)
	for _, line := range lines {
		assert.Equal(t, 60, len([]rune(line)))
	}
}

func TestRenderCanvas_EmptySize(t *testing.T) {
	t.Parallel()
	assert.Empty(t, RenderCanvas(CanvasProps{Width: 0, Height: 10}))
}

func TestRenderCanvas_LabelsAndAxes(t *testing.T) {
	t.Parallel()
	plain := ansi.Strip(RenderCanvas(CanvasProps{
		Width:     80,
		Height:    24,
		Quadrants: testQuadrants(),
		Rings:     testRings(),
	}))

	for _, name := range []string{"Techniques", "Tools", "Frameworks", "Platforms", "Adopt", "Trial", "Assess", "Hold"} {
		assert.Contains(t, plain, name)
	}
	assert.Contains(t, plain, "┼")
	assert.Contains(t, plain, "·")

	lines := strings.Split(plain, "\n")
	// quadrant 0 points down-right, quadrant 2 up-left
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "Techniques"))
	assert.True(t, strings.HasPrefix(lines[0], "Frameworks"))
}

func TestRenderCanvas_Markers(t *testing.T) {
	t.Parallel()
	placements := []radar.Placement{
		placement(1, "Go", 0, 0),
		placement(2, "Kafka", 2, 2),
		placement(3, "Jenkins", 3, 3),
	}

	plain := ansi.Strip(RenderCanvas(CanvasProps{
		Width:      80,
		Height:     24,
		Placements: placements,
		Rings:      testRings(),
	}))
	assert.Equal(t, 3, strings.Count(plain, string(markerRune)))
	assert.NotContains(t, plain, "Kafka", "unselected markers carry no label")

	plain = ansi.Strip(RenderCanvas(CanvasProps{
		Width:      80,
		Height:     24,
		Placements: placements,
		Rings:      testRings(),
		SelectedID: 2,
		HoverID:    3,
	}))
	assert.Equal(t, 1, strings.Count(plain, string(markerRune)))
	assert.Contains(t, plain, string(selectedRune))
	assert.Contains(t, plain, string(hoverRune))
	assert.Contains(t, plain, " Kafka ")
	assert.Contains(t, plain, " Jenkins ")
}

// ============================================================================
// Hit testing
// ============================================================================

func TestMarkerAt(t *testing.T) {
	t.Parallel()
	placements := []radar.Placement{
		placement(7, "GraphRAG", 0, 0),
		placement(35, "Railway", 3, 1),
	}
	s := newCellSpace(80, 24)

	for _, p := range placements {
		col, row := s.toCell(p.Point())
		assert.Equal(t, p.TechnologyID, MarkerAt(80, 24, placements, col, row))
	}

	// the top-left corner is outside the plot
	assert.Zero(t, MarkerAt(80, 24, placements, 0, 0))
	assert.Zero(t, MarkerAt(0, 0, placements, 0, 0))
}
