package components

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/radar"
	"github.com/thenoetrevino/techradar/internal/tui/theme"
)

// UnitGeometry is the plot placements are laid out on. The canvas scales
// it to whatever cell area it is given.
var UnitGeometry = radar.Geometry{Radius: 1}

const (
	// canvasMargin is kept between the outer ring and the canvas edge, in columns
	canvasMargin = 2.0

	// hitRadius is how close (in columns) a pointer must be to grab a marker
	hitRadius = 2.0

	markerRune   = '●'
	selectedRune = '◉'
	hoverRune    = '◎'
	ringRune     = '·'
)

// CanvasProps describes one frame of the radar.
// Placements are on UnitGeometry; only the ones passed in are drawn.
type CanvasProps struct {
	Width      int
	Height     int
	Placements []radar.Placement
	Quadrants  []*models.Quadrant
	Rings      []*models.Ring
	SelectedID int
	HoverID    int
}

// A terminal cell is about twice as tall as it is wide, so plot space uses
// one unit per column and two units per row to keep the rings round.
type cellSpace struct {
	width, height int
	scale         float64
}

func newCellSpace(width, height int) cellSpace {
	g := radar.NewGeometry(float64(width), float64(height*2), canvasMargin)
	return cellSpace{width: width, height: height, scale: g.Radius}
}

func (s cellSpace) toCell(p radar.Point) (col, row int) {
	col = int(math.Round(float64(s.width)/2 + p.X*s.scale))
	row = int(math.Round((float64(s.height) + p.Y*s.scale) / 2))
	return col, row
}

func (s cellSpace) fromCell(col, row int) radar.Point {
	if s.scale == 0 {
		return radar.Point{}
	}
	return radar.Point{
		X: (float64(col) - float64(s.width)/2) / s.scale,
		Y: (float64(row*2) - float64(s.height)) / s.scale,
	}
}

// MarkerAt returns the technology id of the marker under cell (col, row)
// of a canvas of the given size, or 0 when the pointer is not on a marker.
func MarkerAt(width, height int, placements []radar.Placement, col, row int) int {
	s := newCellSpace(width, height)
	if s.scale == 0 {
		return 0
	}
	idx := radar.Nearest(placements, s.fromCell(col, row), hitRadius/s.scale)
	if idx < 0 {
		return 0
	}
	return placements[idx].TechnologyID
}

type cell struct {
	r     rune
	color string
	bold  bool
}

type grid struct {
	w, h  int
	cells [][]cell
}

func newGrid(w, h int) *grid {
	cells := make([][]cell, h)
	for i := range cells {
		cells[i] = make([]cell, w)
	}
	return &grid{w: w, h: h, cells: cells}
}

func (g *grid) set(col, row int, c cell) {
	if col < 0 || row < 0 || col >= g.w || row >= g.h {
		return
	}
	g.cells[row][col] = c
}

func (g *grid) text(col, row int, s, color string, bold bool) {
	for i, r := range []rune(s) {
		g.set(col+i, row, cell{r: r, color: color, bold: bold})
	}
}

// render joins each row into runs of identically styled cells.
func (g *grid) render() string {
	lines := make([]string, g.h)
	for y, row := range g.cells {
		var b strings.Builder
		var run []rune
		var cur cell
		flush := func() {
			if len(run) == 0 {
				return
			}
			if cur.color == "" && !cur.bold {
				b.WriteString(string(run))
			} else {
				style := lipgloss.NewStyle().Bold(cur.bold)
				if cur.color != "" {
					style = style.Foreground(lipgloss.Color(cur.color))
				}
				b.WriteString(style.Render(string(run)))
			}
			run = run[:0]
		}
		for _, c := range row {
			if c.r == 0 {
				c = cell{r: ' '}
			}
			if c.color != cur.color || c.bold != cur.bold {
				flush()
				cur = c
			}
			run = append(run, c.r)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// RenderCanvas draws the rings, quadrant axes, labels and markers.
func RenderCanvas(props CanvasProps) string {
	if props.Width <= 0 || props.Height <= 0 {
		return ""
	}
	s := newCellSpace(props.Width, props.Height)
	g := newGrid(props.Width, props.Height)
	if s.scale == 0 {
		return g.render()
	}

	drawRings(g, s, props.Rings)
	drawAxes(g, s)
	drawRingLabels(g, s, props.Rings)
	drawQuadrantLabels(g, props.Quadrants)
	drawMarkers(g, s, props)

	return g.render()
}

func drawRings(g *grid, s cellSpace, rings []*models.Ring) {
	for r := range models.RingCount {
		radius := UnitGeometry.RingOuterRadius(r)
		color := theme.RingColor(ringColor(rings, r), r)
		// enough samples to touch every cell on the circumference
		steps := max(int(2*math.Pi*radius*s.scale*2), 16)
		for i := range steps {
			angle := 2 * math.Pi * float64(i) / float64(steps)
			col, row := s.toCell(radar.Polar(angle, radius))
			g.set(col, row, cell{r: ringRune, color: color})
		}
	}
}

func drawAxes(g *grid, s cellSpace) {
	cx, cy := s.toCell(radar.Point{})
	left, _ := s.toCell(radar.Point{X: -1})
	right, _ := s.toCell(radar.Point{X: 1})
	_, top := s.toCell(radar.Point{Y: -1})
	_, bottom := s.toCell(radar.Point{Y: 1})

	for col := left; col <= right; col++ {
		g.set(col, cy, cell{r: '─', color: theme.Grid})
	}
	for row := top; row <= bottom; row++ {
		g.set(cx, row, cell{r: '│', color: theme.Grid})
	}
	g.set(cx, cy, cell{r: '┼', color: theme.Grid})
}

// drawRingLabels writes each ring's name just inside its top edge, right of the axis.
func drawRingLabels(g *grid, s cellSpace, rings []*models.Ring) {
	cx, _ := s.toCell(radar.Point{})
	for r, ring := range rings {
		if r >= models.RingCount {
			break
		}
		_, row := s.toCell(radar.Point{Y: -UnitGeometry.RingOuterRadius(r)})
		g.text(cx+2, row+1, ring.Name, theme.Subtle, false)
	}
}

// drawQuadrantLabels puts each quadrant's name in the corner its sector points at.
func drawQuadrantLabels(g *grid, quadrants []*models.Quadrant) {
	for q, quadrant := range quadrants {
		if q >= models.QuadrantCount {
			break
		}
		mid := UnitGeometry.SectorMid(q)
		name := []rune(quadrant.Name)
		col, row := 0, 0
		if math.Cos(mid) > 0 {
			col = g.w - len(name)
		}
		if math.Sin(mid) > 0 {
			row = g.h - 1
		}
		g.text(max(col, 0), row, quadrant.Name, theme.QuadrantColor(quadrant.Color, q), true)
	}
}

func drawMarkers(g *grid, s cellSpace, props CanvasProps) {
	var selected, hovered *radar.Placement
	for i := range props.Placements {
		p := &props.Placements[i]
		switch p.TechnologyID {
		case props.SelectedID:
			selected = p
		case props.HoverID:
			hovered = p
		}
		col, row := s.toCell(p.Point())
		g.set(col, row, cell{r: markerRune, color: theme.RingColor(ringColor(props.Rings, p.Ring), p.Ring)})
	}

	// highlighted markers go last so nothing draws over them
	if selected != nil {
		col, row := s.toCell(selected.Point())
		g.set(col, row, cell{r: selectedRune, color: theme.SelectedBorder, bold: true})
		label(g, col, row, selected.Name, theme.SelectedBorder)
	}
	if hovered != nil {
		col, row := s.toCell(hovered.Point())
		g.set(col, row, cell{r: hoverRune, color: theme.Highlight, bold: true})
		label(g, col, row, hovered.Name, theme.Title)
	}
}

// label writes name right of the marker, or left of it when it would run off the edge.
func label(g *grid, col, row int, name, color string) {
	text := " " + name + " "
	n := len([]rune(text))
	start := col + 1
	if start+n > g.w {
		start = col - n
	}
	g.text(max(start, 0), row, text, color, true)
}

func ringColor(rings []*models.Ring, i int) *string {
	if i < 0 || i >= len(rings) {
		return nil
	}
	return rings[i].Color
}
