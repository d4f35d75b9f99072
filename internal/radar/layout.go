package radar

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/thenoetrevino/techradar/internal/models"
)

// Placement is where one technology sits on the plot.
// The jitter is baked into Angle and Radius when the layout is built.
type Placement struct {
	TechnologyID int
	Name         string
	Quadrant     int
	Ring         int
	Angle        float64
	Radius       float64
}

// Point returns the cartesian position of the placement
func (p Placement) Point() Point {
	return Polar(p.Angle, p.Radius)
}

// MarshalJSON adds the cartesian coordinates next to the polar ones.
func (p Placement) MarshalJSON() ([]byte, error) {
	pt := p.Point()
	return json.Marshal(struct {
		TechnologyID int     `json:"technology_id"`
		Name         string  `json:"name"`
		Quadrant     int     `json:"quadrant"`
		Ring         int     `json:"ring"`
		Angle        float64 `json:"angle"`
		Radius       float64 `json:"radius"`
		X            float64 `json:"x"`
		Y            float64 `json:"y"`
	}{p.TechnologyID, p.Name, p.Quadrant, p.Ring, p.Angle, p.Radius, pt.X, pt.Y})
}

// Layout places technologies using a pseudo-random source for jitter.
// Two layouts built from the same seed produce the same placements for the same input.
type Layout struct {
	geometry Geometry

	mu  sync.Mutex
	rng *rand.Rand
}

// NewLayout creates a layout drawing jitter from src.
// A nil src seeds from the clock, so every build differs.
func NewLayout(g Geometry, src rand.Source) *Layout {
	if src == nil {
		now := ClockSeed()
		src = rand.NewPCG(now, now>>1)
	}
	return &Layout{geometry: g, rng: rand.New(src)}
}

// ClockSeed derives a seed from the current time. Callers that report the
// seed back can use it to reproduce a clock-seeded layout.
func ClockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// NewSeededLayout creates a reproducible layout
func NewSeededLayout(g Geometry, seed uint64) *Layout {
	return NewLayout(g, rand.NewPCG(seed, seed))
}

// Geometry returns the plot geometry the layout places into
func (l *Layout) Geometry() Geometry {
	return l.geometry
}

// Place computes the position of one technology. Indices outside [0,3]
// return ErrIndexOutOfRange instead of a placement.
func (l *Layout) Place(t *models.Technology) (Placement, error) {
	if err := CheckIndices(t.Quadrant, t.Ring); err != nil {
		return Placement{}, fmt.Errorf("technology %d (%s): %w", t.ID, t.Name, err)
	}

	l.mu.Lock()
	angleJitter := (l.rng.Float64()*2 - 1) * MaxAngleJitter
	radiusFactor := MinRadiusFactor + l.rng.Float64()*(MaxRadiusFactor-MinRadiusFactor)
	l.mu.Unlock()

	return Placement{
		TechnologyID: t.ID,
		Name:         t.Name,
		Quadrant:     t.Quadrant,
		Ring:         t.Ring,
		Angle:        l.geometry.SectorMid(t.Quadrant) + angleJitter,
		Radius:       l.geometry.RingOuterRadius(t.Ring) * radiusFactor,
	}, nil
}

// Build places every technology in order. It stops at the first invalid record.
func (l *Layout) Build(technologies []*models.Technology) ([]Placement, error) {
	placements := make([]Placement, 0, len(technologies))
	for _, t := range technologies {
		p, err := l.Place(t)
		if err != nil {
			return nil, err
		}
		placements = append(placements, p)
	}
	return placements, nil
}

// Compute builds a fresh seeded layout for technologies in a width x height container
func Compute(technologies []*models.Technology, width, height, margin float64, seed uint64) (Geometry, []Placement, error) {
	g := NewGeometry(width, height, margin)
	placements, err := NewSeededLayout(g, seed).Build(technologies)
	if err != nil {
		return g, nil, err
	}
	return g, placements, nil
}

// Nearest returns the index of the placement closest to pt within maxDist, or -1.
func Nearest(placements []Placement, pt Point, maxDist float64) int {
	best := -1
	bestDist := maxDist * maxDist
	for i, p := range placements {
		q := p.Point()
		dx, dy := q.X-pt.X, q.Y-pt.Y
		if d := dx*dx + dy*dy; d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
