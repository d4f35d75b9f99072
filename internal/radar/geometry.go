// Package radar turns categorical (quadrant, ring) positions into polar
// coordinates on a circular plot.
//
// Angles are in radians and follow screen conventions: 0 points right and
// angles grow clockwise because the y axis points down.
package radar

import (
	"errors"
	"fmt"
	"math"

	"github.com/thenoetrevino/techradar/internal/models"
)

// ErrIndexOutOfRange is returned for a quadrant or ring index outside [0,3]
var ErrIndexOutOfRange = errors.New("quadrant or ring index out of range")

const (
	// DefaultMargin is the space kept between the outer ring and the container edge
	DefaultMargin = 40.0

	// SectorWidth is the angular width of one quadrant
	SectorWidth = math.Pi / 2

	// MaxAngleJitter bounds the angular offset from the sector midpoint
	MaxAngleJitter = math.Pi / 6

	// MinRadiusFactor and MaxRadiusFactor bound the scale applied to a ring's outer radius
	MinRadiusFactor = 0.7
	MaxRadiusFactor = 1.0
)

// ringFractions are the cumulative outer radii of the four bands
var ringFractions = [models.RingCount]float64{0.25, 0.50, 0.75, 1.00}

// Point is an origin-centered cartesian position
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry describes the plot: a circle of Radius split into four sectors and four bands.
type Geometry struct {
	Radius float64 `json:"radius"`
}

// NewGeometry derives the plot radius from the container size and margin.
// A container too small for the margin yields a zero radius.
func NewGeometry(width, height, margin float64) Geometry {
	r := math.Min(width, height)/2 - margin
	if r < 0 {
		r = 0
	}
	return Geometry{Radius: r}
}

// SectorStart is the start angle of quadrant q: 0, π/2, π, 3π/2.
func (g Geometry) SectorStart(q int) float64 {
	return float64(q) * SectorWidth
}

// SectorMid is the angle halfway through quadrant q
func (g Geometry) SectorMid(q int) float64 {
	return g.SectorStart(q) + SectorWidth/2
}

// RingOuterRadius is the outer edge of band r
func (g Geometry) RingOuterRadius(r int) float64 {
	return ringFractions[r] * g.Radius
}

// CheckIndices validates a (quadrant, ring) pair against the fixed radar shape
func CheckIndices(quadrant, ring int) error {
	if quadrant < 0 || quadrant >= models.QuadrantCount {
		return fmt.Errorf("quadrant %d: %w", quadrant, ErrIndexOutOfRange)
	}
	if ring < 0 || ring >= models.RingCount {
		return fmt.Errorf("ring %d: %w", ring, ErrIndexOutOfRange)
	}
	return nil
}

// NormalizeAngle maps any angle into [0, 2π)
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// SectorOf returns the quadrant whose sector contains angle a
func SectorOf(a float64) int {
	q := int(NormalizeAngle(a) / SectorWidth)
	if q >= models.QuadrantCount {
		q = models.QuadrantCount - 1
	}
	return q
}

// Polar converts an angle and distance to a point
func Polar(angle, radius float64) Point {
	return Point{X: math.Cos(angle) * radius, Y: math.Sin(angle) * radius}
}
