// Package query derives filtered and paginated views of the technology
// collection. Nothing here mutates its input; results keep store order.
package query

import (
	"strings"

	"github.com/thenoetrevino/techradar/internal/models"
)

// Filter combines a text search with optional quadrant and ring predicates.
// A nil Quadrant or Ring means "all". Every predicate must pass.
type Filter struct {
	Query    string
	Quadrant *int
	Ring     *int
}

// IsZero reports whether the filter passes everything through
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" && f.Quadrant == nil && f.Ring == nil
}

// Apply runs the search and both category predicates over technologies
func (f Filter) Apply(technologies []*models.Technology) []*models.Technology {
	return FilterByRing(FilterByQuadrant(Search(technologies, f.Query), f.Quadrant), f.Ring)
}

// Search returns the technologies whose name, description or any tag contains
// q, ignoring case. A blank q returns the input unchanged.
func Search(technologies []*models.Technology, q string) []*models.Technology {
	if strings.TrimSpace(q) == "" {
		return technologies
	}
	needle := strings.ToLower(q)
	out := make([]*models.Technology, 0, len(technologies))
	for _, t := range technologies {
		if matchesLower(t, needle) {
			out = append(out, t)
		}
	}
	return out
}

func matchesLower(t *models.Technology, needle string) bool {
	if strings.Contains(strings.ToLower(t.Name), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// FilterByQuadrant keeps technologies in the given quadrant. nil passes everything.
func FilterByQuadrant(technologies []*models.Technology, quadrant *int) []*models.Technology {
	if quadrant == nil {
		return technologies
	}
	return keep(technologies, func(t *models.Technology) bool { return t.Quadrant == *quadrant })
}

// FilterByRing keeps technologies in the given ring. nil passes everything.
func FilterByRing(technologies []*models.Technology, ring *int) []*models.Technology {
	if ring == nil {
		return technologies
	}
	return keep(technologies, func(t *models.Technology) bool { return t.Ring == *ring })
}

func keep(technologies []*models.Technology, pred func(*models.Technology) bool) []*models.Technology {
	out := make([]*models.Technology, 0, len(technologies))
	for _, t := range technologies {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
