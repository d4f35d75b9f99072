package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/techradar/internal/models"
)

func sample() []*models.Technology {
	return []*models.Technology{
		{ID: 1, Name: "React", Quadrant: 2, Ring: 0, Description: "UI library", Tags: []string{"frontend"}},
		{ID: 2, Name: "Trino", Quadrant: 3, Ring: 0, Description: "Distributed SQL engine", Tags: []string{}},
		{ID: 3, Name: "D2", Quadrant: 1, Ring: 1, Description: "Diagram scripting", Tags: []string{"Docs", "diagrams"}},
		{ID: 4, Name: "GraphRAG", Quadrant: 0, Ring: 0, Description: "Graph based retrieval", Tags: nil},
		{ID: 5, Name: "Railway", Quadrant: 3, Ring: 1, Description: "Deploy apps fast", Tags: []string{"paas"}},
	}
}

func names(technologies []*models.Technology) []string {
	out := make([]string, 0, len(technologies))
	for _, t := range technologies {
		out = append(out, t.Name)
	}
	return out
}

func intPtr(v int) *int { return &v }

// ============================================================================
// Search
// ============================================================================

func TestSearch_EmptyQueryReturnsEverythingInOrder(t *testing.T) {
	t.Parallel()
	all := sample()

	assert.Equal(t, all, Search(all, ""))
	assert.Equal(t, all, Search(all, "   "))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	t.Parallel()
	all := sample()

	upper := Search(all, "REACT")
	lower := Search(all, "react")
	assert.Equal(t, upper, lower)
	assert.Equal(t, []string{"React"}, names(lower))
}

func TestSearch_MatchesNameDescriptionOrTag(t *testing.T) {
	t.Parallel()
	all := sample()

	tests := []struct {
		query string
		want  []string
	}{
		{"rai", []string{"Railway"}},
		{"sql", []string{"Trino"}},
		{"docs", []string{"D2"}},
		{"FRONT", []string{"React"}},
		{"rag", []string{"GraphRAG"}},
		{"nothing-matches", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Search(all, tt.query)))
		})
	}
}

// ============================================================================
// Category filters
// ============================================================================

func TestFilterByQuadrant_NilIsIdentity(t *testing.T) {
	t.Parallel()
	all := sample()
	assert.Equal(t, all, FilterByQuadrant(all, nil))
}

func TestFilterByQuadrant_ExactMatch(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"Trino", "Railway"}, names(FilterByQuadrant(sample(), intPtr(3))))
	assert.Empty(t, FilterByQuadrant(sample(), intPtr(7)))
}

func TestFilterByRing(t *testing.T) {
	t.Parallel()
	assert.Equal(t, sample(), FilterByRing(sample(), nil))
	assert.Equal(t, []string{"D2", "Railway"}, names(FilterByRing(sample(), intPtr(1))))
}

func TestFilter_ComposesWithAnd(t *testing.T) {
	t.Parallel()
	all := sample()

	f := Filter{Query: "a", Quadrant: intPtr(3), Ring: intPtr(1)}
	got := f.Apply(all)
	assert.Equal(t, []string{"Railway"}, names(got))

	assert.True(t, Filter{}.IsZero())
	assert.Equal(t, all, Filter{}.Apply(all))
	assert.False(t, f.IsZero())
}

// ============================================================================
// Pagination
// ============================================================================

func TestPaginate(t *testing.T) {
	t.Parallel()
	items := make([]string, 16)
	for i := range items {
		items[i] = fmt.Sprint(i)
	}

	first := Paginate(items, 1, DefaultPageSize)
	require.Len(t, first, 7)
	assert.Equal(t, "0", first[0])

	last := Paginate(items, 3, DefaultPageSize)
	assert.Equal(t, []string{"14", "15"}, last)

	assert.Empty(t, Paginate(items, 4, DefaultPageSize), "past the end")
	assert.Empty(t, Paginate(items, 0, DefaultPageSize), "engine does not clamp")
	assert.Empty(t, Paginate([]string{}, 1, DefaultPageSize))
}

func TestTotalPagesAndClamp(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, TotalPages(0, 7))
	assert.Equal(t, 1, TotalPages(7, 7))
	assert.Equal(t, 2, TotalPages(8, 7))

	assert.Equal(t, 1, ClampPage(0, 20, 7))
	assert.Equal(t, 3, ClampPage(9, 20, 7))
	assert.Equal(t, 2, ClampPage(2, 20, 7))
}
