package state

import (
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/query"
)

// RadarState tracks selection, filters, search and paging for the radar view.
//
// The visible set is recomputed eagerly on every filter or data change.
// Selection is independent of the filters: narrowing the quadrant filter
// never clears or moves the selected technology, even when it is no longer
// visible. Changing any filter resets the list to page 1.
type RadarState struct {
	all     []*models.Technology
	visible []*models.Technology

	// selectedID is the selected technology id, 0 for none
	selectedID int

	// hoverID is the technology under the pointer, 0 for none
	hoverID int

	quadrant *int
	ring     *int
	query    string

	projectsExpanded bool

	page     int
	pageSize int
}

// NewRadarState creates the initial state: no selection, no filter,
// empty search, projects panel collapsed, page 1.
func NewRadarState(technologies []*models.Technology, pageSize int) *RadarState {
	if pageSize < 1 {
		pageSize = query.DefaultPageSize
	}
	s := &RadarState{page: 1, pageSize: pageSize}
	s.SetTechnologies(technologies)
	return s
}

// SetTechnologies replaces the data set after a reload. Selection and hover
// survive when their technology still exists; the page is clamped.
func (s *RadarState) SetTechnologies(technologies []*models.Technology) {
	s.all = technologies
	if s.find(s.selectedID) == nil {
		s.selectedID = 0
	}
	if s.find(s.hoverID) == nil {
		s.hoverID = 0
	}
	s.recompute()
	s.page = query.ClampPage(s.page, len(s.visible), s.pageSize)
}

// Technologies returns every loaded technology in store order.
func (s *RadarState) Technologies() []*models.Technology {
	return s.all
}

// Visible returns the technologies passing the current filter, in store order.
func (s *RadarState) Visible() []*models.Technology {
	return s.visible
}

// Filter returns the active search and category filters.
func (s *RadarState) Filter() query.Filter {
	return query.Filter{Query: s.query, Quadrant: s.quadrant, Ring: s.ring}
}

func (s *RadarState) recompute() {
	s.visible = s.Filter().Apply(s.all)
}

func (s *RadarState) find(id int) *models.Technology {
	if id == 0 {
		return nil
	}
	for _, t := range s.all {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ============================================================================
// Selection
// ============================================================================

// Selected returns the selected technology or nil.
func (s *RadarState) Selected() *models.Technology {
	return s.find(s.selectedID)
}

// SelectedID returns the selected technology id, 0 when nothing is selected.
func (s *RadarState) SelectedID() int {
	return s.selectedID
}

// Select marks a technology as selected. Unknown ids are ignored and
// reported as false. No other field changes.
func (s *RadarState) Select(id int) bool {
	if s.find(id) == nil {
		return false
	}
	s.selectedID = id
	return true
}

// ClearSelection deselects the current technology.
func (s *RadarState) ClearSelection() {
	s.selectedID = 0
}

// SelectNext moves the selection forward through the visible set, wrapping.
// With nothing selected (or the selection filtered out) it picks the first.
func (s *RadarState) SelectNext() {
	s.step(1)
}

// SelectPrev moves the selection backward through the visible set, wrapping.
func (s *RadarState) SelectPrev() {
	s.step(-1)
}

func (s *RadarState) step(delta int) {
	n := len(s.visible)
	if n == 0 {
		return
	}
	idx := s.visibleIndex(s.selectedID)
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = (idx + delta + n) % n
	}
	s.selectedID = s.visible[idx].ID
	// keep the list page showing the selection
	s.page = idx/s.pageSize + 1
}

func (s *RadarState) visibleIndex(id int) int {
	for i, t := range s.visible {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// ============================================================================
// Hover
// ============================================================================

// Hovered returns the technology under the pointer or nil.
func (s *RadarState) Hovered() *models.Technology {
	return s.find(s.hoverID)
}

// HoveredID returns the hovered technology id, 0 for none.
func (s *RadarState) HoveredID() int {
	return s.hoverID
}

// SetHover records the marker under the pointer; 0 clears it.
// It reports whether the hover target changed.
func (s *RadarState) SetHover(id int) bool {
	if id != 0 && s.find(id) == nil {
		id = 0
	}
	changed := s.hoverID != id
	s.hoverID = id
	return changed
}

// ============================================================================
// Filters
// ============================================================================

// QuadrantFilter returns the quadrant index filter, nil meaning all.
func (s *RadarState) QuadrantFilter() *int {
	return s.quadrant
}

// SetQuadrantFilter filters by quadrant index; nil shows all quadrants.
// The selection is left untouched.
func (s *RadarState) SetQuadrantFilter(q *int) {
	s.quadrant = copyIndex(q)
	s.filterChanged()
}

// CycleQuadrant steps the quadrant filter all -> 0 -> 1 ... -> n-1 -> all.
func (s *RadarState) CycleQuadrant(n int) {
	s.quadrant = cycle(s.quadrant, n)
	s.filterChanged()
}

// RingFilter returns the ring index filter, nil meaning all.
func (s *RadarState) RingFilter() *int {
	return s.ring
}

// SetRingFilter filters by ring index; nil shows all rings.
func (s *RadarState) SetRingFilter(r *int) {
	s.ring = copyIndex(r)
	s.filterChanged()
}

// CycleRing steps the ring filter the same way as CycleQuadrant.
func (s *RadarState) CycleRing(n int) {
	s.ring = cycle(s.ring, n)
	s.filterChanged()
}

// Query returns the current search text.
func (s *RadarState) Query() string {
	return s.query
}

// SetQuery applies a new search text, recomputing matches immediately
// and resetting the list to page 1.
func (s *RadarState) SetQuery(q string) {
	s.query = q
	s.filterChanged()
}

// ClearFilters removes the search text and both category filters.
func (s *RadarState) ClearFilters() {
	s.query = ""
	s.quadrant = nil
	s.ring = nil
	s.filterChanged()
}

func (s *RadarState) filterChanged() {
	s.recompute()
	s.page = 1
}

func copyIndex(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func cycle(cur *int, n int) *int {
	if n <= 0 {
		return nil
	}
	if cur == nil {
		v := 0
		return &v
	}
	if *cur+1 >= n {
		return nil
	}
	v := *cur + 1
	return &v
}

// ============================================================================
// Projects panel
// ============================================================================

// ProjectsExpanded reports whether the projects panel is open.
func (s *RadarState) ProjectsExpanded() bool {
	return s.projectsExpanded
}

// ToggleProjects opens or closes the projects panel. Nothing else changes.
func (s *RadarState) ToggleProjects() {
	s.projectsExpanded = !s.projectsExpanded
}

// ============================================================================
// Paging
// ============================================================================

// Page returns the 1-indexed list page.
func (s *RadarState) Page() int {
	return s.page
}

// PageSize returns the number of rows per list page.
func (s *RadarState) PageSize() int {
	return s.pageSize
}

// TotalPages returns the page count for the visible set, at least 1.
func (s *RadarState) TotalPages() int {
	return query.TotalPages(len(s.visible), s.pageSize)
}

// SetPage moves to page p, clamped to the available pages.
func (s *RadarState) SetPage(p int) {
	s.page = query.ClampPage(p, len(s.visible), s.pageSize)
}

// NextPage advances one page; it reports false on the last page.
func (s *RadarState) NextPage() bool {
	if s.page >= s.TotalPages() {
		return false
	}
	s.page++
	return true
}

// PrevPage goes back one page; it reports false on the first page.
func (s *RadarState) PrevPage() bool {
	if s.page <= 1 {
		return false
	}
	s.page--
	return true
}

// PageItems returns the visible technologies on the current page.
func (s *RadarState) PageItems() []*models.Technology {
	return query.Paginate(s.visible, s.page, s.pageSize)
}
