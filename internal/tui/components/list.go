package components

import (
	"fmt"

	"charm.land/bubbles/v2/paginator"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/tui/theme"
)

// ListProps describes one page of the technology list.
type ListProps struct {
	Items      []*models.Technology // rows on the current page
	Total      int                  // rows across all pages
	Page       int                  // 1-indexed
	PageSize   int
	SelectedID int
	Quadrants  []*models.Quadrant
	Rings      []*models.Ring
	Width      int
}

// RenderList renders a page of technologies with ring and quadrant columns
// and a dot paginator underneath.
func RenderList(props ListProps) string {
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	if props.Total == 0 {
		return subtle.Italic(true).Render("No technologies match the current filters")
	}

	nameWidth := max(props.Width-30, 12)
	rows := []string{subtle.Render(fmt.Sprintf("  %-*s %-8s %s", nameWidth, "Name", "Ring", "Quadrant"))}

	for _, t := range props.Items {
		ring := nameOf(ringNames(props.Rings), t.Ring)
		quadrant := nameOf(quadrantNames(props.Quadrants), t.Quadrant)

		cursor := "  "
		nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
		if t.ID == props.SelectedID {
			cursor = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight)).Render("▶ ")
			nameStyle = nameStyle.Foreground(lipgloss.Color(theme.SelectedBorder)).Bold(true)
		}

		ringCell := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.RingColor(ringColor(props.Rings, t.Ring), t.Ring))).
			Width(9).
			Render(ring)

		rows = append(rows, cursor+
			nameStyle.Width(nameWidth+1).Render(truncate(t.Name, nameWidth))+
			ringCell+
			subtle.Render(quadrant))
	}

	pager := paginator.New(paginator.WithPerPage(max(props.PageSize, 1)))
	pager.Type = paginator.Dots
	pager.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight)).Render("•")
	pager.InactiveDot = subtle.Render("•")
	pager.SetTotalPages(props.Total)
	pager.Page = max(props.Page-1, 0)

	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		pager.View(),
		subtle.Render(fmt.Sprintf("  page %d of %d · %d technologies", props.Page, pager.TotalPages, props.Total)),
	)

	rows = append(rows, "", footer)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func ringNames(rings []*models.Ring) []string {
	names := make([]string, len(rings))
	for i, r := range rings {
		names[i] = r.Name
	}
	return names
}

func quadrantNames(quadrants []*models.Quadrant) []string {
	names := make([]string, len(quadrants))
	for i, q := range quadrants {
		names[i] = q.Name
	}
	return names
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("#%d", i)
	}
	return names[i]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
