package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/tui/theme"
)

// LegendProps describes the quadrant filter bar and ring legend.
// Counts are over the whole data set, not the filtered view.
type LegendProps struct {
	Quadrants      []*models.Quadrant
	Rings          []*models.Ring
	QuadrantCounts []int
	RingCounts     []int
	QuadrantFilter *int
	RingFilter     *int
	Width          int
}

// RenderLegend renders one chip per quadrant (plus "All") and a colored
// entry per ring. The active filter of each row is highlighted.
func RenderLegend(props LegendProps) string {
	quadrantChips := []string{chip("All", theme.Highlight, props.QuadrantFilter == nil)}
	for i, q := range props.Quadrants {
		label := fmt.Sprintf("%s %d", q.Name, count(props.QuadrantCounts, i))
		active := props.QuadrantFilter != nil && *props.QuadrantFilter == i
		quadrantChips = append(quadrantChips, chip(label, theme.QuadrantColor(q.Color, i), active))
	}

	ringChips := []string{chip("All", theme.Highlight, props.RingFilter == nil)}
	for i, r := range props.Rings {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.RingColor(r.Color, i))).Render(string(markerRune))
		label := fmt.Sprintf("%s %d", r.Name, count(props.RingCounts, i))
		active := props.RingFilter != nil && *props.RingFilter == i
		ringChips = append(ringChips, dot+chip(label, theme.RingColor(r.Color, i), active))
	}

	title := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	return lipgloss.JoinVertical(lipgloss.Left,
		title.Render("Quadrants"),
		wrapChips(quadrantChips, props.Width),
		title.Render("Rings"),
		wrapChips(ringChips, props.Width),
	)
}

func chip(label, color string, active bool) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return style.
			Foreground(lipgloss.Color(theme.Background)).
			Background(lipgloss.Color(color)).
			Bold(true).
			Render(label)
	}
	return style.Foreground(lipgloss.Color(color)).Render(label)
}

// wrapChips lays chips out left to right, starting a new line when the next one would overflow.
func wrapChips(chips []string, width int) string {
	if width <= 0 {
		return strings.Join(chips, "")
	}
	var lines []string
	var line string
	for _, c := range chips {
		if line != "" && lipgloss.Width(line)+lipgloss.Width(c) > width {
			lines = append(lines, line)
			line = ""
		}
		line += c
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func count(counts []int, i int) int {
	if i < 0 || i >= len(counts) {
		return 0
	}
	return counts[i]
}
