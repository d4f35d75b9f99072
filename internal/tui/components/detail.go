package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/tui/theme"
)

// DetailProps describes the selected-technology panel.
type DetailProps struct {
	Technology       *models.Technology
	QuadrantName     string
	QuadrantColor    string
	RingName         string
	RingColor        string
	Projects         []*models.Project
	ProjectsExpanded bool
	Width            int
}

// RenderDetail renders the selected technology, or a hint when nothing is selected.
func RenderDetail(props DetailProps) string {
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	if props.Technology == nil {
		return subtle.Italic(true).Render("Select a technology on the radar to see details")
	}
	t := props.Technology
	width := max(props.Width, 10)

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true).
		Width(width).
		Render(t.Name)

	chips := lipgloss.JoinHorizontal(lipgloss.Top,
		badge(props.RingName, props.RingColor),
		" ",
		badge(props.QuadrantName, props.QuadrantColor),
	)

	sections := []string{
		title,
		chips,
		"",
		RenderDescription(DescriptionProps{Description: t.Description, Width: width}),
	}

	if t.Website != nil && *t.Website != "" {
		sections = append(sections, "", field("Website", *t.Website))
	}
	if len(t.Tags) > 0 {
		tags := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			tags[i] = "#" + tag
		}
		sections = append(sections, field("Tags", strings.Join(tags, " ")))
	}

	sections = append(sections, "", renderProjects(props, subtle))

	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderProjects(props DetailProps, subtle lipgloss.Style) string {
	arrow := "▸"
	if props.ProjectsExpanded {
		arrow = "▾"
	}
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Normal)).
		Render(fmt.Sprintf("%s Projects (%d)", arrow, len(props.Projects)))
	if !props.ProjectsExpanded {
		return header
	}
	if len(props.Projects) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, subtle.Render("  Not used by any project"))
	}

	lines := []string{header}
	for _, p := range props.Projects {
		line := "  • " + p.Name
		if p.Status != "" {
			line += subtle.Render(" (" + p.Status + ")")
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func badge(label, color string) string {
	if label == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		Render(label)
}

func field(label, value string) string {
	l := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(label + ": ")
	return l + lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).Render(value)
}
