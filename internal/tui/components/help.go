package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/techradar/internal/config"
	"github.com/thenoetrevino/techradar/internal/tui/theme"
)

// RenderHelp renders the key binding overlay for the configured mappings.
func RenderHelp(km config.KeyMappings) string {
	text := fmt.Sprintf(`TECH RADAR - Keyboard Shortcuts

RADAR
  %-8s Select next technology
  %-8s Select previous technology
  %-8s Select marker under cursor / list row
  %-8s Clear selection
  %-8s Pause or resume rotation
  %-8s Re-roll the layout jitter
  mouse    Hover to pause, click to select

FILTERS
  %-8s Search name, description and tags
  %-8s Cycle quadrant filter
  %-8s Cycle ring filter
  1-4 0    Filter one quadrant / all quadrants
  !@#$ )   Filter one ring / all rings
  %-8s Clear all filters

PANELS
  %-8s Toggle projects panel
  %-8s Toggle radar and list view
  %-8s Next list page
  %-8s Previous list page

EDIT
  %-8s Add technology
  %-8s Edit selected technology
  %-8s Link selected technology to a project

OTHER
  %-8s Show this help
  %-8s Quit

Press any key to close`,
		km.NextMarker,
		km.PrevMarker,
		km.SelectMarker,
		km.ClearSelection,
		km.ToggleAnimation,
		km.Relayout,
		km.Search,
		km.CycleQuadrant,
		km.CycleRing,
		km.ClearFilters,
		km.ToggleProjects,
		km.ToggleView,
		km.NextPage,
		km.PrevPage,
		km.AddTechnology,
		km.EditTechnology,
		km.LinkProject,
		km.ShowHelp,
		km.Quit,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(1, 2).
		Width(56).
		Render(text)
}
