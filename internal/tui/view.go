package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/tui/components"
	"github.com/thenoetrevino/techradar/internal/tui/layers"
	"github.com/thenoetrevino/techradar/internal/tui/notifications"
	"github.com/thenoetrevino/techradar/internal/tui/state"
	"github.com/thenoetrevino/techradar/internal/tui/theme"
)

// View renders the whole screen: main panel, sidebar, search line, status
// bar, and any overlay for the current mode.
func (m *Model) View() tea.View {
	content := "Loading..."
	if m.UiState.Width() > 0 {
		content = m.renderScreen()
	}

	view := tea.NewView(content)
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.BackgroundColor = lipgloss.Color(theme.Background)
	view.WindowTitle = "Tech Radar"
	return view
}

func (m *Model) renderScreen() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderMain(), m.renderSidebar())
	base := lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.renderSearchLine(),
		m.renderStatusBar(),
	)

	var overlay *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.HelpMode:
		overlay = layers.CreateCenteredLayer(components.RenderHelp(m.Config.KeyMappings), m.UiState.Width(), m.UiState.Height())
	case state.TechnologyFormMode:
		overlay = m.formLayer(m.FormState.TechnologyForm.View(), m.formTitle())
	case state.LinkFormMode:
		overlay = m.formLayer(m.FormState.LinkForm.View(), "Link Project")
	}

	stack := layers.Stack(base, overlay)
	stack = append(stack, m.NotificationState.GetLayers(notifications.RenderFromState)...)
	return lipgloss.NewCanvas(stack...).Render()
}

func (m *Model) formTitle() string {
	if m.FormState.EditingTechnologyID != 0 {
		return "Edit Technology"
	}
	return "Add Technology"
}

func (m *Model) formLayer(form, title string) *lipgloss.Layer {
	color := theme.Create
	if m.FormState.EditingTechnologyID != 0 {
		color = theme.Edit
	}
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(title)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, heading, "", form))
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// renderMain draws the radar canvas or the paginated list into the main area
func (m *Model) renderMain() string {
	w, h := m.UiState.MainWidth(), m.UiState.MainHeight()
	var content string
	if m.UiState.View() == state.ListView {
		content = components.RenderList(components.ListProps{
			Items:      m.RadarState.PageItems(),
			Total:      len(m.RadarState.Visible()),
			Page:       m.RadarState.Page(),
			PageSize:   m.RadarState.PageSize(),
			SelectedID: m.RadarState.SelectedID(),
			Quadrants:  m.Quadrants,
			Rings:      m.Rings,
			Width:      w - 2,
		})
		content = lipgloss.NewStyle().Padding(1, 1).Render(content)
	} else {
		content = components.RenderCanvas(components.CanvasProps{
			Width:      w,
			Height:     h,
			Placements: m.VisiblePlacements(),
			Quadrants:  m.Quadrants,
			Rings:      m.Rings,
			SelectedID: m.RadarState.SelectedID(),
			HoverID:    m.RadarState.HoveredID(),
		})
	}
	return lipgloss.NewStyle().Width(w).Height(h).MaxHeight(h).Render(content)
}

// renderSidebar stacks the legend and the detail panel
func (m *Model) renderSidebar() string {
	w, h := m.UiState.SidebarWidth(), m.UiState.MainHeight()
	inner := max(w-3, 1)

	legend := components.RenderLegend(components.LegendProps{
		Quadrants:      m.Quadrants,
		Rings:          m.Rings,
		QuadrantCounts: countBy(m.RadarState.Technologies(), len(m.Quadrants), func(t *models.Technology) int { return t.Quadrant }),
		RingCounts:     countBy(m.RadarState.Technologies(), len(m.Rings), func(t *models.Technology) int { return t.Ring }),
		QuadrantFilter: m.RadarState.QuadrantFilter(),
		RingFilter:     m.RadarState.RingFilter(),
		Width:          inner,
	})

	detail := components.RenderDetail(m.detailProps(inner))

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(theme.PanelBorder)).
		Padding(0, 1).
		Width(w).
		Height(h).
		MaxHeight(h).
		Render(lipgloss.JoinVertical(lipgloss.Left, legend, "", detail))
}

func (m *Model) detailProps(width int) components.DetailProps {
	props := components.DetailProps{
		Technology:       m.RadarState.Selected(),
		Projects:         m.SelectedProjects,
		ProjectsExpanded: m.RadarState.ProjectsExpanded(),
		Width:            width,
	}
	if t := props.Technology; t != nil {
		if t.Quadrant >= 0 && t.Quadrant < len(m.Quadrants) {
			q := m.Quadrants[t.Quadrant]
			props.QuadrantName = q.Name
			props.QuadrantColor = theme.QuadrantColor(q.Color, t.Quadrant)
		}
		if t.Ring >= 0 && t.Ring < len(m.Rings) {
			r := m.Rings[t.Ring]
			props.RingName = r.Name
			props.RingColor = theme.RingColor(r.Color, t.Ring)
		}
	}
	return props
}

func (m *Model) renderSearchLine() string {
	if m.UiState.Mode() == state.SearchMode {
		return m.Search.View()
	}
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	if q := m.RadarState.Query(); q != "" {
		return subtle.Render(fmt.Sprintf("/ %s  (%d matches, %s to clear)", q, len(m.RadarState.Visible()), m.Config.KeyMappings.ClearFilters))
	}
	return subtle.Render(fmt.Sprintf("press %s to search", m.Config.KeyMappings.Search))
}

func (m *Model) renderStatusBar() string {
	left := []string{
		fmt.Sprintf("Tech Radar · %d of %d technologies", len(m.RadarState.Visible()), len(m.RadarState.Technologies())),
	}
	if q := m.RadarState.QuadrantFilter(); q != nil && *q < len(m.Quadrants) {
		left = append(left, "quadrant: "+m.Quadrants[*q].Name)
	}
	if r := m.RadarState.RingFilter(); r != nil && *r < len(m.Rings) {
		left = append(left, "ring: "+m.Rings[*r].Name)
	}

	motion := "still"
	switch {
	case m.Animator.Running() && m.Animator.Paused():
		motion = "paused"
	case m.Animator.Running():
		motion = "rotating"
	}

	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  strings.Join(left, " · "),
		Right: motion + " · press " + m.Config.KeyMappings.ShowHelp + " for help",
	})
}

func countBy(technologies []*models.Technology, n int, key func(*models.Technology) int) []int {
	counts := make([]int, n)
	for _, t := range technologies {
		if i := key(t); i >= 0 && i < n {
			counts[i]++
		}
	}
	return counts
}
