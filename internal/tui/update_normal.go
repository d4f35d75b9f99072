package tui

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/techradar/internal/tui/state"
)

// handleNormalKey dispatches keys in normal mode using the configured mappings
func (m *Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	km := m.Config.KeyMappings
	key := msg.String()

	switch key {
	case "ctrl+c", km.Quit:
		m.Animator.Stop()
		return tea.Quit

	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)

	case km.NextMarker, "down":
		m.RadarState.SelectNext()
		m.loadSelectedProjects()

	case km.PrevMarker, "up":
		m.RadarState.SelectPrev()
		m.loadSelectedProjects()

	case km.SelectMarker:
		if id := m.RadarState.HoveredID(); id != 0 {
			m.selectTechnology(id)
		} else if m.UiState.View() == state.ListView && m.RadarState.Selected() != nil {
			m.UiState.ToggleView()
		}

	case km.ClearSelection:
		m.RadarState.ClearSelection()
		m.SelectedProjects = nil

	case km.ToggleAnimation:
		return m.toggleAnimation()

	case km.Relayout:
		m.Seed++
		m.rebuildLayout()

	case km.Search:
		m.UiState.SetMode(state.SearchMode)
		m.Search.SetValue(m.RadarState.Query())
		m.Search.CursorEnd()
		return m.Search.Focus()

	case km.CycleQuadrant:
		m.RadarState.CycleQuadrant(len(m.Quadrants))

	case km.CycleRing:
		m.RadarState.CycleRing(len(m.Rings))

	case km.ClearFilters:
		m.RadarState.ClearFilters()
		m.Search.Reset()

	case "0", "1", "2", "3", "4":
		m.setQuadrantShortcut(key)

	case ")", "!", "@", "#", "$":
		m.setRingShortcut(key)

	case km.ToggleProjects:
		m.RadarState.ToggleProjects()

	case km.ToggleView:
		m.UiState.ToggleView()

	case km.NextPage, "right":
		m.RadarState.NextPage()

	case km.PrevPage, "left":
		m.RadarState.PrevPage()

	case km.AddTechnology:
		return m.openTechnologyForm(nil)

	case km.EditTechnology:
		selected := m.RadarState.Selected()
		if selected == nil {
			m.NotificationState.Add(state.LevelWarning, "Select a technology to edit")
			return nil
		}
		return m.openTechnologyForm(selected)

	case km.LinkProject:
		return m.openLinkForm()
	}
	return nil
}

// setQuadrantShortcut maps 1-4 to a quadrant filter and 0 to all quadrants
func (m *Model) setQuadrantShortcut(key string) {
	n, _ := strconv.Atoi(key)
	if n == 0 {
		m.RadarState.SetQuadrantFilter(nil)
		return
	}
	if n > len(m.Quadrants) {
		return
	}
	q := n - 1
	m.RadarState.SetQuadrantFilter(&q)
}

// ringShortcuts are the shifted digits on a US layout; ")" is shift+0
var ringShortcuts = map[string]int{"!": 0, "@": 1, "#": 2, "$": 3}

// setRingShortcut maps shift+1-4 to a ring filter and shift+0 to all rings
func (m *Model) setRingShortcut(key string) {
	r, ok := ringShortcuts[key]
	if !ok {
		m.RadarState.SetRingFilter(nil)
		return
	}
	if r >= len(m.Rings) {
		return
	}
	m.RadarState.SetRingFilter(&r)
}

// toggleAnimation stops a running rotation or starts a stopped one.
// Starting schedules the first frame; stopping lets the pending frame end the loop.
func (m *Model) toggleAnimation() tea.Cmd {
	if m.Animator.Running() {
		m.Animator.Stop()
		return nil
	}
	if m.Animator.Start() {
		return m.nextFrame()
	}
	return nil
}

// handleSearchKey edits the search box; matches are recomputed on every keystroke
func (m *Model) handleSearchKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.Search.Reset()
		m.Search.Blur()
		m.RadarState.SetQuery("")
		m.UiState.SetMode(state.NormalMode)
		return nil
	case "enter":
		m.Search.Blur()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case "ctrl+c":
		m.Animator.Stop()
		return tea.Quit
	}

	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	if m.Search.Value() != m.RadarState.Query() {
		m.RadarState.SetQuery(m.Search.Value())
	}
	return cmd
}
