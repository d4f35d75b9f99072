package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/techradar/internal/tui/components"
	"github.com/thenoetrevino/techradar/internal/tui/state"
)

// FrameMsg advances the rotation by one step
type FrameMsg struct {
	Time time.Time
	// Generation is the animator loop that scheduled this frame
	Generation uint64
}

// Update is the main dispatcher. Forms receive every message, not just keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		m.Search.SetWidth(max(msg.Width-4, 10))
		return m, nil

	case FrameMsg:
		// the live flag is checked on every frame; a stopped animator or a
		// frame left over from an earlier loop ends that loop
		if !m.Animator.Advance(msg.Generation) {
			return m, nil
		}
		return m, m.nextFrame()

	case StoreChangedMsg:
		m.Reload()
		return m, m.waitForEvent()
	}

	switch m.UiState.Mode() {
	case state.TechnologyFormMode:
		return m, m.updateTechnologyForm(msg)
	case state.LinkFormMode:
		return m, m.updateLinkForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case tea.MouseMotionMsg:
		m.handleHover(msg.X, msg.Y)
		return m, nil
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			m.handleClick(msg.X, msg.Y)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.SearchMode:
		return m.handleSearchKey(msg)
	case state.HelpMode:
		m.UiState.SetMode(state.NormalMode)
		return nil
	default:
		return m.handleNormalKey(msg)
	}
}

// nextFrame schedules the following animation frame
func (m *Model) nextFrame() tea.Cmd {
	interval := m.Config.Radar.FrameInterval()
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	gen := m.Animator.Generation()
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, Generation: gen}
	})
}

// markerAt maps a screen cell to the marker under it. Only the radar view
// has markers, and the canvas starts at the top-left corner.
func (m *Model) markerAt(x, y int) int {
	if m.UiState.View() != state.RadarView || m.UiState.Mode() != state.NormalMode {
		return 0
	}
	w, h := m.UiState.MainWidth(), m.UiState.MainHeight()
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0
	}
	return components.MarkerAt(w, h, m.VisiblePlacements(), x, y)
}

// handleHover tracks the marker under the pointer. Any hovered marker pauses
// all rotation until the pointer leaves it.
func (m *Model) handleHover(x, y int) {
	id := m.markerAt(x, y)
	m.RadarState.SetHover(id)
	if id != 0 {
		m.Animator.Pause()
	} else {
		m.Animator.Resume()
	}
}

// handleClick selects the clicked marker; other state is untouched.
func (m *Model) handleClick(x, y int) {
	if id := m.markerAt(x, y); id != 0 {
		m.selectTechnology(id)
	}
}

func (m *Model) selectTechnology(id int) {
	if m.RadarState.Select(id) {
		m.loadSelectedProjects()
	}
}
