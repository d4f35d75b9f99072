package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/techradar/internal/events"
	"github.com/thenoetrevino/techradar/internal/radar"
	"github.com/thenoetrevino/techradar/internal/tui/components"
	"github.com/thenoetrevino/techradar/internal/tui/state"
)

// StoreChangedMsg is delivered when a service reports a write
type StoreChangedMsg struct {
	Event events.Event
}

// Reload refreshes every collection from the store and rebuilds the layout.
// Selection, filters and page survive the reload.
func (m *Model) Reload() {
	ctx, cancel := m.DbContext()
	defer cancel()

	quadrants, err := m.App.QuadrantService.ListQuadrants(ctx)
	if err != nil {
		m.HandleDBError(err, "load quadrants")
		return
	}
	rings, err := m.App.RingService.ListRings(ctx)
	if err != nil {
		m.HandleDBError(err, "load rings")
		return
	}
	technologies, err := m.App.TechnologyService.ListTechnologies(ctx)
	if err != nil {
		m.HandleDBError(err, "load technologies")
		return
	}
	projects, err := m.App.ProjectService.ListProjects(ctx)
	if err != nil {
		m.HandleDBError(err, "load projects")
		return
	}

	m.Quadrants = quadrants
	m.Rings = rings
	m.Projects = projects
	m.RadarState.SetTechnologies(technologies)
	m.rebuildLayout()
	m.loadSelectedProjects()
}

// rebuildLayout places every technology with the current seed and applies
// the rotation accumulated so far, so a reload never makes markers jump back.
func (m *Model) rebuildLayout() {
	layout := radar.NewSeededLayout(components.UnitGeometry, m.Seed)
	placements, err := layout.Build(m.RadarState.Technologies())
	if err != nil {
		slog.Error("radar layout failed", "error", err)
		m.NotificationState.Add(state.LevelError, "Cannot place technology: "+err.Error())
		return
	}
	offset := float64(m.Animator.Frames()) * m.step
	for i := range placements {
		placements[i].Angle = radar.NormalizeAngle(placements[i].Angle + offset)
	}
	m.Animator.Reset(placements)
}

// loadSelectedProjects fetches the projects linked to the selected technology
func (m *Model) loadSelectedProjects() {
	m.SelectedProjects = nil
	selected := m.RadarState.Selected()
	if selected == nil {
		return
	}
	ctx, cancel := m.DbContext()
	defer cancel()
	projects, err := m.App.ProjectService.ProjectsForTechnology(ctx, selected.ID)
	if err != nil {
		m.HandleDBError(err, "load projects for "+selected.Name)
		return
	}
	m.SelectedProjects = projects
}

// HandleDBError logs a store failure and shows it to the user
func (m *Model) HandleDBError(err error, operation string) {
	slog.Error("store operation failed", "operation", operation, "error", err)
	m.NotificationState.Add(state.LevelError, "Failed to "+operation+": "+err.Error())
}

// waitForEvent returns a command that blocks until the next store event.
// It returns nil when the channel closes or the context ends, which stops the loop.
func (m *Model) waitForEvent() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	ch := m.EventChan
	ctx := m.Ctx
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return StoreChangedMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}
