package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/techradar/internal/app"
	"github.com/thenoetrevino/techradar/internal/config"
	"github.com/thenoetrevino/techradar/internal/events"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/radar"
	"github.com/thenoetrevino/techradar/internal/tui/state"
)

// Timeout for store operations triggered from the UI
const timeoutDB = 5 * time.Second

// searchCharLimit bounds the search box
const searchCharLimit = 100

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	RadarState        *state.RadarState
	UiState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	Quadrants []*models.Quadrant
	Rings     []*models.Ring
	Projects  []*models.Project

	// SelectedProjects are the projects linked to the selected technology
	SelectedProjects []*models.Project

	// Seed fixes the layout jitter; Relayout moves to the next seed
	Seed uint64

	// Animator owns the persistent unit-geometry placements of every
	// technology. Filters pick which of them are drawn.
	Animator *radar.Animator
	step     float64

	Search textinput.Model

	EventChan           <-chan events.Event
	SubscriptionStarted bool
}

// New loads the store into a fresh model. Animation starts running when the
// config enables it; Init schedules the first frame.
func New(ctx context.Context, a *app.App, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = a.Config()
	}

	seed := radar.ClockSeed()
	if cfg.Radar.Seed != nil {
		seed = *cfg.Radar.Seed
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search name, description, tags"
	search.CharLimit = searchCharLimit

	m := &Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		RadarState:        state.NewRadarState(nil, cfg.List.PageSize),
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		Seed:              seed,
		step:              radar.DefaultRotationStep * cfg.Radar.RotationStepDegrees,
		Search:            search,
	}
	m.Animator = radar.NewAnimator(nil, m.step)

	m.Reload()

	if ch, err := a.Events().Listen(ctx); err != nil {
		slog.Warn("live reload disabled", "error", err)
	} else {
		m.EventChan = ch
	}

	if cfg.Radar.AnimationEnabled() {
		m.Animator.Start()
	}
	return m
}

// Init starts listening for store changes and, when animating, schedules the first frame
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.EventChan != nil && !m.SubscriptionStarted {
		m.SubscriptionStarted = true
		cmds = append(cmds, m.waitForEvent())
	}
	if m.Animator.Running() {
		cmds = append(cmds, m.nextFrame())
	}
	return tea.Batch(cmds...)
}

// DbContext creates a child context with timeout for store operations
func (m *Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, timeoutDB)
}

// QuadrantNames returns the quadrant names in positional order
func (m *Model) QuadrantNames() []string {
	names := make([]string, len(m.Quadrants))
	for i, q := range m.Quadrants {
		names[i] = q.Name
	}
	return names
}

// RingNames returns the ring names in positional order
func (m *Model) RingNames() []string {
	names := make([]string, len(m.Rings))
	for i, r := range m.Rings {
		names[i] = r.Name
	}
	return names
}

// VisiblePlacements returns the current (possibly rotated) placements of
// the technologies passing the filters.
func (m *Model) VisiblePlacements() []radar.Placement {
	visible := make(map[int]bool, len(m.RadarState.Visible()))
	for _, t := range m.RadarState.Visible() {
		visible[t.ID] = true
	}
	all := m.Animator.Placements()
	out := make([]radar.Placement, 0, len(visible))
	for _, p := range all {
		if visible[p.TechnologyID] {
			out = append(out, p)
		}
	}
	return out
}
