package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keys are active and which overlay is shown.
type Mode int

const (
	NormalMode         Mode = iota // Radar or list navigation
	SearchMode                     // Typing into the search box (/)
	HelpMode                       // Key binding overlay
	TechnologyFormMode             // Add or edit a technology with huh
	LinkFormMode                   // Link the selected technology to a project
)

// View is the main panel shown beside the detail panel.
type View int

const (
	RadarView View = iota
	ListView
)

// UIState manages terminal dimensions, the interaction mode and the active view.
type UIState struct {
	width  int
	height int
	mode   Mode
	view   View
}

// NewUIState creates a UIState in normal mode on the radar view.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode, view: RadarView}
}

// Width returns the terminal width in cells.
func (s *UIState) Width() int { return s.width }

// Height returns the terminal height in cells.
func (s *UIState) Height() int { return s.height }

// SetSize records the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode { return s.mode }

// SetMode switches the interaction mode.
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

// View returns the active main panel.
func (s *UIState) View() View { return s.view }

// ToggleView switches between the radar canvas and the paginated list.
func (s *UIState) ToggleView() {
	if s.view == RadarView {
		s.view = ListView
		return
	}
	s.view = RadarView
}

// SidebarWidth is the width given to the legend and detail panel.
func (s *UIState) SidebarWidth() int {
	w := s.width / 3
	return min(max(w, 28), 48)
}

// MainWidth is what remains for the radar or list after the sidebar.
func (s *UIState) MainWidth() int {
	return max(s.width-s.SidebarWidth(), 0)
}

// MainHeight is the terminal height minus the search line and status bar.
func (s *UIState) MainHeight() int {
	return max(s.height-2, 0)
}
