package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Radar
	NextMarker      string `yaml:"next_marker"`
	PrevMarker      string `yaml:"prev_marker"`
	SelectMarker    string `yaml:"select_marker"`
	ClearSelection  string `yaml:"clear_selection"`
	ToggleAnimation string `yaml:"toggle_animation"`
	Relayout        string `yaml:"relayout"`

	// Filters
	Search        string `yaml:"search"`
	CycleQuadrant string `yaml:"cycle_quadrant"`
	CycleRing     string `yaml:"cycle_ring"`
	ClearFilters  string `yaml:"clear_filters"`

	// Panels and views
	ToggleProjects string `yaml:"toggle_projects"`
	ToggleView     string `yaml:"toggle_view"`
	NextPage       string `yaml:"next_page"`
	PrevPage       string `yaml:"prev_page"`

	// Forms
	AddTechnology  string `yaml:"add_technology"`
	EditTechnology string `yaml:"edit_technology"`
	LinkProject    string `yaml:"link_project"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NextMarker:      "j",
		PrevMarker:      "k",
		SelectMarker:    "enter",
		ClearSelection:  "esc",
		ToggleAnimation: "space",
		Relayout:        "L",

		Search:        "/",
		CycleQuadrant: "f",
		CycleRing:     "r",
		ClearFilters:  "c",

		ToggleProjects: "p",
		ToggleView:     "tab",
		NextPage:       "n",
		PrevPage:       "b",

		AddTechnology:  "a",
		EditTechnology: "e",
		LinkProject:    "l",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()

	for _, pair := range []struct {
		dst *string
		src string
	}{
		{&k.NextMarker, d.NextMarker},
		{&k.PrevMarker, d.PrevMarker},
		{&k.SelectMarker, d.SelectMarker},
		{&k.ClearSelection, d.ClearSelection},
		{&k.ToggleAnimation, d.ToggleAnimation},
		{&k.Relayout, d.Relayout},
		{&k.Search, d.Search},
		{&k.CycleQuadrant, d.CycleQuadrant},
		{&k.CycleRing, d.CycleRing},
		{&k.ClearFilters, d.ClearFilters},
		{&k.ToggleProjects, d.ToggleProjects},
		{&k.ToggleView, d.ToggleView},
		{&k.NextPage, d.NextPage},
		{&k.PrevPage, d.PrevPage},
		{&k.AddTechnology, d.AddTechnology},
		{&k.EditTechnology, d.EditTechnology},
		{&k.LinkProject, d.LinkProject},
		{&k.ShowHelp, d.ShowHelp},
		{&k.Quit, d.Quit},
	} {
		if *pair.dst == "" {
			*pair.dst = pair.src
		}
	}
}
