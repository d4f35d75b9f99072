package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	Background      string `yaml:"background"`
	PanelBackground string `yaml:"panel_background"`

	// Form accents
	Create string `yaml:"create"`
	Edit   string `yaml:"edit"`

	// UI element colors
	PanelBorder    string `yaml:"panel_border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	Grid           string `yaml:"grid"` // ring circles and quadrant axes

	// Ring and quadrant fallbacks, used when the store has no color for a position
	Rings     [4]string `yaml:"rings,flow"`
	Quadrants [4]string `yaml:"quadrants,flow"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// Presets lists the names GetPreset understands.
func Presets() []string {
	return []string{"default", "monochrome", "wave"}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Background, preset.Background)
	fill(&c.PanelBackground, preset.PanelBackground)
	fill(&c.Create, preset.Create)
	fill(&c.Edit, preset.Edit)
	fill(&c.PanelBorder, preset.PanelBorder)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.Grid, preset.Grid)
	for i := range c.Rings {
		fill(&c.Rings[i], preset.Rings[i])
	}
	for i := range c.Quadrants {
		fill(&c.Quadrants[i], preset.Quadrants[i])
	}
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
	fill(&c.StatusBarBg, preset.StatusBarBg)
	fill(&c.StatusBarText, preset.StatusBarText)
}

// MergeFrom copies every non-empty value of other over c. The preset is
// replaced too, so a theme file may switch base palettes.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Background, other.Background)
	merge(&c.PanelBackground, other.PanelBackground)
	merge(&c.Create, other.Create)
	merge(&c.Edit, other.Edit)
	merge(&c.PanelBorder, other.PanelBorder)
	merge(&c.SelectedBorder, other.SelectedBorder)
	merge(&c.SelectedBg, other.SelectedBg)
	merge(&c.Grid, other.Grid)
	for i := range c.Rings {
		merge(&c.Rings[i], other.Rings[i])
	}
	for i := range c.Quadrants {
		merge(&c.Quadrants[i], other.Quadrants[i])
	}
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.WarningFg, other.WarningFg)
	merge(&c.WarningBg, other.WarningBg)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)
	merge(&c.StatusBarBg, other.StatusBarBg)
	merge(&c.StatusBarText, other.StatusBarText)
}

// RingColor returns the scheme color for a ring position, or Subtle when the
// position is out of range.
func (c *ColorScheme) RingColor(i int) string {
	if i < 0 || i >= len(c.Rings) {
		return c.Subtle
	}
	return c.Rings[i]
}

// QuadrantColor returns the scheme color for a quadrant position.
func (c *ColorScheme) QuadrantColor(i int) string {
	if i < 0 || i >= len(c.Quadrants) {
		return c.Subtle
	}
	return c.Quadrants[i]
}
