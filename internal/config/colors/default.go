package colors

// Default returns the default color scheme (purple accent, classic radar rings)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Background:      "#1C1C1C",
		PanelBackground: "#262626",

		Create: "#5FD75F",
		Edit:   "#5F87D7",

		PanelBorder:    "#5F87D7",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",
		Grid:           "#4E4E4E",

		// Adopt, Trial, Assess, Hold
		Rings:     [4]string{"#10B981", "#3B82F6", "#F59E0B", "#EF4444"},
		Quadrants: [4]string{"#3B82F6", "#8B5CF6", "#F97316", "#EC4899"},

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",

		StatusBarBg:   "#874BFD", // Matches accent
		StatusBarText: "#D0D0D0", // Matches normal text
	}
}
