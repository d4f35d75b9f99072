package colors

// Monochrome returns a black and white color scheme. Rings are told apart by
// brightness only.
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Background:      "#121212",
		PanelBackground: "#1C1C1C",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",

		PanelBorder:    "#FFFFFF",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",
		Grid:           "#444444",

		Rings:     [4]string{"#FFFFFF", "#D0D0D0", "#A8A8A8", "#808080"},
		Quadrants: [4]string{"#FFFFFF", "#FFFFFF", "#FFFFFF", "#FFFFFF"},

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",

		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#FFFFFF",
	}
}
