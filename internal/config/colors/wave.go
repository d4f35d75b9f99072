package colors

// kanagawa wave palette
const (
	sumiInk1     = "#1F1F28"
	sumiInk2     = "#2A2A37"
	sumiInk4     = "#54546D"
	sumiInk6     = "#363646"
	waveBlue1    = "#223249"
	waveAqua2    = "#7AA89F"
	fujiWhite    = "#DCD7BA"
	fujiGray     = "#727169"
	oniViolet    = "#957FB8"
	crystalBlue  = "#7E9CD8"
	springGreen  = "#98BB6C"
	springBlue   = "#7FB4CA"
	carpYellow   = "#E6C384"
	surimiOrange = "#FFA066"
	sakuraPink   = "#D27E99"
	peachRed     = "#FF5D62"
	samuraiRed   = "#E82424"
	roninYellow  = "#FF9E3B"
	dragonBlue   = "#658594"
	winterBlue   = "#252535"
	winterYellow = "#49443C"
	winterRed    = "#43242B"
)

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: oniViolet,

		Background:      sumiInk1,
		PanelBackground: sumiInk2,

		Create: springGreen,
		Edit:   crystalBlue,

		PanelBorder:    sumiInk6,
		SelectedBorder: waveAqua2,
		SelectedBg:     waveBlue1,
		Grid:           sumiInk4,

		Rings:     [4]string{springGreen, crystalBlue, carpYellow, peachRed},
		Quadrants: [4]string{springBlue, oniViolet, surimiOrange, sakuraPink},

		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		InfoFg:    dragonBlue,
		InfoBg:    winterBlue,
		WarningFg: roninYellow,
		WarningBg: winterYellow,
		ErrorFg:   samuraiRed,
		ErrorBg:   winterRed,

		StatusBarBg:   oniViolet,
		StatusBarText: fujiWhite,
	}
}
