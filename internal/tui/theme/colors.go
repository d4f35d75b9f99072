package theme

import "github.com/thenoetrevino/techradar/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight       string
	Background      string
	PanelBackground string
	PanelBorder     string
	SelectedBorder  string
	SelectedBg      string
	Grid            string
	Title           string
	Subtle          string
	Normal          string
	Create          string
	Edit            string
	InfoFg          string
	InfoBg          string
	WarningFg       string
	WarningBg       string
	ErrorFg         string
	ErrorBg         string
	StatusBarBg     string
	StatusBarText   string

	// Per-position fallbacks when a ring or quadrant has no stored color
	Rings     [4]string
	Quadrants [4]string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Background = colors.Background
	PanelBackground = colors.PanelBackground
	PanelBorder = colors.PanelBorder
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	Grid = colors.Grid
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Edit = colors.Edit
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
	Rings = colors.Rings
	Quadrants = colors.Quadrants
}

// RingColor returns the stored color when set, else the scheme's color for
// position i.
func RingColor(stored *string, i int) string {
	return pick(stored, Rings, i)
}

// QuadrantColor returns the stored color when set, else the scheme's color
// for position i.
func QuadrantColor(stored *string, i int) string {
	return pick(stored, Quadrants, i)
}

func pick(stored *string, palette [4]string, i int) string {
	if stored != nil && *stored != "" {
		return *stored
	}
	if i >= 0 && i < len(palette) {
		return palette[i]
	}
	return Normal
}
