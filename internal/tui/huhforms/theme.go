package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/techradar/internal/config"
)

// CreateRadarTheme styles huh forms with the radar palette. Picked options
// take the Adopt ring color so choosing a ring or project reads the same as
// the markers on the canvas.
func CreateRadarTheme(scheme config.ColorScheme) huh.Theme {
	c := lipgloss.Color

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		f := &t.Focused

		f.Base = f.Base.BorderForeground(c(scheme.Accent))
		f.Title = f.Title.Foreground(c(scheme.Title)).Bold(true)
		f.Description = f.Description.Foreground(c(scheme.Subtle))
		f.ErrorIndicator = f.ErrorIndicator.Foreground(c(scheme.ErrorFg))
		f.ErrorMessage = f.ErrorMessage.Foreground(c(scheme.ErrorFg))

		picked := c(scheme.Rings[0])
		f.SelectSelector = f.SelectSelector.Foreground(c(scheme.Accent))
		f.SelectedOption = f.SelectedOption.Foreground(picked)
		f.SelectedPrefix = f.SelectedPrefix.Foreground(picked)
		f.UnselectedOption = f.UnselectedOption.Foreground(c(scheme.Normal))
		f.UnselectedPrefix = f.UnselectedPrefix.Foreground(c(scheme.Grid))

		f.FocusedButton = f.FocusedButton.Foreground(c(scheme.Background)).Background(c(scheme.Accent)).Bold(true)
		f.BlurredButton = f.BlurredButton.Foreground(c(scheme.Normal)).Background(c(scheme.SelectedBg))

		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(c(scheme.Accent))
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(c(scheme.Subtle))
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(c(scheme.Accent))

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(c(scheme.Subtle)).Bold(false)

		return t
	})
}
