package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/techradar/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	Left  string // e.g. visible count and active filters
	Right string // e.g. animation state and help hint
}

// RenderStatusBar renders a full-width bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg))

	left := " " + props.Left
	right := props.Right + " "

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return style.Render(left + strings.Repeat(" ", gapWidth) + right)
}
