package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/techradar/internal/tui/state"
)

// Render renders a bordered notification banner for the given level
func Render(level state.NotificationLevel, message string) string {
	st := styleFor(level)

	headerText := st.icon + " " + st.title
	width := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Bold(true).
		Width(width).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Width(width).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.background)).
		Background(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderFromState renders a banner from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(n.Level, n.Message)
}
