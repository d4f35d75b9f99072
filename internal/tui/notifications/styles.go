package notifications

import (
	"github.com/thenoetrevino/techradar/internal/tui/state"
	"github.com/thenoetrevino/techradar/internal/tui/theme"
)

type style struct {
	icon       string
	title      string
	foreground string
	background string
}

func styleFor(level state.NotificationLevel) style {
	switch level {
	case state.LevelWarning:
		return style{icon: "⚠", title: "Warning", foreground: theme.WarningFg, background: theme.WarningBg}
	case state.LevelError:
		return style{icon: "✕", title: "Error", foreground: theme.ErrorFg, background: theme.ErrorBg}
	default:
		return style{icon: "●", title: "Info", foreground: theme.InfoFg, background: theme.InfoBg}
	}
}
