package notifications

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/techradar/internal/tui/state"
)

func TestRender_TitlePerLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		level state.NotificationLevel
		title string
	}{
		{state.LevelInfo, "● Info"},
		{state.LevelWarning, "⚠ Warning"},
		{state.LevelError, "✕ Error"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()
			plain := ansi.Strip(RenderFromState(state.Notification{Level: tt.level, Message: "Added Kafka"}))
			assert.Contains(t, plain, tt.title)
			assert.Contains(t, plain, "Added Kafka")
		})
	}
}
