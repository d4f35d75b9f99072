package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUIState_ToggleView(t *testing.T) {
	t.Parallel()
	s := NewUIState()
	assert.Equal(t, RadarView, s.View())
	s.ToggleView()
	assert.Equal(t, ListView, s.View())
	s.ToggleView()
	assert.Equal(t, RadarView, s.View())
}

// TestUIState_SidebarWidth ensures the sidebar stays readable on narrow and wide terminals.
func TestUIState_SidebarWidth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		width int
		want  int
	}{
		{0, 28},
		{60, 28},
		{120, 40},
		{300, 48},
	}
	for _, tt := range tests {
		s := NewUIState()
		s.SetSize(tt.width, 40)
		assert.Equal(t, tt.want, s.SidebarWidth(), "width %d", tt.width)
		assert.Equal(t, max(tt.width-tt.want, 0), s.MainWidth())
	}
}

func TestNotificationState_KeepsNewest(t *testing.T) {
	t.Parallel()
	s := NewNotificationState()
	for _, msg := range []string{"a", "b", "c", "d"} {
		s.Add(LevelInfo, msg)
	}
	all := s.All()
	assert.Len(t, all, 3)
	assert.Equal(t, "b", all[0].Message)
	assert.Equal(t, "d", all[2].Message)

	s.Clear()
	assert.False(t, s.HasAny())
}

func TestNotificationState_LayersNeedWindow(t *testing.T) {
	t.Parallel()
	s := NewNotificationState()
	s.Add(LevelError, "boom")
	render := func(n Notification) string { return n.Message }

	assert.Empty(t, s.GetLayers(render))

	s.SetWindowSize(80, 24)
	assert.Len(t, s.GetLayers(render), 1)
}

func TestTechnologyFormValues_TagList(t *testing.T) {
	t.Parallel()
	v := TechnologyFormValues{Tags: " go, ,cli ,"}
	assert.Equal(t, []string{"go", "cli"}, v.TagList())

	empty := TechnologyFormValues{}
	assert.Equal(t, []string{}, empty.TagList())
}
