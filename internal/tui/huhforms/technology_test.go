package huhforms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/techradar/internal/config"
	"github.com/thenoetrevino/techradar/internal/models"
	"github.com/thenoetrevino/techradar/internal/tui/state"
)

func TestValidateName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"too short", "G", true},
		{"blank padded", "  a  ", true},
		{"minimum", "Go", false},
		{"maximum", strings.Repeat("x", 50), false},
		{"too long", strings.Repeat("x", 51), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	t.Parallel()
	assert.Error(t, ValidateDescription("too short"))
	assert.Error(t, ValidateDescription("   short    "))
	assert.NoError(t, ValidateDescription("long enough text"))
}

func TestValidateWebsite(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"   ", false},
		{"https://go.dev", false},
		{"http://localhost:5000/x", false},
		{"ftp://example.com", true},
		{"go.dev", true},
		{"https://", true},
	}
	for _, tt := range tests {
		err := ValidateWebsite(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
		} else {
			assert.NoError(t, err, tt.input)
		}
	}
}

func TestCreateForms(t *testing.T) {
	t.Parallel()
	values := &state.TechnologyFormValues{Name: "Go"}
	form := CreateTechnologyForm(values, []string{"A", "B"}, []string{"X"}, true).
		WithTheme(CreateRadarTheme(config.DefaultColorScheme()))
	assert.NotNil(t, form)

	link := CreateLinkForm(&state.LinkFormValues{}, "Go", []*models.Project{{ID: 1, Name: "VW Tech Radar"}})
	assert.NotNil(t, link)
}
