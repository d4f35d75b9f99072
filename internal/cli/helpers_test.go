package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/techradar/internal/models"
)

// ============================================================================
// Color Validation Tests
// ============================================================================

func TestValidateColorHex_Valid(t *testing.T) {
	tests := []string{
		"#FF0000", // Red
		"#10b981", // Lowercase
		"#AbCdEf", // Mixed case
	}

	for _, color := range tests {
		t.Run(color, func(t *testing.T) {
			assert.NoError(t, ValidateColorHex(color))
		})
	}
}

func TestValidateColorHex_Invalid(t *testing.T) {
	tests := []string{"FF0000", "#FFF", "#GGGGGG", "#FF00001", "red", ""}

	for _, color := range tests {
		t.Run(color, func(t *testing.T) {
			assert.Error(t, ValidateColorHex(color))
		})
	}
}

// ============================================================================
// Argument parsing
// ============================================================================

func idCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "show"}
	cmd.Flags().Int("id", 0, "")
	return cmd
}

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		flag    string
		want    int
		wantErr bool
	}{
		{name: "positional", args: []string{"12"}, want: 12},
		{name: "flag", flag: "5", want: 5},
		{name: "positional wins", args: []string{"2"}, flag: "9", want: 2},
		{name: "not a number", args: []string{"abc"}, wantErr: true},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "missing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmd := idCommand()
			if tt.flag != "" {
				require.NoError(t, cmd.Flags().Set("id", tt.flag))
			}

			got, err := ParseID(cmd, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePosition(t *testing.T) {
	t.Parallel()
	names := []string{"Adopt", "Trial", "Assess", "Hold"}

	got, err := ResolvePosition("assess", names)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = ResolvePosition("3", names)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	// Indices pass through unchecked; range checks belong to the services
	got, err = ResolvePosition("7", names)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	_, err = ResolvePosition("Retire", names)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestNameAt(t *testing.T) {
	t.Parallel()
	names := QuadrantNames([]*models.Quadrant{{Name: "Techniques"}, {Name: "Tools"}})

	assert.Equal(t, "Tools", NameAt(names, 1))
	assert.Equal(t, "#5", NameAt(names, 5))
}
