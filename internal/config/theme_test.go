package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/techradar/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themeContent := []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  rings: ["#111111", "#222222", "#333333", "#444444"]
`)
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme: %v", err)
	}
	t.Setenv(ThemeFileEnv, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.RingColor(3) != "#444444" {
		t.Errorf("Expected hold ring to be #444444, got %s", cfg.ColorScheme.RingColor(3))
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Edit == "" {
		t.Error("Expected edit to have default value")
	}
	if cfg.ColorScheme.QuadrantColor(0) == "" {
		t.Error("Expected quadrant colors to have default values")
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ThemeFileEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ColorScheme.Accent != colors.Default().Accent {
		t.Errorf("accent = %s, want default", cfg.ColorScheme.Accent)
	}
}

func TestPresetSelection(t *testing.T) {
	for _, name := range colors.Presets() {
		t.Run(name, func(t *testing.T) {
			scheme := ColorScheme{Preset: name}
			scheme.ApplyDefaults()

			want := colors.GetPreset(name)
			if scheme.Accent != want.Accent {
				t.Errorf("accent = %s, want %s", scheme.Accent, want.Accent)
			}
			for i := range 4 {
				if scheme.RingColor(i) == "" {
					t.Errorf("ring %d has no color", i)
				}
			}
		})
	}
}

func TestUnknownPresetFallsBackToDefault(t *testing.T) {
	scheme := ColorScheme{Preset: "solarized", Accent: "#ABCDEF"}
	scheme.ApplyDefaults()

	if scheme.Accent != "#ABCDEF" {
		t.Errorf("explicit accent overwritten: %s", scheme.Accent)
	}
	if scheme.Title != colors.Default().Title {
		t.Errorf("title = %s, want default preset title", scheme.Title)
	}
	if scheme.RingColor(7) != scheme.Subtle {
		t.Error("out of range ring should fall back to subtle")
	}
}
