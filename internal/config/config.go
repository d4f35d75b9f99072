package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appDirName = "techradar"

	// ThemeFileEnv names a standalone theme YAML merged over the configured scheme.
	ThemeFileEnv = "TECHRADAR_THEME_FILE"

	DefaultMargin              = 40
	DefaultRotationStepDegrees = 1.0
	DefaultFrameIntervalMS     = 50
	DefaultPageSize            = 7
	DefaultServerAddr          = ":5000"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings  `yaml:"key_mappings"`
	ColorScheme ColorScheme  `yaml:"theme"`
	Radar       RadarConfig  `yaml:"radar"`
	List        ListConfig   `yaml:"list"`
	Server      ServerConfig `yaml:"server"`

	// DataFile is an optional dataset YAML loaded at startup in place of the
	// built-in sample radar.
	DataFile string `yaml:"data_file,omitempty"`
}

// RadarConfig controls layout and animation.
type RadarConfig struct {
	Margin              float64 `yaml:"margin"`
	Animate             *bool   `yaml:"animate,omitempty"`
	RotationStepDegrees float64 `yaml:"rotation_step_degrees"`
	FrameIntervalMS     int     `yaml:"frame_interval_ms"`

	// Seed fixes the jitter source. Nil means a fresh seed per layout.
	Seed *uint64 `yaml:"seed,omitempty"`
}

// AnimationEnabled reports whether the radar should rotate on start.
func (r RadarConfig) AnimationEnabled() bool {
	return r.Animate == nil || *r.Animate
}

// FrameInterval returns the animation tick as a duration.
func (r RadarConfig) FrameInterval() time.Duration {
	return time.Duration(r.FrameIntervalMS) * time.Millisecond
}

// ListConfig controls the paginated technology list.
type ListConfig struct {
	PageSize int `yaml:"page_size"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns a config with every value at its default.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TECHRADAR_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("theme file unreadable", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("theme file invalid", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return loadDefaults(), nil
	}

	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path. A missing file yields defaults.
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return loadDefaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", configPath, err)
	}

	loadThemeFile(&config)
	config.applyDefaults()

	return &config, nil
}

func loadDefaults() *Config {
	config := &Config{}
	loadThemeFile(config)
	config.applyDefaults()
	return config
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the config file location, whether or not it exists.
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appDirName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appDirName, "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if c.Radar.Margin <= 0 {
		c.Radar.Margin = DefaultMargin
	}
	if c.Radar.RotationStepDegrees == 0 {
		c.Radar.RotationStepDegrees = DefaultRotationStepDegrees
	}
	if c.Radar.FrameIntervalMS <= 0 {
		c.Radar.FrameIntervalMS = DefaultFrameIntervalMS
	}
	if c.List.PageSize <= 0 {
		c.List.PageSize = DefaultPageSize
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
}
