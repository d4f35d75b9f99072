package app

import (
	"log/slog"

	"github.com/thenoetrevino/techradar/internal/config"
	"github.com/thenoetrevino/techradar/internal/dataset"
	"github.com/thenoetrevino/techradar/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	config      *config.Config
	dataFile    string
	dataset     *dataset.Dataset
}

// WithEventPublisher sets the event publisher for the application
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithConfig sets the loaded user configuration
func WithConfig(c *config.Config) Option {
	return func(cfg *appConfig) {
		cfg.config = c
	}
}

// WithDataFile seeds the store from a dataset YAML file, overriding data_file
func WithDataFile(path string) Option {
	return func(cfg *appConfig) {
		cfg.dataFile = path
	}
}

// WithDataset seeds the store from an in-memory dataset
func WithDataset(ds *dataset.Dataset) Option {
	return func(cfg *appConfig) {
		cfg.dataset = ds
	}
}

func (cfg *appConfig) resolveDataset() (*dataset.Dataset, string, error) {
	if cfg.dataset != nil {
		return cfg.dataset, "dataset", nil
	}

	path := cfg.dataFile
	if path == "" {
		path = cfg.config.DataFile
	}
	if path != "" {
		ds, err := dataset.Load(path)
		return ds, path, err
	}

	ds, err := dataset.Default()
	return ds, "built-in sample", err
}
