package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/techradar/internal/config"
	"github.com/thenoetrevino/techradar/internal/database"
	"github.com/thenoetrevino/techradar/internal/dataset"
	"github.com/thenoetrevino/techradar/internal/events"
	projectservice "github.com/thenoetrevino/techradar/internal/services/project"
	quadrantservice "github.com/thenoetrevino/techradar/internal/services/quadrant"
	ringservice "github.com/thenoetrevino/techradar/internal/services/ring"
	technologyservice "github.com/thenoetrevino/techradar/internal/services/technology"
)

// App holds all application services and provides dependency injection.
type App struct {
	db          *sql.DB
	repo        database.DataStore
	eventClient events.EventPublisher
	cfg         *config.Config
	logger      *slog.Logger

	TechnologyService technologyservice.Service
	QuadrantService   quadrantservice.Service
	RingService       ringservice.Service
	ProjectService    projectservice.Service
}

// New creates an App around an existing store.
func New(repo database.DataStore, eventClient events.EventPublisher) *App {
	return &App{
		repo:              repo,
		eventClient:       eventClient,
		cfg:               config.Default(),
		logger:            slog.Default(),
		TechnologyService: technologyservice.NewService(repo, eventClient),
		QuadrantService:   quadrantservice.NewService(repo, eventClient),
		RingService:       ringservice.NewService(repo, eventClient),
		ProjectService:    projectservice.NewService(repo, eventClient),
	}
}

// Open creates a fresh in-memory store, seeds it, and wires the services.
// The seed is the dataset passed with WithDataset, else the file named by
// WithDataFile or the config's data_file, else the built-in sample radar.
func Open(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.config == nil {
		cfg.config = config.Default()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.eventClient == nil {
		cfg.eventClient = events.NewBus()
	}

	ds, source, err := cfg.resolveDataset()
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, err
	}
	repo := database.NewRepository(db)

	summary, err := dataset.Import(ctx, repo, ds)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to seed store from %s: %w", source, err)
	}
	cfg.logger.Info("store seeded",
		"source", source,
		"quadrants", summary.Quadrants,
		"rings", summary.Rings,
		"technologies", summary.Technologies,
		"projects", summary.Projects,
		"links", summary.Links)

	a := New(repo, cfg.eventClient)
	a.db = db
	a.cfg = cfg.config
	a.logger = cfg.logger
	return a, nil
}

// Repo returns the underlying store for callers that need raw records,
// such as dataset export.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Events returns the publisher services notify on every write.
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Config returns the configuration the app was opened with.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Close releases the event bus and the database.
func (a *App) Close() error {
	var errs []error
	if a.eventClient != nil {
		if err := a.eventClient.Close(); err != nil && !errors.Is(err, events.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
