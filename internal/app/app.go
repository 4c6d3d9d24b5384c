// ABOUTME: Composition root: opens stores, picks the backend, migrates, builds services and state.
// ABOUTME: Falls back to the flat backend when the relational store cannot be opened.
package app

import (
	"context"
	"fmt"

	"github.com/harperreed/lift/internal/charm"
	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/kv"
	"github.com/harperreed/lift/internal/migrate"
	"github.com/harperreed/lift/internal/persist"
	"github.com/harperreed/lift/internal/service"
	"github.com/harperreed/lift/internal/state"
	"github.com/harperreed/lift/internal/storage"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// App holds everything a front end needs.
type App struct {
	Config *config.Config
	Log    logrus.FieldLogger

	Store   kv.Store
	DB      *storage.DB
	Backend persist.Backend

	// Migrator is nil when the flat backend is active.
	Migrator *migrate.Migrator

	Workouts *service.WorkoutService
	Routines *service.RoutineService
	Progress *service.ProgressService
	Themes   *service.ThemeService

	WorkoutState  *state.WorkoutContainer
	ProgressState *state.ProgressContainer
	ThemeState    *state.ThemeContainer
}

// Open wires the application from cfg. With the sqlite backend it also runs
// the one-time migration; a failed migration is logged and retried next
// time. Container load failures are logged, not returned.
func Open(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*App, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{Config: cfg, Log: logger}

	store, err := openFlat(cfg, logger)
	if err != nil {
		return nil, err
	}
	a.Store = store
	flat := persist.NewFlat(store)
	a.Backend = flat

	if cfg.GetBackend() == config.BackendSQLite {
		db, err := storage.Open(cfg.DBPath())
		if err != nil {
			logger.WithError(err).WithField("path", cfg.DBPath()).
				Warn("relational store unavailable, using flat backend")
		} else {
			a.DB = db
			a.Backend = persist.NewRelational(db)
			a.Migrator = migrate.NewWithSource(store, flat, a.Backend, logger)
			a.Migrator.RunOnStartup(ctx)
		}
	}
	logger.WithField("backend", a.Backend.Name()).Debug("backend selected")

	a.Workouts = service.NewWorkoutService(a.Backend, logger)
	a.Routines = service.NewRoutineService(a.Backend, logger)
	a.Progress = service.NewProgressService(a.Backend, logger)
	a.Themes = service.NewThemeService(store, logger)

	a.WorkoutState = state.NewWorkoutContainer(a.Workouts, a.Routines, logger)
	a.ProgressState = state.NewProgressContainer(a.Progress, logger)
	a.ThemeState = state.NewThemeContainer(a.Themes)

	a.Load(ctx)
	return a, nil
}

// Load refreshes every container. Failures are logged.
func (a *App) Load(ctx context.Context) {
	for name, load := range map[string]func(context.Context) error{
		"workouts": a.WorkoutState.Load,
		"progress": a.ProgressState.Load,
		"theme":    a.ThemeState.Load,
	} {
		if err := load(ctx); err != nil {
			a.Log.WithError(err).WithField("container", name).Error("load failed")
		}
	}
}

// Close releases the relational and flat stores.
func (a *App) Close() error {
	var err error
	if a.DB != nil {
		err = multierr.Append(err, a.DB.Close())
	}
	if a.Store != nil {
		err = multierr.Append(err, a.Store.Close())
	}
	return err
}

func openFlat(cfg *config.Config, logger logrus.FieldLogger) (kv.Store, error) {
	switch cfg.GetFlatStore() {
	case config.FlatStoreCharm:
		s, err := charm.Open(charm.DefaultDBName, logger)
		if err != nil {
			return nil, fmt.Errorf("open charm store: %w", err)
		}
		return s, nil
	default:
		s, err := kv.OpenBadger(cfg.FlatDir(), logger)
		if err != nil {
			return nil, fmt.Errorf("open flat store: %w", err)
		}
		return s, nil
	}
}
