// ABOUTME: One-time copy of flat-store data into the relational backend.
// ABOUTME: Gated by the @db_migrated_v1 marker; a failed run leaves the marker unset so it retries.
package migrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/lift/internal/errs"
	"github.com/harperreed/lift/internal/kv"
	"github.com/harperreed/lift/internal/persist"
	"github.com/sirupsen/logrus"
)

// State reports whether the flat data has been copied.
type State int

const (
	NotMigrated State = iota
	Migrated
)

func (s State) String() string {
	if s == Migrated {
		return "migrated"
	}
	return "not migrated"
}

// MarkerValue is written to kv.KeyMigrated after a successful run.
const MarkerValue = "true"

// StageMarker is the stage reported when the copy succeeded but the marker
// could not be written.
const StageMarker = "marker"

// Migrator copies a flat backend into a relational one.
type Migrator struct {
	store  kv.Store
	source persist.Backend
	target persist.Backend
	log    logrus.FieldLogger
}

// New returns a Migrator reading from the flat store and writing to target.
// The marker lives in the same flat store.
func New(store kv.Store, target persist.Backend, logger logrus.FieldLogger) *Migrator {
	return NewWithSource(store, persist.NewFlat(store), target, logger)
}

// NewWithSource is New with an explicit source backend.
func NewWithSource(store kv.Store, source, target persist.Backend, logger logrus.FieldLogger) *Migrator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Migrator{
		store:  store,
		source: source,
		target: target,
		log:    logger.WithField("component", "migrate"),
	}
}

// State reads the marker. Its presence is all that counts; the value is not
// inspected.
func (m *Migrator) State(ctx context.Context) (State, error) {
	_, err := m.store.Get(ctx, kv.KeyMigrated)
	if errors.Is(err, kv.ErrNotFound) {
		return NotMigrated, nil
	}
	if err != nil {
		return NotMigrated, errs.Read("migration marker", err)
	}
	return Migrated, nil
}

// Run copies everything when the marker is absent and then sets it. With the
// marker present it does nothing and returns a nil summary. Any failure is
// returned as *errs.MigrationError and the marker stays unset.
func (m *Migrator) Run(ctx context.Context) (*persist.CopySummary, error) {
	state, err := m.State(ctx)
	if err != nil {
		return nil, &errs.MigrationError{Stage: StageMarker, Err: err}
	}
	if state == Migrated {
		m.log.Debug("already migrated")
		return nil, nil
	}

	m.log.Info("migrating flat data to relational store")
	summary, err := persist.Copy(ctx, m.source, m.target)
	if err != nil {
		stage := "copy"
		var ce *persist.CopyError
		if errors.As(err, &ce) {
			stage = ce.Stage
		}
		return summary, &errs.MigrationError{Stage: stage, Err: err}
	}

	if err := m.store.Set(ctx, kv.KeyMigrated, []byte(MarkerValue)); err != nil {
		return summary, &errs.MigrationError{Stage: StageMarker, Err: errs.Write("migration marker", err)}
	}

	m.log.WithFields(logrus.Fields{
		"workouts": summary.Workouts,
		"routines": summary.Routines,
		"progress": summary.ProgressEntries,
		"profile":  summary.Profile,
	}).Info("migration complete")
	return summary, nil
}

// RunOnStartup runs the migration and logs a failure instead of returning
// it. The next start tries again.
func (m *Migrator) RunOnStartup(ctx context.Context) *persist.CopySummary {
	summary, err := m.Run(ctx)
	if err != nil {
		m.log.WithError(err).Error("migration failed, will retry on next start")
		return nil
	}
	return summary
}

// Summary formats a copy summary for display.
func Summary(s *persist.CopySummary) string {
	if s == nil {
		return "nothing to migrate"
	}
	profile := "no profile"
	if s.Profile {
		profile = "profile"
	}
	return fmt.Sprintf("%d workouts, %d routines, %d progress entries, %s",
		s.Workouts, s.Routines, s.ProgressEntries, profile)
}
