// ABOUTME: WorkoutService and RoutineService: validated access to workouts and routines.
// ABOUTME: Every write returns the object as re-read from the active backend.
package service

import (
	"context"
	"strings"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/persist"
	"github.com/harperreed/lift/internal/validate"
	"github.com/sirupsen/logrus"
)

// WorkoutService reads and writes logged workouts.
type WorkoutService struct {
	backend persist.Backend
	log     logrus.FieldLogger
}

// NewWorkoutService returns a service over backend.
func NewWorkoutService(backend persist.Backend, logger logrus.FieldLogger) *WorkoutService {
	return &WorkoutService{backend: backend, log: componentLogger(logger, "workouts", backend)}
}

// GetAll returns every workout, newest first. An empty store gives an
// empty slice.
func (s *WorkoutService) GetAll(ctx context.Context) ([]models.Workout, error) {
	ws, err := s.backend.ListWorkouts(ctx)
	if err != nil {
		s.log.WithError(err).Debug("list workouts failed")
		return nil, err
	}
	return ws, nil
}

// Get returns one workout or errs.ErrNotFound.
func (s *WorkoutService) Get(ctx context.Context, id string) (*models.Workout, error) {
	return s.backend.GetWorkout(ctx, id)
}

// Save validates and stores w. An empty volume is filled from the completed
// sets before validation.
func (s *WorkoutService) Save(ctx context.Context, w models.Workout) (*models.Workout, error) {
	if strings.TrimSpace(w.Volume) == "" {
		w.Volume = models.FormatVolume(w.TotalVolume())
	}
	if err := validate.Workout(w); err != nil {
		s.log.WithError(err).WithField("workout_id", w.ID).Debug("workout rejected")
		return nil, err
	}
	if err := s.backend.UpsertWorkout(ctx, w); err != nil {
		s.log.WithError(err).WithField("workout_id", w.ID).Debug("save workout failed")
		return nil, err
	}
	s.log.WithField("workout_id", w.ID).Debug("workout saved")
	return s.backend.GetWorkout(ctx, w.ID)
}

// Delete removes a workout.
func (s *WorkoutService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteWorkout(ctx, id); err != nil {
		s.log.WithError(err).WithField("workout_id", id).Debug("delete workout failed")
		return err
	}
	return nil
}

// RoutineService reads and writes routines.
type RoutineService struct {
	backend persist.Backend
	log     logrus.FieldLogger
}

// NewRoutineService returns a service over backend.
func NewRoutineService(backend persist.Backend, logger logrus.FieldLogger) *RoutineService {
	return &RoutineService{backend: backend, log: componentLogger(logger, "routines", backend)}
}

// GetAll returns every routine, most recently created first.
func (s *RoutineService) GetAll(ctx context.Context) ([]models.Routine, error) {
	rs, err := s.backend.ListRoutines(ctx)
	if err != nil {
		s.log.WithError(err).Debug("list routines failed")
		return nil, err
	}
	return rs, nil
}

// Get returns one routine or errs.ErrNotFound.
func (s *RoutineService) Get(ctx context.Context, id string) (*models.Routine, error) {
	return s.backend.GetRoutine(ctx, id)
}

// Save validates and inserts or replaces r.
func (s *RoutineService) Save(ctx context.Context, r models.Routine) (*models.Routine, error) {
	if err := validate.Routine(r); err != nil {
		s.log.WithError(err).WithField("routine_id", r.ID).Debug("routine rejected")
		return nil, err
	}
	if err := s.backend.UpsertRoutine(ctx, r); err != nil {
		s.log.WithError(err).WithField("routine_id", r.ID).Debug("save routine failed")
		return nil, err
	}
	return s.backend.GetRoutine(ctx, r.ID)
}

// Update replaces the routine stored under id. The id argument wins over
// r.ID. Updating an unknown id returns errs.ErrNotFound.
func (s *RoutineService) Update(ctx context.Context, id string, r models.Routine) (*models.Routine, error) {
	r.ID = id
	if err := validate.Routine(r); err != nil {
		s.log.WithError(err).WithField("routine_id", id).Debug("routine rejected")
		return nil, err
	}
	if _, err := s.backend.GetRoutine(ctx, id); err != nil {
		return nil, err
	}
	if err := s.backend.UpsertRoutine(ctx, r); err != nil {
		s.log.WithError(err).WithField("routine_id", id).Debug("update routine failed")
		return nil, err
	}
	return s.backend.GetRoutine(ctx, id)
}

// Delete removes a routine and its exercises.
func (s *RoutineService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteRoutine(ctx, id); err != nil {
		s.log.WithError(err).WithField("routine_id", id).Debug("delete routine failed")
		return err
	}
	return nil
}

func componentLogger(logger logrus.FieldLogger, component string, backend persist.Backend) logrus.FieldLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return logger.WithFields(logrus.Fields{
		"component": component,
		"backend":   backend.Name(),
	})
}
