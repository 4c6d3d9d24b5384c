// ABOUTME: WorkoutContainer holds the workout history and routines in memory.
// ABOUTME: Also builds a new session's exercises from a cached routine.
package state

import (
	"context"
	"sync"

	"github.com/harperreed/lift/internal/errs"
	"github.com/harperreed/lift/internal/models"
	"github.com/sirupsen/logrus"
)

// WorkoutContainer caches workouts and routines.
type WorkoutContainer struct {
	workouts Workouts
	routines Routines
	log      logrus.FieldLogger

	mu          sync.RWMutex
	workoutList []models.Workout
	routineList []models.Routine
}

// NewWorkoutContainer returns an empty container. Call Load to fill it.
func NewWorkoutContainer(workouts Workouts, routines Routines, logger logrus.FieldLogger) *WorkoutContainer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &WorkoutContainer{
		workouts:    workouts,
		routines:    routines,
		log:         logger.WithField("component", "workout_state"),
		workoutList: []models.Workout{},
		routineList: []models.Routine{},
	}
}

// Load reads workouts and routines. The cache is left as it was unless both
// reads succeed.
func (c *WorkoutContainer) Load(ctx context.Context) error {
	ws, err := c.workouts.GetAll(ctx)
	if err != nil {
		return err
	}
	rs, err := c.routines.GetAll(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.workoutList = nonNil(ws)
	c.routineList = nonNil(rs)
	c.log.WithFields(logrus.Fields{"workouts": len(ws), "routines": len(rs)}).Debug("loaded")
	return nil
}

// Workouts returns the cached workouts, newest first.
func (c *WorkoutContainer) Workouts() []models.Workout {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.workoutList, models.Workout.Clone)
}

// Routines returns the cached routines, most recently created first.
func (c *WorkoutContainer) Routines() []models.Routine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.routineList, models.Routine.Clone)
}

// Routine returns one cached routine.
func (c *WorkoutContainer) Routine(id string) (models.Routine, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.routineList {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return models.Routine{}, false
}

// AddWorkout saves w and caches the stored form.
func (c *WorkoutContainer) AddWorkout(ctx context.Context, w models.Workout) (models.Workout, error) {
	saved, err := c.workouts.Save(ctx, w)
	if err != nil {
		return models.Workout{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.workoutList = upsert(c.workoutList, saved.Clone(), workoutID)
	newestFirst(c.workoutList, workoutTime)
	return saved.Clone(), nil
}

// DeleteWorkout removes a workout.
func (c *WorkoutContainer) DeleteWorkout(ctx context.Context, id string) error {
	if err := c.workouts.Delete(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.workoutList = remove(c.workoutList, id, workoutID)
	return nil
}

// AddRoutine saves r and caches the stored form.
func (c *WorkoutContainer) AddRoutine(ctx context.Context, r models.Routine) (models.Routine, error) {
	saved, err := c.routines.Save(ctx, r)
	if err != nil {
		return models.Routine{}, err
	}
	c.cacheRoutine(*saved)
	return saved.Clone(), nil
}

// UpdateRoutine replaces the routine stored under id.
func (c *WorkoutContainer) UpdateRoutine(ctx context.Context, id string, r models.Routine) (models.Routine, error) {
	saved, err := c.routines.Update(ctx, id, r)
	if err != nil {
		return models.Routine{}, err
	}
	c.cacheRoutine(*saved)
	return saved.Clone(), nil
}

func (c *WorkoutContainer) cacheRoutine(r models.Routine) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routineList = upsert(c.routineList, r.Clone(), routineID)
	newestFirst(c.routineList, routineTime)
}

// DeleteRoutine removes a routine.
func (c *WorkoutContainer) DeleteRoutine(ctx context.Context, id string) error {
	if err := c.routines.Delete(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.routineList = remove(c.routineList, id, routineID)
	return nil
}

// StartRoutine returns the exercises of a new session built from a cached
// routine, with placeholder sets prefilled from its targets. Nothing is
// saved.
func (c *WorkoutContainer) StartRoutine(id string, newID func() string) ([]models.WorkoutExercise, error) {
	r, ok := c.Routine(id)
	if !ok {
		return nil, errs.NotFound("routine", id)
	}
	return models.SessionFromRoutine(r, newID), nil
}

func workoutID(w models.Workout) string  { return w.ID }
func workoutTime(w models.Workout) int64 { return w.Timestamp }
func routineID(r models.Routine) string  { return r.ID }
func routineTime(r models.Routine) int64 { return r.CreatedAt }

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
