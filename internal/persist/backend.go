// ABOUTME: PersistenceBackend contract shared by the flat and relational stores.
// ABOUTME: Upsert is insert-or-replace by id and safe to repeat.
package persist

import (
	"cmp"
	"context"
	"slices"

	"github.com/harperreed/lift/internal/models"
)

// Backend names.
const (
	NameFlat       = "flat"
	NameRelational = "sqlite"
)

// Backend stores every entity family. Lists are returned newest first with
// full trees; Upsert* replaces an existing id and inserts otherwise, so
// repeating a call leaves exactly one copy. Deleting an unknown id is a
// no-op. Get* returns errs.ErrNotFound for unknown ids, except GetProfile
// which returns nil when no profile was saved.
type Backend interface {
	Name() string

	ListWorkouts(ctx context.Context) ([]models.Workout, error)
	GetWorkout(ctx context.Context, id string) (*models.Workout, error)
	UpsertWorkout(ctx context.Context, w models.Workout) error
	DeleteWorkout(ctx context.Context, id string) error

	ListRoutines(ctx context.Context) ([]models.Routine, error)
	GetRoutine(ctx context.Context, id string) (*models.Routine, error)
	UpsertRoutine(ctx context.Context, r models.Routine) error
	DeleteRoutine(ctx context.Context, id string) error

	ListProgress(ctx context.Context) ([]models.ProgressEntry, error)
	UpsertProgress(ctx context.Context, e models.ProgressEntry) error
	DeleteProgress(ctx context.Context, id string) error

	GetProfile(ctx context.Context) (*models.UserProfile, error)
	SaveProfile(ctx context.Context, p models.UserProfile) error
}

func sortWorkouts(ws []models.Workout) {
	slices.SortStableFunc(ws, func(a, b models.Workout) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})
}

func sortRoutines(rs []models.Routine) {
	slices.SortStableFunc(rs, func(a, b models.Routine) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
}

func sortProgress(es []models.ProgressEntry) {
	slices.SortStableFunc(es, func(a, b models.ProgressEntry) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})
}

// upsertByID replaces the item with the same id in place, or prepends it.
func upsertByID[T any](items []T, item T, id func(T) string) []T {
	key := id(item)
	for i := range items {
		if id(items[i]) == key {
			items[i] = item
			return items
		}
	}
	return append([]T{item}, items...)
}

// removeByID drops every item with the given id.
func removeByID[T any](items []T, key string, id func(T) string) []T {
	return slices.DeleteFunc(items, func(it T) bool { return id(it) == key })
}

func workoutID(w models.Workout) string        { return w.ID }
func routineID(r models.Routine) string        { return r.ID }
func progressID(e models.ProgressEntry) string { return e.ID }
