// ABOUTME: In-memory state containers over the service layer.
// ABOUTME: Caches change only after the service confirms the write; readers get copies.
package state

import (
	"cmp"
	"context"
	"slices"

	"github.com/harperreed/lift/internal/models"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=state_test

// Workouts is the workout service as the containers see it.
type Workouts interface {
	GetAll(ctx context.Context) ([]models.Workout, error)
	Save(ctx context.Context, w models.Workout) (*models.Workout, error)
	Delete(ctx context.Context, id string) error
}

// Routines is the routine service as the containers see it.
type Routines interface {
	GetAll(ctx context.Context) ([]models.Routine, error)
	Save(ctx context.Context, r models.Routine) (*models.Routine, error)
	Update(ctx context.Context, id string, r models.Routine) (*models.Routine, error)
	Delete(ctx context.Context, id string) error
}

// Progress is the progress service as the containers see it.
type Progress interface {
	GetEntries(ctx context.Context) ([]models.ProgressEntry, error)
	AddEntry(ctx context.Context, e models.ProgressEntry) (*models.ProgressEntry, error)
	RemoveEntry(ctx context.Context, id string) error
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, p models.UserProfile) (*models.UserProfile, error)
}

// Themes is the theme service as the containers see it.
type Themes interface {
	Get(ctx context.Context) (models.ThemeKey, error)
	Set(ctx context.Context, key models.ThemeKey) error
}

// upsert replaces the item with the same id or prepends it.
func upsert[T any](list []T, item T, id func(T) string) []T {
	for i := range list {
		if id(list[i]) == id(item) {
			out := slices.Clone(list)
			out[i] = item
			return out
		}
	}
	return append([]T{item}, list...)
}

func remove[T any](list []T, id string, idOf func(T) string) []T {
	return slices.DeleteFunc(slices.Clone(list), func(x T) bool { return idOf(x) == id })
}

func newestFirst[T any](list []T, key func(T) int64) {
	slices.SortStableFunc(list, func(a, b T) int { return cmp.Compare(key(b), key(a)) })
}

func cloneAll[T any](list []T, clone func(T) T) []T {
	out := make([]T, len(list))
	for i, x := range list {
		out[i] = clone(x)
	}
	return out
}
