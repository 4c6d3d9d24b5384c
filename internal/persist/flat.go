// ABOUTME: Flat backend: one JSON document per collection in a key-value store.
// ABOUTME: Reads also merge the older progress/profile keys; writes fold them into the current ones.
package persist

import (
	"context"
	"slices"

	"github.com/harperreed/lift/internal/errs"
	"github.com/harperreed/lift/internal/kv"
	"github.com/harperreed/lift/internal/models"
)

// Flat is a Backend over a kv.Store.
type Flat struct {
	store kv.Store
}

var _ Backend = (*Flat)(nil)

// NewFlat returns a flat backend over store.
func NewFlat(store kv.Store) *Flat {
	return &Flat{store: store}
}

// Store returns the underlying key-value store.
func (f *Flat) Store() kv.Store { return f.store }

func (f *Flat) Name() string { return NameFlat }

func (f *Flat) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	ws, _, err := kv.GetJSON[[]models.Workout](ctx, f.store, kv.KeyWorkouts)
	if err != nil {
		return nil, errs.Read("list workouts", err)
	}
	if ws == nil {
		ws = []models.Workout{}
	}
	sortWorkouts(ws)
	return ws, nil
}

func (f *Flat) GetWorkout(ctx context.Context, id string) (*models.Workout, error) {
	ws, err := f.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(ws, func(w models.Workout) bool { return w.ID == id })
	if i < 0 {
		return nil, errs.NotFound("workout", id)
	}
	return &ws[i], nil
}

func (f *Flat) UpsertWorkout(ctx context.Context, w models.Workout) error {
	err := kv.Update(ctx, f.store, kv.KeyWorkouts, func(cur []models.Workout, _ bool) ([]models.Workout, error) {
		return upsertByID(cur, w, workoutID), nil
	})
	return errs.Write("save workout "+w.ID, err)
}

func (f *Flat) DeleteWorkout(ctx context.Context, id string) error {
	err := kv.Update(ctx, f.store, kv.KeyWorkouts, func(cur []models.Workout, _ bool) ([]models.Workout, error) {
		return removeByID(cur, id, workoutID), nil
	})
	return errs.Write("delete workout "+id, err)
}

func (f *Flat) ListRoutines(ctx context.Context) ([]models.Routine, error) {
	rs, _, err := kv.GetJSON[[]models.Routine](ctx, f.store, kv.KeyRoutines)
	if err != nil {
		return nil, errs.Read("list routines", err)
	}
	if rs == nil {
		rs = []models.Routine{}
	}
	sortRoutines(rs)
	return rs, nil
}

func (f *Flat) GetRoutine(ctx context.Context, id string) (*models.Routine, error) {
	rs, err := f.ListRoutines(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(rs, func(r models.Routine) bool { return r.ID == id })
	if i < 0 {
		return nil, errs.NotFound("routine", id)
	}
	return &rs[i], nil
}

func (f *Flat) UpsertRoutine(ctx context.Context, r models.Routine) error {
	err := kv.Update(ctx, f.store, kv.KeyRoutines, func(cur []models.Routine, _ bool) ([]models.Routine, error) {
		return upsertByID(cur, r, routineID), nil
	})
	return errs.Write("save routine "+r.ID, err)
}

func (f *Flat) DeleteRoutine(ctx context.Context, id string) error {
	err := kv.Update(ctx, f.store, kv.KeyRoutines, func(cur []models.Routine, _ bool) ([]models.Routine, error) {
		return removeByID(cur, id, routineID), nil
	})
	return errs.Write("delete routine "+id, err)
}

// ListProgress merges the current and the older progress keys. When both
// hold the same id, the current key wins.
func (f *Flat) ListProgress(ctx context.Context) ([]models.ProgressEntry, error) {
	current, _, err := kv.GetJSON[[]models.ProgressEntry](ctx, f.store, kv.KeyProgress)
	if err != nil {
		return nil, errs.Read("list progress entries", err)
	}
	legacy, _, err := kv.GetJSON[[]models.ProgressEntry](ctx, f.store, kv.KeyProgressEntries)
	if err != nil {
		return nil, errs.Read("list progress entries", err)
	}
	entries := mergeProgress(current, legacy)
	sortProgress(entries)
	return entries, nil
}

func (f *Flat) UpsertProgress(ctx context.Context, e models.ProgressEntry) error {
	err := f.updateProgress(ctx, func(cur []models.ProgressEntry) []models.ProgressEntry {
		return upsertByID(cur, e, progressID)
	})
	return errs.Write("save progress entry "+e.ID, err)
}

func (f *Flat) DeleteProgress(ctx context.Context, id string) error {
	err := f.updateProgress(ctx, func(cur []models.ProgressEntry) []models.ProgressEntry {
		return removeByID(cur, id, progressID)
	})
	return errs.Write("delete progress entry "+id, err)
}

// updateProgress folds the older key into the current one, applies fn and
// drops the older key so deleted entries cannot come back from it.
func (f *Flat) updateProgress(ctx context.Context, fn func([]models.ProgressEntry) []models.ProgressEntry) error {
	var hadLegacy bool
	err := kv.Update(ctx, f.store, kv.KeyProgress, func(cur []models.ProgressEntry, _ bool) ([]models.ProgressEntry, error) {
		legacy, found, err := kv.GetJSON[[]models.ProgressEntry](ctx, f.store, kv.KeyProgressEntries)
		if err != nil {
			return nil, err
		}
		hadLegacy = found
		return fn(mergeProgress(cur, legacy)), nil
	})
	if err != nil {
		return err
	}
	if hadLegacy {
		return f.store.Delete(ctx, kv.KeyProgressEntries)
	}
	return nil
}

func mergeProgress(current, legacy []models.ProgressEntry) []models.ProgressEntry {
	out := make([]models.ProgressEntry, 0, len(current)+len(legacy))
	seen := make(map[string]bool, len(current))
	for _, e := range current {
		seen[e.ID] = true
		out = append(out, e)
	}
	for _, e := range legacy {
		if !seen[e.ID] {
			seen[e.ID] = true
			out = append(out, e)
		}
	}
	return out
}

// GetProfile reads the current profile key and falls back to the older one.
func (f *Flat) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	for _, key := range []string{kv.KeyProfile, kv.KeyUserProfile} {
		p, found, err := kv.GetJSON[*models.UserProfile](ctx, f.store, key)
		if err != nil {
			return nil, errs.Read("get profile", err)
		}
		if found && p != nil {
			return p, nil
		}
	}
	return nil, nil
}

func (f *Flat) SaveProfile(ctx context.Context, p models.UserProfile) error {
	if err := kv.SetJSON(ctx, f.store, kv.KeyProfile, p); err != nil {
		return errs.Write("save profile", err)
	}
	if err := f.store.Delete(ctx, kv.KeyUserProfile); err != nil {
		return errs.Write("save profile", err)
	}
	return nil
}
