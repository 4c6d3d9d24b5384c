// ABOUTME: Relational backend over the SQLite repositories.
// ABOUTME: Maps the Backend contract onto WorkoutRepository and ProgressRepository.
package persist

import (
	"context"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
)

// Relational is a Backend on the SQLite store.
type Relational struct {
	workouts *storage.WorkoutRepository
	progress *storage.ProgressRepository
}

var _ Backend = (*Relational)(nil)

// NewRelational returns a relational backend over db.
func NewRelational(db *storage.DB) *Relational {
	return &Relational{
		workouts: storage.NewWorkoutRepository(db),
		progress: storage.NewProgressRepository(db),
	}
}

// Counts returns row counts per table.
func (r *Relational) Counts(ctx context.Context) (map[string]int, error) {
	return r.workouts.Counts(ctx)
}

func (r *Relational) Name() string { return NameRelational }

func (r *Relational) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	return r.workouts.ListWorkouts(ctx)
}

func (r *Relational) GetWorkout(ctx context.Context, id string) (*models.Workout, error) {
	return r.workouts.GetWorkout(ctx, id)
}

func (r *Relational) UpsertWorkout(ctx context.Context, w models.Workout) error {
	return r.workouts.SaveWorkout(ctx, w)
}

func (r *Relational) DeleteWorkout(ctx context.Context, id string) error {
	return r.workouts.DeleteWorkout(ctx, id)
}

func (r *Relational) ListRoutines(ctx context.Context) ([]models.Routine, error) {
	return r.workouts.ListRoutines(ctx)
}

func (r *Relational) GetRoutine(ctx context.Context, id string) (*models.Routine, error) {
	return r.workouts.GetRoutine(ctx, id)
}

func (r *Relational) UpsertRoutine(ctx context.Context, rt models.Routine) error {
	return r.workouts.SaveRoutine(ctx, rt)
}

func (r *Relational) DeleteRoutine(ctx context.Context, id string) error {
	return r.workouts.DeleteRoutine(ctx, id)
}

func (r *Relational) ListProgress(ctx context.Context) ([]models.ProgressEntry, error) {
	return r.progress.ListEntries(ctx)
}

func (r *Relational) UpsertProgress(ctx context.Context, e models.ProgressEntry) error {
	return r.progress.SaveEntry(ctx, e)
}

func (r *Relational) DeleteProgress(ctx context.Context, id string) error {
	return r.progress.DeleteEntry(ctx, id)
}

func (r *Relational) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	return r.progress.GetUserProfile(ctx)
}

func (r *Relational) SaveProfile(ctx context.Context, p models.UserProfile) error {
	return r.progress.SaveUserProfile(ctx, p)
}
