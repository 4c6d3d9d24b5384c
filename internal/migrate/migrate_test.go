// ABOUTME: Tests for the flat-to-relational migration.
// ABOUTME: Covers the marker, reruns, interrupted runs and older key names.
package migrate

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/harperreed/lift/internal/errs"
	"github.com/harperreed/lift/internal/kv"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/persist"
	"github.com/harperreed/lift/internal/storage"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (kv.Store, *persist.Relational) {
	t.Helper()
	store, err := kv.OpenBadgerInMemory(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	db, err := storage.Open(filepath.Join(t.TempDir(), storage.DBFileName))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return store, persist.NewRelational(db)
}

func workout(id string, ts int64) models.Workout {
	return models.Workout{
		ID: id, Date: "d", Timestamp: ts, Name: "W " + id, Volume: "500 kg",
		Exercises: []models.WorkoutExercise{{
			ID: id + "-e", ExerciseID: "squat", Name: "Squat",
			Sets: []models.WorkoutSet{
				{ID: id + "-s1", Reps: "5", Weight: "100", Completed: true},
				{ID: id + "-s2", Reps: "5", Weight: "100", Completed: false},
			},
		}},
	}
}

func routine(id string) models.Routine {
	return models.Routine{
		ID: id, Name: "R " + id, CreatedAt: 1,
		Exercises: []models.RoutineExercise{
			{ExerciseID: "squat", Name: "Squat", TargetSets: "3", TargetReps: "5"},
			{ExerciseID: "deadlift", Name: "Deadlift", TargetSets: "1", TargetReps: "5"},
		},
	}
}

func seed(t *testing.T, store kv.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, kv.SetJSON(ctx, store, kv.KeyWorkouts, []models.Workout{workout("w2", 200), workout("w1", 100)}))
	require.NoError(t, kv.SetJSON(ctx, store, kv.KeyRoutines, []models.Routine{routine("r1")}))
	require.NoError(t, kv.SetJSON(ctx, store, kv.KeyProgress, []models.ProgressEntry{
		{ID: "p1", Date: "d", Timestamp: 5, Weight: "80", Measurements: map[string]models.NumericString{"waist": "85"}},
	}))
	require.NoError(t, kv.SetJSON(ctx, store, kv.KeyProfile, models.UserProfile{Age: "30", Height: "180", InitialWeight: "85"}))
}

func TestRunCopiesAndSetsMarker(t *testing.T) {
	ctx := context.Background()
	store, rel := setup(t)
	seed(t, store)
	m := New(store, rel, nil)

	state, err := m.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, NotMigrated, state)

	summary, err := m.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, &persist.CopySummary{Workouts: 2, Routines: 1, ProgressEntries: 1, Profile: true}, summary)

	raw, err := store.Get(ctx, kv.KeyMigrated)
	require.NoError(t, err)
	assert.Equal(t, MarkerValue, string(raw))

	state, err = m.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, Migrated, state)

	ws, err := rel.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, ws, 2)
	assert.Equal(t, workout("w2", 200), ws[0])
}

func TestRunTwiceKeepsCounts(t *testing.T) {
	ctx := context.Background()
	store, rel := setup(t)
	seed(t, store)
	m := New(store, rel, nil)

	_, err := m.Run(ctx)
	require.NoError(t, err)
	before, err := rel.Counts(ctx)
	require.NoError(t, err)

	summary, err := m.Run(ctx)
	require.NoError(t, err)
	assert.Nil(t, summary)

	after, err := rel.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// flakyBackend fails routine writes until healed.
type flakyBackend struct {
	persist.Backend
	broken bool
}

func (f *flakyBackend) UpsertRoutine(ctx context.Context, r models.Routine) error {
	if f.broken {
		return errors.New("disk full")
	}
	return f.Backend.UpsertRoutine(ctx, r)
}

func TestInterruptedRunRetries(t *testing.T) {
	ctx := context.Background()
	store, rel := setup(t)
	seed(t, store)
	target := &flakyBackend{Backend: rel, broken: true}
	m := New(store, target, nil)

	summary, err := m.Run(ctx)
	require.Error(t, err)
	var me *errs.MigrationError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, persist.StageRoutines, me.Stage)
	assert.Equal(t, 2, summary.Workouts)

	state, err := m.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, NotMigrated, state)

	target.broken = false
	_, err = m.Run(ctx)
	require.NoError(t, err)

	counts, err := rel.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[storage.TableWorkouts])
	assert.Equal(t, 2, counts[storage.TableExercises])
	assert.Equal(t, 4, counts[storage.TableSets])
	assert.Equal(t, 1, counts[storage.TableRoutines])
	assert.Equal(t, 2, counts[storage.TableRoutineExercises])
	assert.Equal(t, 1, counts[storage.TableProgress])
	assert.Equal(t, 1, counts[storage.TableUsers])
}

func TestMarkerPresentSkipsCopy(t *testing.T) {
	ctx := context.Background()
	store, rel := setup(t)
	seed(t, store)
	require.NoError(t, store.Set(ctx, kv.KeyMigrated, []byte(MarkerValue)))

	summary, err := New(store, rel, nil).Run(ctx)
	require.NoError(t, err)
	assert.Nil(t, summary)

	ws, err := rel.ListWorkouts(ctx)
	require.NoError(t, err)
	assert.Empty(t, ws)
}

func TestAnyMarkerValueSkipsCopy(t *testing.T) {
	for _, marker := range []string{"1", `"true"`, "false", ""} {
		t.Run(marker, func(t *testing.T) {
			ctx := context.Background()
			store, rel := setup(t)
			seed(t, store)
			m := New(store, rel, nil)

			_, err := m.Run(ctx)
			require.NoError(t, err)
			before, err := rel.Counts(ctx)
			require.NoError(t, err)

			// Delete in the relational store, then leave a marker some other
			// client wrote.
			require.NoError(t, rel.DeleteRoutine(ctx, "r1"))
			require.NoError(t, store.Set(ctx, kv.KeyMigrated, []byte(marker)))

			state, err := m.State(ctx)
			require.NoError(t, err)
			assert.Equal(t, Migrated, state)

			summary, err := m.Run(ctx)
			require.NoError(t, err)
			assert.Nil(t, summary)

			after, err := rel.Counts(ctx)
			require.NoError(t, err)
			assert.Equal(t, before[storage.TableWorkouts], after[storage.TableWorkouts])
			assert.Equal(t, before[storage.TableProgress], after[storage.TableProgress])
			assert.Equal(t, 0, after[storage.TableRoutines])
			assert.Equal(t, 0, after[storage.TableRoutineExercises])
		})
	}
}

func TestRunReadsOlderKeys(t *testing.T) {
	ctx := context.Background()
	store, rel := setup(t)
	require.NoError(t, kv.SetJSON(ctx, store, kv.KeyProgressEntries, []models.ProgressEntry{
		{ID: "old", Date: "d", Timestamp: 1, Weight: "90"},
		{ID: "both", Date: "d", Timestamp: 2, Weight: "89"},
	}))
	require.NoError(t, kv.SetJSON(ctx, store, kv.KeyProgress, []models.ProgressEntry{
		{ID: "both", Date: "d", Timestamp: 2, Weight: "88"},
	}))
	require.NoError(t, kv.SetJSON(ctx, store, kv.KeyUserProfile, models.UserProfile{Age: "40", Height: "170", InitialWeight: "70"}))

	summary, err := New(store, rel, nil).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.ProgressEntries)
	assert.True(t, summary.Profile)

	es, err := rel.ListProgress(ctx)
	require.NoError(t, err)
	require.Len(t, es, 2)
	assert.Equal(t, "both", es[0].ID)
	assert.Equal(t, models.NumericString("88"), es[0].Weight)

	p, err := rel.GetProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, models.NumericString("40"), p.Age)
}

func TestRunKeepsProgressPhotos(t *testing.T) {
	ctx := context.Background()
	store, rel := setup(t)
	raw := `[{"id":"p1","date":"d","timestamp":1,"weight":80,"photos":["a.jpg"],"note":"ok"}]`
	require.NoError(t, store.Set(ctx, kv.KeyProgressEntries, []byte(raw)))
	m := New(store, rel, nil)

	summary, err := m.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ProgressEntries)

	state, err := m.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, Migrated, state)

	es, err := rel.ListProgress(ctx)
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.JSONEq(t, `["a.jpg"]`, string(es[0].Extra["photos"]))
	assert.Equal(t, models.NumericString("ok"), es[0].Measurements["note"])
}

func TestRunOnStartupSwallowsFailure(t *testing.T) {
	ctx := context.Background()
	store, rel := setup(t)
	seed(t, store)
	logger, hook := test.NewNullLogger()

	m := New(store, &flakyBackend{Backend: rel, broken: true}, logger)
	assert.Nil(t, m.RunOnStartup(ctx))

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "migration failed, will retry on next start", hook.LastEntry().Message)
	assert.Equal(t, "migrate", hook.LastEntry().Data["component"])
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "nothing to migrate", Summary(nil))
	assert.Equal(t, "1 workouts, 2 routines, 3 progress entries, profile",
		Summary(&persist.CopySummary{Workouts: 1, Routines: 2, ProgressEntries: 3, Profile: true}))
}
