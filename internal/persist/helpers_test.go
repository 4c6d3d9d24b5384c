// ABOUTME: Shared test helpers for backend tests.
// ABOUTME: Builds flat (in-memory badger) and relational (temp SQLite) backends.
package persist

import (
	"path/filepath"
	"testing"

	"github.com/harperreed/lift/internal/kv"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
)

func setupFlat(t *testing.T) (*Flat, kv.Store) {
	t.Helper()
	store, err := kv.OpenBadgerInMemory(nil)
	if err != nil {
		t.Fatalf("failed to open flat store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return NewFlat(store), store
}

func setupRelational(t *testing.T) *Relational {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), storage.DBFileName))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRelational(db)
}

// eachBackend runs fn against a fresh flat and a fresh relational backend.
func eachBackend(t *testing.T, fn func(t *testing.T, b Backend)) {
	t.Run(NameFlat, func(t *testing.T) {
		b, _ := setupFlat(t)
		fn(t, b)
	})
	t.Run(NameRelational, func(t *testing.T) {
		fn(t, setupRelational(t))
	})
}

func testWorkout(id string, ts int64) models.Workout {
	return models.Workout{
		ID:        id,
		Date:      "date " + id,
		Timestamp: ts,
		Name:      "Workout " + id,
		Duration:  "30 min",
		Volume:    "500 kg",
		Exercises: []models.WorkoutExercise{
			{
				ID:         id + "-e1",
				ExerciseID: "squat",
				Name:       "Squat",
				Sets: []models.WorkoutSet{
					{ID: id + "-s1", Reps: "5", Weight: "100", Completed: true},
					{ID: id + "-s2", Reps: "5", Weight: "", Completed: false},
				},
			},
		},
	}
}

func testRoutine(id string, createdAt int64) models.Routine {
	return models.Routine{
		ID:        id,
		Name:      "Routine " + id,
		CreatedAt: createdAt,
		Exercises: []models.RoutineExercise{
			{ExerciseID: "squat", Name: "Squat", TargetSets: "3", TargetReps: "8"},
			{ExerciseID: "lunge", Name: "Lunge", TargetSets: "2", TargetReps: "12", TargetWeight: "20"},
		},
	}
}

func testEntry(id string, ts int64) models.ProgressEntry {
	return models.ProgressEntry{
		ID:           id,
		Date:         "date " + id,
		Timestamp:    ts,
		Weight:       "80",
		Measurements: map[string]models.NumericString{"waist": "85"},
	}
}
