// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestDB and sample workout/routine builders.
package storage

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/harperreed/lift/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), DBFileName))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleWorkout(id string, ts int64) models.Workout {
	return models.Workout{
		ID:        id,
		Date:      "12 Mar",
		Timestamp: ts,
		Name:      "Push " + id,
		Duration:  "45 min",
		Volume:    "1300 kg",
		Exercises: []models.WorkoutExercise{
			{
				ID:         id + "-e1",
				ExerciseID: "bench_press",
				Name:       "Bench Press",
				Sets: []models.WorkoutSet{
					{ID: id + "-s1", Reps: "5", Weight: "100", Completed: true},
					{ID: id + "-s2", Reps: "10", Weight: "80", Completed: true},
					{ID: id + "-s3", Reps: "1", Weight: "200", Completed: false},
				},
			},
			{
				ID:         id + "-e2",
				ExerciseID: "dips",
				Name:       "Dips",
				Sets: []models.WorkoutSet{
					{ID: id + "-s4", Reps: "12", Weight: "", Completed: true},
				},
			},
		},
	}
}

func sampleRoutine(id string, names ...string) models.Routine {
	r := models.Routine{
		ID:          id,
		Name:        "Routine " + id,
		Description: "test routine",
		CreatedAt:   1000,
		Exercises:   []models.RoutineExercise{},
	}
	for i, n := range names {
		r.Exercises = append(r.Exercises, models.RoutineExercise{
			ExerciseID:   fmt.Sprintf("ex_%d", i),
			Name:         n,
			TargetSets:   "3",
			TargetReps:   "10",
			TargetWeight: "40",
			Notes:        "slow eccentric",
		})
	}
	return r
}
