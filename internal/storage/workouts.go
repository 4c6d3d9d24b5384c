// ABOUTME: WorkoutRepository: workout trees (workout -> exercises -> sets) in SQLite.
// ABOUTME: Each save or tree read runs in one transaction so no reader sees a partial workout.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/lift/internal/errs"
	"github.com/harperreed/lift/internal/models"
	"go.uber.org/multierr"
)

// WorkoutRepository maps workouts and routines to rows. All SQL for those
// two aggregates lives here and in routines.go.
type WorkoutRepository struct {
	db *DB
}

// NewWorkoutRepository returns a repository over db.
func NewWorkoutRepository(db *DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// SaveWorkout inserts or replaces a workout and its whole tree. Existing
// exercises and sets of the workout are removed before the new ones are
// written, so a retried save leaves exactly one copy.
func (r *WorkoutRepository) SaveWorkout(ctx context.Context, w models.Workout) error {
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO workouts (id, name, date, timestamp, duration, volume)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				date = excluded.date,
				timestamp = excluded.timestamp,
				duration = excluded.duration,
				volume = excluded.volume
		`, w.ID, w.Name, w.Date, w.Timestamp, w.Duration, w.Volume)
		if err != nil {
			return fmt.Errorf("upsert workout: %w", err)
		}

		if err := deleteWorkoutChildren(ctx, tx, w.ID); err != nil {
			return err
		}

		exStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO exercises (id, workout_id, position, exercise_id, name)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("prepare exercise insert: %w", err)
		}
		defer exStmt.Close()

		setStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO sets (id, exercise_id, position, reps, weight, completed)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("prepare set insert: %w", err)
		}
		defer setStmt.Close()

		for i, ex := range w.Exercises {
			if _, err := exStmt.ExecContext(ctx, ex.ID, w.ID, i, ex.ExerciseID, ex.Name); err != nil {
				return fmt.Errorf("insert exercise %s: %w", ex.ID, err)
			}
			for j, s := range ex.Sets {
				if _, err := setStmt.ExecContext(ctx, s.ID, ex.ID, j, string(s.Reps), string(s.Weight), s.Completed); err != nil {
					return fmt.Errorf("insert set %s: %w", s.ID, err)
				}
			}
		}
		return nil
	})
	return errs.Write("save workout "+w.ID, err)
}

// GetWorkout returns one workout tree, or errs.ErrNotFound.
func (r *WorkoutRepository) GetWorkout(ctx context.Context, id string) (*models.Workout, error) {
	var workouts []models.Workout
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		workouts, err = queryWorkouts(ctx, tx, "WHERE w.id = ?", id)
		return err
	})
	if err != nil {
		return nil, errs.Read("get workout "+id, err)
	}
	if len(workouts) == 0 {
		return nil, errs.NotFound("workout", id)
	}
	return &workouts[0], nil
}

// ListWorkouts returns every workout tree, most recent first.
func (r *WorkoutRepository) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		workouts, err = queryWorkouts(ctx, tx, "")
		return err
	})
	if err != nil {
		return nil, errs.Read("list workouts", err)
	}
	return workouts, nil
}

// DeleteWorkout removes a workout and its children. Deleting an unknown id
// is a no-op.
func (r *WorkoutRepository) DeleteWorkout(ctx context.Context, id string) error {
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := deleteWorkoutChildren(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM workouts WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete workout: %w", err)
		}
		return nil
	})
	return errs.Write("delete workout "+id, err)
}

// Counts returns the number of rows in every table.
func (r *WorkoutRepository) Counts(ctx context.Context) (map[string]int, error) {
	counts, err := r.db.Counts(ctx)
	if err != nil {
		return nil, errs.Read("count rows", err)
	}
	return counts, nil
}

func deleteWorkoutChildren(ctx context.Context, tx *sql.Tx, workoutID string) error {
	_, err := tx.ExecContext(ctx, `
		DELETE FROM sets
		WHERE exercise_id IN (SELECT id FROM exercises WHERE workout_id = ?)
	`, workoutID)
	if err != nil {
		return fmt.Errorf("delete sets: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM exercises WHERE workout_id = ?", workoutID); err != nil {
		return fmt.Errorf("delete exercises: %w", err)
	}
	return nil
}

// queryWorkouts loads full workout trees. where filters on the workouts
// table aliased as w.
func queryWorkouts(ctx context.Context, tx *sql.Tx, where string, args ...any) ([]models.Workout, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT w.id, w.name, w.date, w.timestamp, w.duration, w.volume
		FROM workouts w `+where+`
		ORDER BY w.timestamp DESC, w.id
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}

	workouts := []models.Workout{}
	byID := map[string]int{}
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.Name, &w.Date, &w.Timestamp, &w.Duration, &w.Volume); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		w.Exercises = []models.WorkoutExercise{}
		byID[w.ID] = len(workouts)
		workouts = append(workouts, w)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return workouts, nil
	}

	type exerciseRef struct{ workout, exercise int }
	exercises := map[string]exerciseRef{}

	rows, err = tx.QueryContext(ctx, `
		SELECT e.id, e.workout_id, e.exercise_id, e.name
		FROM exercises e
		JOIN workouts w ON w.id = e.workout_id `+where+`
		ORDER BY e.workout_id, e.position
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	for rows.Next() {
		var ex models.WorkoutExercise
		var workoutID string
		if err := rows.Scan(&ex.ID, &workoutID, &ex.ExerciseID, &ex.Name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		ex.Sets = []models.WorkoutSet{}
		wi := byID[workoutID]
		exercises[ex.ID] = exerciseRef{workout: wi, exercise: len(workouts[wi].Exercises)}
		workouts[wi].Exercises = append(workouts[wi].Exercises, ex)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = tx.QueryContext(ctx, `
		SELECT s.id, s.exercise_id, s.reps, s.weight, s.completed
		FROM sets s
		JOIN exercises e ON e.id = s.exercise_id
		JOIN workouts w ON w.id = e.workout_id `+where+`
		ORDER BY s.exercise_id, s.position
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	for rows.Next() {
		var s models.WorkoutSet
		var exerciseID, reps, weight string
		if err := rows.Scan(&s.ID, &exerciseID, &reps, &weight, &s.Completed); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan set: %w", err)
		}
		s.Reps = models.NumericString(reps)
		s.Weight = models.NumericString(weight)
		ref, ok := exercises[exerciseID]
		if !ok {
			continue
		}
		ex := &workouts[ref.workout].Exercises[ref.exercise]
		ex.Sets = append(ex.Sets, s)
	}
	return workouts, closeRows(rows)
}

// closeRows reports iteration errors before closing.
func closeRows(rows *sql.Rows) error {
	return multierr.Combine(rows.Err(), rows.Close())
}
