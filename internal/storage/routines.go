// ABOUTME: Routine CRUD on the WorkoutRepository.
// ABOUTME: Saving a routine replaces its children; deleting removes children then root.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/lift/internal/errs"
	"github.com/harperreed/lift/internal/models"
)

// routineExerciseID derives the row id of a routine's child at index i.
// Routine exercises carry no id of their own.
func routineExerciseID(routineID string, i int) string {
	return fmt.Sprintf("%s:%d", routineID, i)
}

// SaveRoutine inserts or replaces a routine. All prior child rows of the
// routine are deleted before the new list is inserted.
func (r *WorkoutRepository) SaveRoutine(ctx context.Context, rt models.Routine) error {
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO routines (id, name, description, created_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				description = excluded.description,
				created_at = excluded.created_at
		`, rt.ID, rt.Name, rt.Description, rt.CreatedAt)
		if err != nil {
			return fmt.Errorf("upsert routine: %w", err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM routine_exercises WHERE routine_id = ?", rt.ID); err != nil {
			return fmt.Errorf("delete routine exercises: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO routine_exercises
				(id, routine_id, position, exercise_id, name, target_sets, target_reps, target_weight, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("prepare routine exercise insert: %w", err)
		}
		defer stmt.Close()

		for i, ex := range rt.Exercises {
			_, err := stmt.ExecContext(ctx,
				routineExerciseID(rt.ID, i), rt.ID, i,
				ex.ExerciseID, ex.Name,
				string(ex.TargetSets), string(ex.TargetReps), string(ex.TargetWeight),
				ex.Notes,
			)
			if err != nil {
				return fmt.Errorf("insert routine exercise %d: %w", i, err)
			}
		}
		return nil
	})
	return errs.Write("save routine "+rt.ID, err)
}

// GetRoutine returns one routine with its exercises, or errs.ErrNotFound.
func (r *WorkoutRepository) GetRoutine(ctx context.Context, id string) (*models.Routine, error) {
	var routines []models.Routine
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		routines, err = queryRoutines(ctx, tx, "WHERE r.id = ?", id)
		return err
	})
	if err != nil {
		return nil, errs.Read("get routine "+id, err)
	}
	if len(routines) == 0 {
		return nil, errs.NotFound("routine", id)
	}
	return &routines[0], nil
}

// ListRoutines returns every routine, most recently created first.
func (r *WorkoutRepository) ListRoutines(ctx context.Context) ([]models.Routine, error) {
	var routines []models.Routine
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		routines, err = queryRoutines(ctx, tx, "")
		return err
	})
	if err != nil {
		return nil, errs.Read("list routines", err)
	}
	return routines, nil
}

// DeleteRoutine removes a routine's children and then the routine itself.
// Deleting an unknown id is a no-op.
func (r *WorkoutRepository) DeleteRoutine(ctx context.Context, id string) error {
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM routine_exercises WHERE routine_id = ?", id); err != nil {
			return fmt.Errorf("delete routine exercises: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM routines WHERE id = ?", id); err != nil {
			return fmt.Errorf("delete routine: %w", err)
		}
		return nil
	})
	return errs.Write("delete routine "+id, err)
}

// RoutineExerciseCount returns how many child rows reference a routine id.
func (r *WorkoutRepository) RoutineExerciseCount(ctx context.Context, routineID string) (int, error) {
	var n int
	err := r.db.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM routine_exercises WHERE routine_id = ?", routineID,
	).Scan(&n)
	if err != nil {
		return 0, errs.Read("count routine exercises", err)
	}
	return n, nil
}

func queryRoutines(ctx context.Context, tx *sql.Tx, where string, args ...any) ([]models.Routine, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT r.id, r.name, r.description, r.created_at
		FROM routines r `+where+`
		ORDER BY r.created_at DESC, r.id
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("query routines: %w", err)
	}

	routines := []models.Routine{}
	byID := map[string]int{}
	for rows.Next() {
		var rt models.Routine
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.Description, &rt.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan routine: %w", err)
		}
		rt.Exercises = []models.RoutineExercise{}
		byID[rt.ID] = len(routines)
		routines = append(routines, rt)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}
	if len(routines) == 0 {
		return routines, nil
	}

	rows, err = tx.QueryContext(ctx, `
		SELECT e.routine_id, e.exercise_id, e.name, e.target_sets, e.target_reps, e.target_weight, e.notes
		FROM routine_exercises e
		JOIN routines r ON r.id = e.routine_id `+where+`
		ORDER BY e.routine_id, e.position
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("query routine exercises: %w", err)
	}
	for rows.Next() {
		var ex models.RoutineExercise
		var routineID, sets, reps, weight string
		if err := rows.Scan(&routineID, &ex.ExerciseID, &ex.Name, &sets, &reps, &weight, &ex.Notes); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan routine exercise: %w", err)
		}
		ex.TargetSets = models.NumericString(sets)
		ex.TargetReps = models.NumericString(reps)
		ex.TargetWeight = models.NumericString(weight)
		i, ok := byID[routineID]
		if !ok {
			continue
		}
		routines[i].Exercises = append(routines[i].Exercises, ex)
	}
	return routines, closeRows(rows)
}
