// ABOUTME: Routine and RoutineExercise models for reusable workout templates.
// ABOUTME: Includes expansion of a routine into placeholder sets for a new session.
package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// DefaultTargetSets is used when a routine exercise has no usable targetSets.
const DefaultTargetSets = 3

// Routine is a reusable workout template. Routines are the only entity with
// full create/read/update/delete.
type Routine struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Exercises   []RoutineExercise `json:"exercises" yaml:"exercises"`
	CreatedAt   int64             `json:"createdAt" yaml:"created_at"`
}

// UnmarshalJSON accepts a float createdAt as well as an integer one.
func (r *Routine) UnmarshalJSON(data []byte) error {
	type plain Routine
	aux := struct {
		*plain
		CreatedAt json.RawMessage `json:"createdAt"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	ts, err := decodeMillis(aux.CreatedAt)
	if err != nil {
		return fmt.Errorf("routine field \"createdAt\": %w", err)
	}
	r.CreatedAt = ts
	return nil
}

// RoutineExercise is one planned exercise of a routine.
type RoutineExercise struct {
	ExerciseID   string        `json:"exerciseId" yaml:"exercise_id"`
	Name         string        `json:"name" yaml:"name"`
	TargetSets   NumericString `json:"targetSets" yaml:"target_sets"`
	TargetReps   NumericString `json:"targetReps" yaml:"target_reps"`
	TargetWeight NumericString `json:"targetWeight,omitempty" yaml:"target_weight,omitempty"`
	Notes        string        `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Clone returns a deep copy of the routine.
func (r Routine) Clone() Routine {
	out := r
	out.Exercises = slices.Clone(r.Exercises)
	return out
}

// SetCount returns how many placeholder sets this exercise starts with.
func (e RoutineExercise) SetCount() int {
	n, ok := e.TargetSets.Int()
	if !ok || n <= 0 {
		return DefaultTargetSets
	}
	return n
}

// SessionFromRoutine expands a routine into the exercises of a new session.
// Each exercise gets SetCount() empty sets prefilled with the target reps and
// weight. Ids come from newID; this package never invents them.
func SessionFromRoutine(r Routine, newID func() string) []WorkoutExercise {
	out := make([]WorkoutExercise, 0, len(r.Exercises))
	for _, rex := range r.Exercises {
		ex := WorkoutExercise{
			ID:         newID(),
			ExerciseID: rex.ExerciseID,
			Name:       rex.Name,
			Sets:       make([]WorkoutSet, 0, rex.SetCount()),
		}
		for range rex.SetCount() {
			ex.Sets = append(ex.Sets, WorkoutSet{
				ID:     newID(),
				Reps:   rex.TargetReps,
				Weight: rex.TargetWeight,
			})
		}
		out = append(out, ex)
	}
	return out
}
