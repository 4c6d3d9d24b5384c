// ABOUTME: Workout, WorkoutExercise and WorkoutSet models for logged sessions.
// ABOUTME: A workout is an ordered tree: workout -> exercises -> sets.
package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// DateLayout is the display date written on new workouts and entries.
const DateLayout = "2006-01-02"

// Workout is a completed training session. Workouts are immutable once
// logged: they are created, read and deleted, never edited.
type Workout struct {
	ID        string            `json:"id" yaml:"id"`
	Date      string            `json:"date" yaml:"date"`
	Timestamp int64             `json:"timestamp" yaml:"timestamp"`
	Name      string            `json:"name" yaml:"name"`
	Duration  string            `json:"duration" yaml:"duration"`
	Volume    string            `json:"volume" yaml:"volume"`
	Exercises []WorkoutExercise `json:"exercises" yaml:"exercises"`
}

// UnmarshalJSON accepts a float timestamp as well as an integer one.
func (w *Workout) UnmarshalJSON(data []byte) error {
	type plain Workout
	aux := struct {
		*plain
		Timestamp json.RawMessage `json:"timestamp"`
	}{plain: (*plain)(w)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	ts, err := decodeMillis(aux.Timestamp)
	if err != nil {
		return fmt.Errorf("workout field \"timestamp\": %w", err)
	}
	w.Timestamp = ts
	return nil
}

// WorkoutExercise is one exercise performed within a workout.
// ExerciseID points into the exercise catalog; Name is a snapshot taken when
// the workout was logged so later catalog edits do not rewrite history.
type WorkoutExercise struct {
	ID         string       `json:"id" yaml:"id"`
	ExerciseID string       `json:"exerciseId" yaml:"exercise_id"`
	Name       string       `json:"name" yaml:"name"`
	Sets       []WorkoutSet `json:"sets" yaml:"sets"`
}

// WorkoutSet is a single set. Only completed sets count toward volume.
type WorkoutSet struct {
	ID        string        `json:"id" yaml:"id"`
	Reps      NumericString `json:"reps" yaml:"reps"`
	Weight    NumericString `json:"weight" yaml:"weight"`
	Completed bool          `json:"completed" yaml:"completed"`
}

// Clone returns a deep copy of the workout.
func (w Workout) Clone() Workout {
	out := w
	out.Exercises = make([]WorkoutExercise, len(w.Exercises))
	for i, ex := range w.Exercises {
		ex.Sets = slices.Clone(ex.Sets)
		out.Exercises[i] = ex
	}
	return out
}

// TotalVolume sums weight*reps over completed sets. Sets with an empty or
// non-numeric weight or reps are skipped.
func (w Workout) TotalVolume() float64 {
	return Volume(w.Exercises)
}

// Volume sums weight*reps over the completed sets of the given exercises.
func Volume(exercises []WorkoutExercise) float64 {
	var total float64
	for _, ex := range exercises {
		for _, s := range ex.Sets {
			if !s.Completed {
				continue
			}
			weight, ok := s.Weight.Float()
			if !ok {
				continue
			}
			reps, ok := s.Reps.Float()
			if !ok {
				continue
			}
			total += weight * reps
		}
	}
	return total
}

// FormatVolume renders a volume the way it is stored on a workout ("1300 kg").
func FormatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " kg"
}

// CompletedSets returns the completed sets of an exercise in order.
func (e WorkoutExercise) CompletedSets() []WorkoutSet {
	var out []WorkoutSet
	for _, s := range e.Sets {
		if s.Completed {
			out = append(out, s)
		}
	}
	return out
}
