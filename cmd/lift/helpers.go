// ABOUTME: Parsing and formatting helpers shared by the lift commands.
// ABOUTME: Covers set and routine exercise specs, measurements, time input and id prefixes.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/lift/internal/models"
)

// setSpec is one --set value: EXERCISE:WEIGHTxREPS[:skip].
type setSpec struct {
	ExerciseID string
	Weight     string
	Reps       string
	Completed  bool
}

func parseSetSpec(s string) (setSpec, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return setSpec{}, fmt.Errorf("invalid set %q (use EXERCISE:WEIGHTxREPS[:skip])", s)
	}
	weight, reps, ok := strings.Cut(strings.ToLower(parts[1]), "x")
	if !ok {
		return setSpec{}, fmt.Errorf("invalid set %q: missing x between weight and reps", s)
	}
	spec := setSpec{ExerciseID: parts[0], Weight: weight, Reps: reps, Completed: true}
	if err := checkNumber("weight", spec.Weight); err != nil {
		return setSpec{}, fmt.Errorf("invalid set %q: %w", s, err)
	}
	if err := checkNumber("reps", spec.Reps); err != nil {
		return setSpec{}, fmt.Errorf("invalid set %q: %w", s, err)
	}
	if len(parts) == 3 {
		if parts[2] != "skip" {
			return setSpec{}, fmt.Errorf("invalid set %q: unknown suffix %q", s, parts[2])
		}
		spec.Completed = false
	}
	return spec, nil
}

// groupSets turns set specs into exercises. Sets of the same exercise are
// kept together in the order the exercise first appeared.
func groupSets(specs []setSpec, name func(id string) string, newID func() string) []models.WorkoutExercise {
	var out []models.WorkoutExercise
	index := map[string]int{}
	for _, spec := range specs {
		i, ok := index[spec.ExerciseID]
		if !ok {
			i = len(out)
			index[spec.ExerciseID] = i
			out = append(out, models.WorkoutExercise{
				ID:         newID(),
				ExerciseID: spec.ExerciseID,
				Name:       name(spec.ExerciseID),
			})
		}
		out[i].Sets = append(out[i].Sets, models.WorkoutSet{
			ID:        newID(),
			Reps:      models.NumericString(spec.Reps),
			Weight:    models.NumericString(spec.Weight),
			Completed: spec.Completed,
		})
	}
	return out
}

// parseRoutineExercise reads EXERCISE:SETSxREPS[@WEIGHT].
func parseRoutineExercise(s string) (models.RoutineExercise, error) {
	id, rest, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || id == "" {
		return models.RoutineExercise{}, fmt.Errorf("invalid exercise %q (use EXERCISE:SETSxREPS[@WEIGHT])", s)
	}
	target, weight, _ := strings.Cut(rest, "@")
	sets, reps, ok := strings.Cut(strings.ToLower(target), "x")
	if !ok {
		return models.RoutineExercise{}, fmt.Errorf("invalid exercise %q: missing x between sets and reps", s)
	}
	if err := checkNumber("sets", sets); err != nil {
		return models.RoutineExercise{}, fmt.Errorf("invalid exercise %q: %w", s, err)
	}
	if weight != "" {
		if err := checkNumber("weight", weight); err != nil {
			return models.RoutineExercise{}, fmt.Errorf("invalid exercise %q: %w", s, err)
		}
	}
	return models.RoutineExercise{
		ExerciseID:   id,
		TargetSets:   models.NumericString(sets),
		TargetReps:   models.NumericString(reps),
		TargetWeight: models.NumericString(weight),
	}, nil
}

// parseMeasurement reads KEY=VALUE.
func parseMeasurement(s string) (string, models.NumericString, error) {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid measurement %q (use KEY=VALUE)", s)
	}
	if models.IsProgressCoreField(key) {
		return "", "", fmt.Errorf("invalid measurement %q: %s is not a measurement", s, key)
	}
	if err := checkNumber(key, value); err != nil {
		return "", "", fmt.Errorf("invalid measurement %q: %w", s, err)
	}
	return key, models.NumericString(value), nil
}

func checkNumber(field, s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("%s must be a number", field)
	}
	return nil
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

// resolveID finds the one id starting with prefix.
func resolveID(kind, prefix string, ids []string) (string, error) {
	var match string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", fmt.Errorf("%s id prefix %q is ambiguous", kind, prefix)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("%s not found: %s", kind, prefix)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
