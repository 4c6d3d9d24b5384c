// ABOUTME: Copies every entity from one backend to another.
// ABOUTME: Items go through Upsert one at a time, so a retried copy never duplicates.
package persist

import (
	"context"
	"fmt"
)

// CopySummary holds counts of copied entities.
type CopySummary struct {
	Workouts        int
	Routines        int
	ProgressEntries int
	Profile         bool
}

// Copy stages, in the order they run.
const (
	StageWorkouts = "workouts"
	StageRoutines = "routines"
	StageProgress = "progress"
	StageProfile  = "profile"
)

// CopyError reports the stage, and the item when there is one, at which a
// copy stopped.
type CopyError struct {
	Stage string
	ID    string
	Err   error
}

func (e *CopyError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("copy %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("copy %s %s: %v", e.Stage, e.ID, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

// Copy writes every workout, routine, progress entry and the profile of src
// into dst. It stops at the first failure; items already written stay in
// dst and are replaced, not duplicated, when Copy runs again.
func Copy(ctx context.Context, src, dst Backend) (*CopySummary, error) {
	summary := &CopySummary{}

	workouts, err := src.ListWorkouts(ctx)
	if err != nil {
		return summary, &CopyError{Stage: StageWorkouts, Err: err}
	}
	for _, w := range workouts {
		if err := dst.UpsertWorkout(ctx, w); err != nil {
			return summary, &CopyError{Stage: StageWorkouts, ID: w.ID, Err: err}
		}
		summary.Workouts++
	}

	routines, err := src.ListRoutines(ctx)
	if err != nil {
		return summary, &CopyError{Stage: StageRoutines, Err: err}
	}
	for _, r := range routines {
		if err := dst.UpsertRoutine(ctx, r); err != nil {
			return summary, &CopyError{Stage: StageRoutines, ID: r.ID, Err: err}
		}
		summary.Routines++
	}

	entries, err := src.ListProgress(ctx)
	if err != nil {
		return summary, &CopyError{Stage: StageProgress, Err: err}
	}
	for _, e := range entries {
		if err := dst.UpsertProgress(ctx, e); err != nil {
			return summary, &CopyError{Stage: StageProgress, ID: e.ID, Err: err}
		}
		summary.ProgressEntries++
	}

	profile, err := src.GetProfile(ctx)
	if err != nil {
		return summary, &CopyError{Stage: StageProfile, Err: err}
	}
	if profile != nil {
		if err := dst.SaveProfile(ctx, *profile); err != nil {
			return summary, &CopyError{Stage: StageProfile, Err: err}
		}
		summary.Profile = true
	}

	return summary, nil
}
