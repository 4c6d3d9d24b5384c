// ABOUTME: CLI commands for logging and browsing workouts.
// ABOUTME: Supports log, list, show, and delete subcommands.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/catalog"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var (
	workoutDuration string
	workoutSets     []string
	workoutRoutine  string
	workoutDone     bool
	workoutAt       string
	workoutLimit    int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Log and browse workouts",
	Long: `Log finished workouts and look back at them.

A workout is a list of exercises, each with its sets. Only completed sets
count toward the workout volume (weight x reps, in kg).

COMMANDS:

  log      Record a finished workout
  list     List recent workouts
  show     View a workout with all its sets
  delete   Delete a workout

Workouts cannot be edited once logged. Delete and log again instead.`,
}

var workoutLogCmd = &cobra.Command{
	Use:   "log <name>",
	Short: "Record a finished workout",
	Long: `Record a finished workout.

Each --set is EXERCISE:WEIGHTxREPS. Add :skip for a set you did not finish;
it is kept but does not count toward volume. EXERCISE is a catalog id
(see 'lift exercises') or any name of your own.

With --routine the routine's planned sets are added first, prefilled with
its target reps and weight. They are not completed unless --done is given.

Examples:
  lift workout log "Pecho" --set 1:60x10 --set 1:60x8 --set 3:14x12
  lift workout log "Pierna" --routine 3f2a --done --duration "50 min"
  lift workout log "Espalda" --set 4:0x12 --set 4:0x6:skip`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		specs := make([]setSpec, 0, len(workoutSets))
		for _, s := range workoutSets {
			spec, err := parseSetSpec(s)
			if err != nil {
				return err
			}
			specs = append(specs, spec)
		}

		at := time.Now()
		if workoutAt != "" {
			t, err := parseTime(workoutAt)
			if err != nil {
				return fmt.Errorf("invalid --at: %w", err)
			}
			at = t
		}

		var exercises []models.WorkoutExercise
		if workoutRoutine != "" {
			id, err := resolveID("routine", workoutRoutine, routineIDs())
			if err != nil {
				return err
			}
			planned, err := liftApp.WorkoutState.StartRoutine(id, uuid.NewString)
			if err != nil {
				return fmt.Errorf("failed to start routine: %w", err)
			}
			for i := range planned {
				for j := range planned[i].Sets {
					planned[i].Sets[j].Completed = workoutDone
				}
			}
			exercises = append(exercises, planned...)
		}
		snapshot := func(id string) string { return catalog.SnapshotName(id, "") }
		exercises = append(exercises, groupSets(specs, snapshot, uuid.NewString)...)
		if exercises == nil {
			exercises = []models.WorkoutExercise{}
		}

		w := models.Workout{
			ID:        uuid.NewString(),
			Date:      at.Format(models.DateLayout),
			Timestamp: at.UnixMilli(),
			Name:      args[0],
			Duration:  workoutDuration,
			Exercises: exercises,
		}

		saved, err := liftApp.WorkoutState.AddWorkout(ctx, w)
		if err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}

		color.Green("✓ Logged %s", saved.Name)
		fmt.Printf("  %s %d exercises, %s\n",
			color.New(color.Faint).Sprint(shortID(saved.ID)),
			len(saved.Exercises),
			saved.Volume)

		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent workouts",
	Long: `List recent workouts, newest first.

Each line shows: ID  DATE  NAME  EXERCISES  VOLUME  (DURATION)

Examples:
  lift workout list
  lift workout list -n 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts := liftApp.WorkoutState.Workouts()
		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}
		if workoutLimit > 0 && len(workouts) > workoutLimit {
			workouts = workouts[:workoutLimit]
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			duration := ""
			if w.Duration != "" {
				duration = faint.Sprintf(" (%s)", w.Duration)
			}
			fmt.Printf("%s %s %s %2d ex  %s%s\n",
				faint.Sprint(shortID(w.ID)),
				faint.Sprint(padRight(w.Date, 10)),
				padRight(truncate(w.Name, 24), 24),
				len(w.Exercises),
				w.Volume,
				duration)
		}

		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show workout details",
	Long: `Show a workout with every exercise and set.

The ID may be a prefix, as shown by 'lift workout list'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveID("workout", args[0], workoutIDs())
		if err != nil {
			return err
		}
		w, err := liftApp.Workouts.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get workout: %w", err)
		}

		faint := color.New(color.Faint)
		color.New(color.Bold).Printf("%s\n", w.Name)
		fmt.Printf("  ID:       %s\n", w.ID)
		fmt.Printf("  Date:     %s\n", w.Date)
		if w.Duration != "" {
			fmt.Printf("  Duration: %s\n", w.Duration)
		}
		fmt.Printf("  Volume:   %s\n", w.Volume)

		for _, ex := range w.Exercises {
			fmt.Printf("\n  %s %s\n", ex.Name, faint.Sprintf("(%s)", ex.ExerciseID))
			for i, set := range ex.Sets {
				mark := color.GreenString("✓")
				if !set.Completed {
					mark = faint.Sprint("·")
				}
				fmt.Printf("    %s %d. %s kg x %s\n", mark, i+1, set.Weight, set.Reps)
			}
		}

		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout",
	Long: `Delete a workout by its ID or ID prefix.

This permanently deletes the workout and all its sets. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveID("workout", args[0], workoutIDs())
		if err != nil {
			return err
		}
		if err := liftApp.WorkoutState.DeleteWorkout(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Yellow("✗ Deleted workout %s", shortID(id))
		return nil
	},
}

func workoutIDs() []string {
	workouts := liftApp.WorkoutState.Workouts()
	ids := make([]string, 0, len(workouts))
	for _, w := range workouts {
		ids = append(ids, w.ID)
	}
	return ids
}

func init() {
	workoutLogCmd.Flags().StringVarP(&workoutDuration, "duration", "d", "", "how long it took, e.g. \"45 min\"")
	workoutLogCmd.Flags().StringArrayVarP(&workoutSets, "set", "s", nil, "set as EXERCISE:WEIGHTxREPS[:skip] (repeatable)")
	workoutLogCmd.Flags().StringVarP(&workoutRoutine, "routine", "r", "", "start from a routine's planned sets")
	workoutLogCmd.Flags().BoolVar(&workoutDone, "done", false, "mark the routine's planned sets as completed")
	workoutLogCmd.Flags().StringVar(&workoutAt, "at", "", "when it happened (YYYY-MM-DD HH:MM)")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results")

	workoutCmd.AddCommand(workoutLogCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
