// ABOUTME: CLI commands for managing routines, the reusable workout templates.
// ABOUTME: Supports create, list, show, update, start, and delete subcommands.
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
	routineName        string
	routineDescription string
	routineExercises   []string
)

var routineCmd = &cobra.Command{
	Use:     "routine",
	Aliases: []string{"r"},
	Short:   "Manage routines",
	Long: `Routines are workout templates: a named list of exercises with target
sets, reps and weight.

WORKFLOW:

  1. Create a routine:   lift routine create "Pierna" --exercise 7:4x10@80
  2. Preview a session:  lift routine start <id>
  3. Log it:             lift workout log "Pierna" --routine <id> --done

Each --exercise is EXERCISE:SETSxREPS[@WEIGHT]. A routine with a bad set
count still works; the session falls back to 3 sets.`,
}

var routineCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a routine",
	Long: `Create a routine.

Examples:
  lift routine create "Pecho" --exercise 1:4x8@60 --exercise 3:3x12
  lift routine create "Pierna" -e 7:5x5@100 --description "Fuerza"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := parseRoutineExercises(routineExercises)
		if err != nil {
			return err
		}

		r := models.Routine{
			ID:          uuid.NewString(),
			Name:        args[0],
			Description: routineDescription,
			Exercises:   exercises,
			CreatedAt:   time.Now().UnixMilli(),
		}
		saved, err := liftApp.WorkoutState.AddRoutine(cmd.Context(), r)
		if err != nil {
			return fmt.Errorf("failed to create routine: %w", err)
		}

		color.Green("✓ Created routine %s", saved.Name)
		fmt.Printf("  %s %d exercises\n",
			color.New(color.Faint).Sprint(shortID(saved.ID)),
			len(saved.Exercises))
		return nil
	},
}

var routineListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		routines := liftApp.WorkoutState.Routines()
		if len(routines) == 0 {
			fmt.Println("No routines found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range routines {
			desc := ""
			if r.Description != "" {
				desc = faint.Sprintf(" (%s)", truncate(r.Description, 30))
			}
			fmt.Printf("%s %s %2d ex%s\n",
				faint.Sprint(shortID(r.ID)),
				padRight(truncate(r.Name, 24), 24),
				len(r.Exercises),
				desc)
		}
		return nil
	},
}

var routineShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show routine details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveID("routine", args[0], routineIDs())
		if err != nil {
			return err
		}
		r, err := liftApp.Routines.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get routine: %w", err)
		}

		faint := color.New(color.Faint)
		color.New(color.Bold).Printf("%s\n", r.Name)
		fmt.Printf("  ID:      %s\n", r.ID)
		if r.Description != "" {
			fmt.Printf("  About:   %s\n", r.Description)
		}
		fmt.Printf("  Created: %s\n", time.UnixMilli(r.CreatedAt).Format("2006-01-02 15:04"))
		fmt.Println()
		for _, ex := range r.Exercises {
			target := fmt.Sprintf("%s x %s", ex.TargetSets, ex.TargetReps)
			if !ex.TargetWeight.IsEmpty() {
				target += fmt.Sprintf(" @ %s kg", ex.TargetWeight)
			}
			fmt.Printf("  %s %s %s\n", padRight(ex.Name, 28), target, faint.Sprintf("(%s)", ex.ExerciseID))
		}
		return nil
	},
}

var routineUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a routine",
	Long: `Update a routine. Only the given flags change; passing any --exercise
replaces the whole exercise list.

Examples:
  lift routine update 3f2a --name "Pierna pesada"
  lift routine update 3f2a -e 7:5x5@110 -e 10:3x12`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveID("routine", args[0], routineIDs())
		if err != nil {
			return err
		}
		r, ok := liftApp.WorkoutState.Routine(id)
		if !ok {
			return fmt.Errorf("routine not found: %s", args[0])
		}

		if cmd.Flags().Changed("name") {
			r.Name = routineName
		}
		if cmd.Flags().Changed("description") {
			r.Description = routineDescription
		}
		if cmd.Flags().Changed("exercise") {
			if r.Exercises, err = parseRoutineExercises(routineExercises); err != nil {
				return err
			}
		}

		saved, err := liftApp.WorkoutState.UpdateRoutine(cmd.Context(), id, r)
		if err != nil {
			return fmt.Errorf("failed to update routine: %w", err)
		}
		color.Green("✓ Updated routine %s", saved.Name)
		return nil
	},
}

var routineStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Preview the sets a routine session starts with",
	Long: `Show the planned sets a session of this routine starts with.

Use 'lift workout log <name> --routine <id>' to record it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveID("routine", args[0], routineIDs())
		if err != nil {
			return err
		}
		session, err := liftApp.WorkoutState.StartRoutine(id, uuid.NewString)
		if err != nil {
			return fmt.Errorf("failed to start routine: %w", err)
		}

		faint := color.New(color.Faint)
		for _, ex := range session {
			fmt.Println(ex.Name)
			for i, set := range ex.Sets {
				weight := set.Weight.String()
				if weight == "" {
					weight = "-"
				}
				fmt.Printf("  %s %s kg x %s\n", faint.Sprintf("%d.", i+1), weight, set.Reps)
			}
		}
		return nil
	},
}

var routineDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a routine",
	Long: `Delete a routine by its ID or ID prefix.

Workouts logged from it are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveID("routine", args[0], routineIDs())
		if err != nil {
			return err
		}
		if err := liftApp.WorkoutState.DeleteRoutine(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete routine: %w", err)
		}
		color.Yellow("✗ Deleted routine %s", shortID(id))
		return nil
	},
}

func parseRoutineExercises(specs []string) ([]models.RoutineExercise, error) {
	out := make([]models.RoutineExercise, 0, len(specs))
	for _, s := range specs {
		ex, err := parseRoutineExercise(s)
		if err != nil {
			return nil, err
		}
		ex.Name = catalog.SnapshotName(ex.ExerciseID, "")
		out = append(out, ex)
	}
	return out, nil
}

func routineIDs() []string {
	routines := liftApp.WorkoutState.Routines()
	ids := make([]string, 0, len(routines))
	for _, r := range routines {
		ids = append(ids, r.ID)
	}
	return ids
}

func init() {
	routineCreateCmd.Flags().StringVar(&routineDescription, "description", "", "what the routine is for")
	routineCreateCmd.Flags().StringArrayVarP(&routineExercises, "exercise", "e", nil, "exercise as EXERCISE:SETSxREPS[@WEIGHT] (repeatable)")

	routineUpdateCmd.Flags().StringVar(&routineName, "name", "", "new name")
	routineUpdateCmd.Flags().StringVar(&routineDescription, "description", "", "new description")
	routineUpdateCmd.Flags().StringArrayVarP(&routineExercises, "exercise", "e", nil, "replacement exercise list (repeatable)")

	routineCmd.AddCommand(routineCreateCmd)
	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineShowCmd)
	routineCmd.AddCommand(routineUpdateCmd)
	routineCmd.AddCommand(routineStartCmd)
	routineCmd.AddCommand(routineDeleteCmd)
	rootCmd.AddCommand(routineCmd)
}
