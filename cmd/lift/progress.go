// ABOUTME: CLI commands for body progress check-ins and the user profile.
// ABOUTME: Supports progress add, list, delete and profile show, set.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var (
	progressMeasurements []string
	progressPhoto        string
	progressAt           string
	progressLimit        int

	profileAge           string
	profileHeight        string
	profileInitialWeight string
)

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"p"},
	Short:   "Track body weight and measurements",
	Long: `Track body weight (kg) and measurements (cm) over time.

MEASUREMENTS:

  neck, shoulders, chest, waist, hips,
  bicepLeft, bicepRight, forearmLeft, forearmRight,
  thighLeft, thighRight, quadLeft, quadRight, calfLeft, calfRight

Entries cannot be edited. Delete and add again instead.`,
}

var progressAddCmd = &cobra.Command{
	Use:   "add <weight>",
	Short: "Add a check-in",
	Long: `Add a progress check-in with your weight and any measurements.

Examples:
  lift progress add 82.5
  lift progress add 82.1 -m waist=84 -m chest=101.5
  lift progress add 81.9 --photo file:///photos/front.jpg --at 2026-03-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkNumber("weight", args[0]); err != nil {
			return err
		}

		var measurements map[string]models.NumericString
		for _, s := range progressMeasurements {
			key, value, err := parseMeasurement(s)
			if err != nil {
				return err
			}
			if !models.IsKnownMeasurement(key) {
				color.Yellow("⚠ %s is not a standard measurement, storing it anyway", key)
			}
			if measurements == nil {
				measurements = map[string]models.NumericString{}
			}
			measurements[key] = value
		}

		at := time.Now()
		if progressAt != "" {
			t, err := parseTime(progressAt)
			if err != nil {
				return fmt.Errorf("invalid --at: %w", err)
			}
			at = t
		}

		e := models.ProgressEntry{
			ID:           uuid.NewString(),
			Date:         at.Format(models.DateLayout),
			Timestamp:    at.UnixMilli(),
			Weight:       models.NumericString(args[0]),
			PhotoURI:     progressPhoto,
			Measurements: measurements,
		}
		saved, err := liftApp.ProgressState.AddEntry(cmd.Context(), e)
		if err != nil {
			return fmt.Errorf("failed to add progress entry: %w", err)
		}

		color.Green("✓ Added check-in")
		fmt.Printf("  %s %s kg, %d measurements\n",
			color.New(color.Faint).Sprint(shortID(saved.ID)),
			saved.Weight,
			len(saved.Measurements))
		return nil
	},
}

var progressListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List check-ins",
	Long: `List progress check-ins, newest first.

Each line shows: ID  DATE  WEIGHT  MEASUREMENTS`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := liftApp.ProgressState.Entries()
		if len(entries) == 0 {
			fmt.Println("No progress entries found.")
			return nil
		}
		if progressLimit > 0 && len(entries) > progressLimit {
			entries = entries[:progressLimit]
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s %s %s kg%s\n",
				faint.Sprint(shortID(e.ID)),
				faint.Sprint(padRight(e.Date, 10)),
				padRight(e.Weight.String(), 6),
				faint.Sprint(formatMeasurements(e)))
		}
		return nil
	},
}

var progressDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a check-in",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := liftApp.ProgressState.Entries()
		ids := make([]string, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.ID)
		}
		id, err := resolveID("progress entry", args[0], ids)
		if err != nil {
			return err
		}
		if err := liftApp.ProgressState.RemoveEntry(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete progress entry: %w", err)
		}
		color.Yellow("✗ Deleted check-in %s", shortID(id))
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or set your profile",
	Long: `Your profile holds age, height (cm) and starting weight (kg).

Examples:
  lift profile show
  lift profile set --age 34 --height 178 --initial-weight 86`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := liftApp.ProgressState.Profile()
		if !ok {
			fmt.Println("No profile yet. Set one with 'lift profile set'.")
			return nil
		}
		fmt.Printf("  Age:            %s\n", p.Age)
		fmt.Printf("  Height:         %s cm\n", p.Height)
		fmt.Printf("  Initial weight: %s kg\n", p.InitialWeight)

		if entries := liftApp.ProgressState.Entries(); len(entries) > 0 {
			latest, lok := entries[0].Weight.Float()
			initial, iok := p.InitialWeight.Float()
			if lok && iok {
				fmt.Printf("  Change:         %+.1f kg\n", latest-initial)
			}
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace your profile",
	Long: `Replace your profile. All three values are required; the profile is
always saved whole.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.UserProfile{
			Age:           models.NumericString(profileAge),
			Height:        models.NumericString(profileHeight),
			InitialWeight: models.NumericString(profileInitialWeight),
		}
		if _, err := liftApp.ProgressState.UpdateProfile(cmd.Context(), p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		color.Green("✓ Profile saved")
		return nil
	},
}

func formatMeasurements(e models.ProgressEntry) string {
	keys := e.MeasurementKeys()
	if len(keys) == 0 {
		return ""
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", models.MeasurementLabel(k), e.Measurements[k]))
	}
	return fmt.Sprintf("  %s (%s)", strings.Join(parts, ", "), models.MeasurementUnit)
}

func init() {
	progressAddCmd.Flags().StringArrayVarP(&progressMeasurements, "measure", "m", nil, "measurement as KEY=VALUE in cm (repeatable)")
	progressAddCmd.Flags().StringVar(&progressPhoto, "photo", "", "photo URI")
	progressAddCmd.Flags().StringVar(&progressAt, "at", "", "when it was taken (YYYY-MM-DD HH:MM)")
	progressListCmd.Flags().IntVarP(&progressLimit, "limit", "n", 20, "max number of results")

	profileSetCmd.Flags().StringVar(&profileAge, "age", "", "age in years")
	profileSetCmd.Flags().StringVar(&profileHeight, "height", "", "height in cm")
	profileSetCmd.Flags().StringVar(&profileInitialWeight, "initial-weight", "", "starting weight in kg")

	progressCmd.AddCommand(progressAddCmd)
	progressCmd.AddCommand(progressListCmd)
	progressCmd.AddCommand(progressDeleteCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(profileCmd)
}
