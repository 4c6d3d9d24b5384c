// ABOUTME: CLI command for browsing the built-in exercise catalog.
// ABOUTME: Catalog ids are what --set and --exercise expect.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/catalog"
	"github.com/spf13/cobra"
)

var exercisesMuscle string

var exercisesCmd = &cobra.Command{
	Use:     "exercises",
	Aliases: []string{"ex"},
	Short:   "List the exercise catalog",
	Long: `List the built-in exercise catalog.

Each line shows: ID  NAME  MUSCLE  EQUIPMENT  (SECONDARY MUSCLES)

Examples:
  lift exercises
  lift exercises --muscle piernas`,
	Annotations: map[string]string{skipApp: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		list := catalog.All()
		if exercisesMuscle != "" {
			list = catalog.ByMuscle(exercisesMuscle)
		}
		if len(list) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, ex := range list {
			secondary := ""
			if len(ex.SecondaryMuscles) > 0 {
				secondary = faint.Sprintf(" (%s)", strings.Join(ex.SecondaryMuscles, ", "))
			}
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprint(padRight(ex.ID, 3)),
				padRight(ex.Name, 32),
				padRight(ex.Muscle, 9),
				faint.Sprint(ex.Equipment),
				secondary)
		}
		return nil
	},
}

func init() {
	exercisesCmd.Flags().StringVar(&exercisesMuscle, "muscle", "", "only exercises for this muscle group")
	rootCmd.AddCommand(exercisesCmd)
}
