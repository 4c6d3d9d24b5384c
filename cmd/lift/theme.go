// ABOUTME: CLI commands for the app's accent theme.
// ABOUTME: Supports show, list, and set subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the accent theme",
	Long: `The accent theme is shared with the app. Valid keys:

  azul, naranja, verde, morado, rojo

Examples:
  lift theme show
  lift theme set verde`,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := liftApp.ThemeState.Palette()
		fmt.Printf("%s  %s %s\n", t.Key, t.Name, color.New(color.Faint).Sprint(t.Color))
		return nil
	},
}

var themeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		current := liftApp.ThemeState.Theme()
		faint := color.New(color.Faint)
		for _, key := range models.AllThemeKeys {
			t := models.Themes[key]
			mark := " "
			if key == current {
				mark = color.GreenString("✓")
			}
			fmt.Printf("%s %s %s %s\n", mark, padRight(string(key), 8), padRight(t.Name, 16), faint.Sprint(t.Color))
		}
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <key>",
	Short:     "Change the theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"azul", "naranja", "verde", "morado", "rojo"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := liftApp.ThemeState.SetTheme(cmd.Context(), models.ThemeKey(args[0])); err != nil {
			return fmt.Errorf("failed to set theme: %w", err)
		}
		color.Green("✓ Theme set to %s", models.Themes[models.ThemeKey(args[0])].Name)
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeSetCmd)
	rootCmd.AddCommand(themeCmd)
}
