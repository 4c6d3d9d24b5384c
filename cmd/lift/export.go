// ABOUTME: CLI commands for exporting and importing lift data.
// ABOUTME: Supports JSON, YAML, and Markdown export and validated JSON import.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/migrate"
	"github.com/harperreed/lift/internal/persist"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export lift data",
	Long: `Export workouts, routines, progress and profile.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include data since this date (markdown only)

EXAMPLES:

  lift export json                        # Export all data as JSON
  lift export json -o backup.json         # Save to file
  lift export yaml                        # Export as YAML
  lift export markdown --since 2026-01-01 # Export data from 2026 onward`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := persist.Export(cmd.Context(), liftApp.Backend)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var data []byte
		switch args[0] {
		case "json":
			data, err = snap.JSON()
		case "yaml":
			data, err = snap.YAML()
		case "markdown":
			if exportSince == "" {
				data = []byte(snap.Markdown(nil))
				break
			}
			t, perr := parseTime(exportSince)
			if perr != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
			}
			data = []byte(snap.Markdown(&t))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import lift data from JSON",
	Long: `Import data from a JSON file written by 'lift export json'.

Every item is validated before anything is written. Items with an id that
already exists replace the stored one.

EXAMPLES:

  lift import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		summary, err := persist.Import(cmd.Context(), liftApp.Backend, data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		liftApp.Load(cmd.Context())

		color.Green("✓ Imported from %s", args[0])
		fmt.Printf("  %s\n", migrate.Summary(summary))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
