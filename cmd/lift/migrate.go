// ABOUTME: CLI commands for the one-time copy from the key-value store to SQLite.
// ABOUTME: The copy runs on startup; these commands show its state and retry it.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/migrate"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

var errNoMigrator = errors.New("migration needs the sqlite backend (current backend is flat)")

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy key-value data into SQLite",
	Long: `Copy workouts, routines, progress and profile from the key-value store
into SQLite.

This runs automatically every time lift starts with the sqlite backend until
it succeeds once. A failed copy is logged and retried on the next start;
items already copied are overwritten, never duplicated.

COMMANDS:

  status   Show whether the copy has completed
  run      Run the copy now`,
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Backend:", liftApp.Backend.Name())
		if liftApp.Migrator == nil {
			color.Yellow("Migration does not apply to the flat backend")
			return nil
		}

		state, err := liftApp.Migrator.State(cmd.Context())
		if err != nil {
			return err
		}
		if state == migrate.Migrated {
			color.Green("✓ %s", state)
		} else {
			color.Yellow("%s", state)
		}

		if liftApp.DB != nil {
			counts, err := liftApp.DB.Counts(cmd.Context())
			if err != nil {
				return err
			}
			for _, table := range []string{storage.TableWorkouts, storage.TableRoutines, storage.TableProgress, storage.TableUsers} {
				fmt.Printf("  %s %d\n", padRight(table+":", 10), counts[table])
			}
		}
		return nil
	},
}

var migrateRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the migration now",
	RunE: func(cmd *cobra.Command, args []string) error {
		if liftApp.Migrator == nil {
			return errNoMigrator
		}

		summary, err := liftApp.Migrator.Run(cmd.Context())
		if err != nil {
			return err
		}
		liftApp.Load(cmd.Context())

		if summary == nil {
			fmt.Println("Already migrated.")
			return nil
		}
		color.Green("✓ Migrated %s", migrate.Summary(summary))
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateStatusCmd)
	migrateCmd.AddCommand(migrateRunCmd)
	rootCmd.AddCommand(migrateCmd)
}
