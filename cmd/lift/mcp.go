// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server over the lift services.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/lift/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to stderr, or to the
configured log file.

CONFIGURATION:

  {
    "mcpServers": {
      "lift": {
        "command": "lift",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_workout      Record a finished workout
  list_workouts    List recent workouts
  get_workout      Get a workout with all sets
  delete_workout   Delete a workout
  create_routine   Create a routine
  update_routine   Replace a routine
  list_routines    List routines
  delete_routine   Delete a routine
  start_routine    Planned sets for a routine session
  add_progress     Record weight and measurements
  list_progress    List progress check-ins
  delete_progress  Delete a check-in
  get_profile      Get the user profile
  update_profile   Replace the user profile
  set_theme        Change the accent theme
  list_exercises   Browse the exercise catalog

AVAILABLE RESOURCES:

  lift://recent     Recent workouts
  lift://routines   All routines
  lift://summary    Totals, profile and latest check-in`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(liftApp)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
