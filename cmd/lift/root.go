// ABOUTME: Root Cobra command for lift CLI.
// ABOUTME: Loads config, sets up logging and opens the app via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/lift/internal/app"
	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/logging"
	"github.com/spf13/cobra"
)

// skipApp marks commands that must not open the stores, usually because they
// manage the store files themselves.
const skipApp = "lift/skip-app"

var (
	liftApp  *app.App
	closeLog func() error

	flagBackend  string
	flagDataDir  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "lift",
	Short: "Personal strength training log",
	Long: `Lift is a CLI tool for logging strength workouts, routines and body progress.

WHAT IT TRACKS:

  Workouts   finished sessions with exercises and sets (volume in kg)
  Routines   reusable workout templates with target sets, reps and weight
  Progress   body weight and measurements (cm), plus a profile
  Theme      the accent color used by the app (azul, naranja, verde, morado, rojo)

QUICK START:

  $ lift exercises                                   # Browse the exercise catalog
  $ lift routine create "Pierna" --exercise 7:4x10@80
  $ lift workout log "Pierna" --set 7:80x10 --set 7:85x8
  $ lift workout log "Pierna" --routine <id> --done  # Log a routine as prescribed
  $ lift progress add 82.5 -m waist=84               # Weigh in
  $ lift workout list                                # See recent workouts

STORAGE:

  By default data lives in SQLite at ~/.local/share/lift/fitness.db. Data from
  the older key-value store is copied over automatically on first start.
  Use --backend flat (or "backend": "flat" in ~/.config/lift/config.json) to
  keep everything in the key-value store instead.

SYNC:

  Set "flat_store": "charm" in the config to keep the key-value store in
  Charm KV, E2E encrypted and synced across devices.

  $ lift sync link      # Link device to your Charm account
  $ lift sync status    # Check sync status

MCP INTEGRATION:

  Run 'lift mcp' to start the Model Context Protocol server.

  {
    "mcpServers": {
      "lift": { "command": "lift", "args": ["mcp"] }
    }
  }`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip app init for commands that don't need it
		if cmd.Name() == "help" || cmd.Annotations[skipApp] != "" {
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, closer := logging.Setup(logging.Params{
			Level:    cfg.LogLevel,
			JSON:     cfg.LogJSON(),
			FileName: cfg.LogFile,
		})
		closeLog = closer

		liftApp, err = app.Open(cmd.Context(), cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to open lift data: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeApp()
	},
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, nil
}

// closeApp releases the app and the log file. Safe to call twice.
func closeApp() error {
	var err error
	if liftApp != nil {
		err = liftApp.Close()
		liftApp = nil
	}
	if closeLog != nil {
		if cerr := closeLog(); err == nil {
			err = cerr
		}
		closeLog = nil
	}
	return err
}

// Execute runs the root command. The app is closed even when a command fails.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeApp(); err == nil {
		err = cerr
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite or flat")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/lift)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}
