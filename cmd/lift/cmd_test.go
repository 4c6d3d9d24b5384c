// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests spec parsing, id prefixes, command wiring and a full in-process workflow.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/lift/internal/app"
	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/persist"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "date and time with space", input: "2026-01-31 08:30"},
		{name: "date and time with T", input: "2026-01-31T08:30"},
		{name: "date only", input: "2026-01-31"},
		{name: "RFC3339", input: "2026-01-31T08:30:00Z"},
		{name: "RFC3339 with offset", input: "2026-01-31T08:30:00+05:00"},
		{name: "invalid format", input: "31-01-2026", wantErr: true},
		{name: "invalid random string", input: "not a date", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTime(%q) unexpected error: %v", tt.input, err)
			}
			if result.Year() != 2026 || result.Month() != 1 || result.Day() != 31 {
				t.Errorf("parseTime(%q) = %v, want 2026-01-31", tt.input, result)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"", 5, ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{name: "needs padding", input: "hi", length: 5, want: "hi   "},
		{name: "exact length", input: "hello", length: 5, want: "hello"},
		{name: "longer than length", input: "hello world", length: 5, want: "hello world"},
		{name: "empty string", input: "", length: 5, want: "     "},
		{name: "zero length", input: "hello", length: 0, want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.input, tt.length)
			if got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestParseSetSpec(t *testing.T) {
	tests := []struct {
		input   string
		want    setSpec
		wantErr bool
	}{
		{input: "1:100x5", want: setSpec{ExerciseID: "1", Weight: "100", Reps: "5", Completed: true}},
		{input: "7:82.5X8", want: setSpec{ExerciseID: "7", Weight: "82.5", Reps: "8", Completed: true}},
		{input: "1:200x1:skip", want: setSpec{ExerciseID: "1", Weight: "200", Reps: "1"}},
		{input: "my_curl:0x12", want: setSpec{ExerciseID: "my_curl", Weight: "0", Reps: "12", Completed: true}},
		{input: "1:100", wantErr: true},
		{input: "1:heavyx5", wantErr: true},
		{input: "1:100x5:later", wantErr: true},
		{input: ":100x5", wantErr: true},
		{input: "100x5", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseSetSpec(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSetSpec(%q) expected error, got %+v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSetSpec(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSetSpec(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestGroupSets(t *testing.T) {
	specs := []setSpec{
		{ExerciseID: "1", Weight: "100", Reps: "5", Completed: true},
		{ExerciseID: "3", Weight: "14", Reps: "12", Completed: true},
		{ExerciseID: "1", Weight: "80", Reps: "10", Completed: true},
	}
	n := 0
	newID := func() string { n++; return fmt.Sprintf("id-%d", n) }
	name := func(id string) string { return "ex " + id }

	got := groupSets(specs, name, newID)
	if len(got) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(got))
	}
	if got[0].ExerciseID != "1" || len(got[0].Sets) != 2 {
		t.Errorf("first exercise = %s with %d sets, want 1 with 2", got[0].ExerciseID, len(got[0].Sets))
	}
	if got[0].Sets[1].Weight != "80" {
		t.Errorf("second set weight = %s, want 80", got[0].Sets[1].Weight)
	}
	if got[1].Name != "ex 3" {
		t.Errorf("name = %q, want %q", got[1].Name, "ex 3")
	}
	if models.Volume(got) != 1468 {
		t.Errorf("volume = %v, want 1468", models.Volume(got))
	}
}

func TestParseRoutineExercise(t *testing.T) {
	ex, err := parseRoutineExercise("7:4x10@80")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.ExerciseID != "7" || ex.TargetSets != "4" || ex.TargetReps != "10" || ex.TargetWeight != "80" {
		t.Errorf("got %+v", ex)
	}

	ex, err = parseRoutineExercise("10:3x8-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.TargetReps != "8-12" || !ex.TargetWeight.IsEmpty() {
		t.Errorf("got %+v", ex)
	}

	for _, bad := range []string{"7", "7:4", "7:ax10", "7:4x10@heavy", ":4x10"} {
		if _, err := parseRoutineExercise(bad); err == nil {
			t.Errorf("parseRoutineExercise(%q) expected error", bad)
		}
	}
}

func TestParseMeasurement(t *testing.T) {
	key, value, err := parseMeasurement("waist=84.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "waist" || value != "84.5" {
		t.Errorf("got %s=%s", key, value)
	}

	for _, bad := range []string{"waist", "=84", "waist=big", "weight=80", "photoUri=1"} {
		if _, _, err := parseMeasurement(bad); err == nil {
			t.Errorf("parseMeasurement(%q) expected error", bad)
		}
	}
}

func TestResolveID(t *testing.T) {
	ids := []string{"abc12345-0000", "abd99999-0000", "abc"}

	tests := []struct {
		prefix  string
		want    string
		wantErr bool
	}{
		{prefix: "abc", want: "abc"},
		{prefix: "abc1", want: "abc12345-0000"},
		{prefix: "abd", want: "abd99999-0000"},
		{prefix: "ab", wantErr: true},
		{prefix: "zzz", wantErr: true},
	}

	for _, tt := range tests {
		got, err := resolveID("workout", tt.prefix, ids)
		if tt.wantErr {
			if err == nil {
				t.Errorf("resolveID(%q) expected error, got %q", tt.prefix, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("resolveID(%q) = %q, %v; want %q", tt.prefix, got, err, tt.want)
		}
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "lift" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "lift")
	}
	for _, name := range []string{"backend", "data-dir", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected --%s persistent flag", name)
		}
	}
}

func TestSubcommands(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		want []string
	}{
		{workoutCmd, []string{"log", "list", "show", "delete"}},
		{routineCmd, []string{"create", "list", "show", "update", "start", "delete"}},
		{progressCmd, []string{"add", "list", "delete"}},
		{profileCmd, []string{"show", "set"}},
		{themeCmd, []string{"show", "list", "set"}},
		{migrateCmd, []string{"status", "run"}},
		{syncCmd, []string{"link", "unlink", "status", "now", "repair", "reset", "wipe"}},
	}

	for _, tt := range tests {
		names := map[string]bool{}
		for _, c := range tt.cmd.Commands() {
			names[c.Name()] = true
		}
		for _, want := range tt.want {
			if !names[want] {
				t.Errorf("Expected %s subcommand %q not found", tt.cmd.Name(), want)
			}
		}
	}
}

func TestCommandsSkippingApp(t *testing.T) {
	for _, c := range []*cobra.Command{exercisesCmd, syncLinkCmd, syncUnlinkCmd, syncRepairCmd, syncResetCmd, syncWipeCmd} {
		if c.Annotations[skipApp] == "" {
			t.Errorf("Expected %s to skip opening the app", c.CommandPath())
		}
	}
	if syncStatusCmd.Annotations[skipApp] != "" {
		t.Error("sync status needs the app")
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	expected := map[string]bool{"json": false, "yaml": false, "markdown": false}
	for _, arg := range exportCmd.ValidArgs {
		if _, ok := expected[arg]; ok {
			expected[arg] = true
		}
	}
	for arg, found := range expected {
		if !found {
			t.Errorf("Expected valid arg %q for exportCmd", arg)
		}
	}
}

// setupCLI points config and data at a temp dir and clears env overrides.
func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv(config.EnvDataDir, dataDir)
	t.Setenv(config.EnvBackend, "")
	t.Setenv(config.EnvFlatStore, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFile, "")
	return dataDir
}

// resetFlags puts every flag back to its default so runs don't leak into
// each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func runLift(t *testing.T, args ...string) {
	t.Helper()
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	if err := Execute(); err != nil {
		t.Fatalf("lift %s: %v", strings.Join(args, " "), err)
	}
}

// exportData opens the data dir, reads everything and closes it again.
func exportData(t *testing.T, dataDir string) *persist.Snapshot {
	t.Helper()
	ctx := context.Background()
	a, err := app.Open(ctx, &config.Config{DataDir: dataDir}, nil)
	if err != nil {
		t.Fatalf("open app: %v", err)
	}
	defer a.Close()

	snap, err := persist.Export(ctx, a.Backend)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	return snap
}

func TestCLIWorkflow(t *testing.T) {
	dataDir := setupCLI(t)

	runLift(t, "routine", "create", "Pierna", "-e", "7:4x10@80", "-e", "10:3x12", "--description", "Fuerza")
	snap := exportData(t, dataDir)
	if len(snap.Routines) != 1 {
		t.Fatalf("expected 1 routine, got %d", len(snap.Routines))
	}
	routine := snap.Routines[0]
	if routine.Exercises[0].Name != "Sentadilla Tradicional" {
		t.Errorf("expected catalog name snapshot, got %q", routine.Exercises[0].Name)
	}

	runLift(t, "workout", "log", "Pierna", "--routine", shortID(routine.ID), "--done", "--duration", "50 min")
	runLift(t, "workout", "log", "Pecho", "--set", "1:100x5", "--set", "1:80x10", "--set", "1:200x1:skip", "--at", "2026-03-01 09:00")
	runLift(t, "progress", "add", "82.5", "-m", "waist=84")
	runLift(t, "profile", "set", "--age", "34", "--height", "178", "--initial-weight", "86")
	runLift(t, "theme", "set", "verde")

	snap = exportData(t, dataDir)
	if len(snap.Workouts) != 2 {
		t.Fatalf("expected 2 workouts, got %d", len(snap.Workouts))
	}
	byName := map[string]models.Workout{}
	for _, w := range snap.Workouts {
		byName[w.Name] = w
	}
	if got := byName["Pierna"].Volume; got != "3200 kg" {
		t.Errorf("routine workout volume = %q, want %q", got, "3200 kg")
	}
	if got := len(byName["Pierna"].Exercises[0].Sets); got != 4 {
		t.Errorf("routine workout first exercise has %d sets, want 4", got)
	}
	pecho := byName["Pecho"]
	if pecho.Volume != "1300 kg" || pecho.Date != "2026-03-01" {
		t.Errorf("Pecho = %s on %s, want 1300 kg on 2026-03-01", pecho.Volume, pecho.Date)
	}
	if pecho.Exercises[0].Name != "Press de Banca" || len(pecho.Exercises[0].Sets) != 3 {
		t.Errorf("unexpected Pecho exercise: %+v", pecho.Exercises[0])
	}
	if len(snap.Progress) != 1 || snap.Progress[0].Measurements["waist"] != "84" {
		t.Errorf("unexpected progress: %+v", snap.Progress)
	}
	if snap.Profile == nil || snap.Profile.Height != "178" {
		t.Errorf("unexpected profile: %+v", snap.Profile)
	}

	backup := filepath.Join(t.TempDir(), "backup.json")
	runLift(t, "export", "json", "-o", backup)
	data, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if !strings.Contains(string(data), "Sentadilla Tradicional") {
		t.Error("backup is missing the routine")
	}

	runLift(t, "routine", "update", routine.ID, "--name", "Pierna pesada")
	snap = exportData(t, dataDir)
	if snap.Routines[0].Name != "Pierna pesada" || len(snap.Routines[0].Exercises) != 2 {
		t.Errorf("update changed more than the name: %+v", snap.Routines[0])
	}

	runLift(t, "routine", "delete", routine.ID)
	runLift(t, "workout", "delete", pecho.ID)
	snap = exportData(t, dataDir)
	if len(snap.Routines) != 0 || len(snap.Workouts) != 1 {
		t.Errorf("after delete: %d routines, %d workouts", len(snap.Routines), len(snap.Workouts))
	}

	runLift(t, "import", backup)
	snap = exportData(t, dataDir)
	if len(snap.Routines) != 1 || len(snap.Workouts) != 2 {
		t.Errorf("after import: %d routines, %d workouts", len(snap.Routines), len(snap.Workouts))
	}
	if snap.Routines[0].Name != "Pierna" {
		t.Errorf("import should restore the backed up routine, got %q", snap.Routines[0].Name)
	}
}

func TestCLIRejectsInvalidRoutine(t *testing.T) {
	dataDir := setupCLI(t)

	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"routine", "create", " "})
	if err := Execute(); err == nil {
		t.Fatal("expected validation error for blank routine name")
	}

	if snap := exportData(t, dataDir); len(snap.Routines) != 0 {
		t.Errorf("rejected routine was stored: %+v", snap.Routines)
	}
}

func TestCLIFlatBackend(t *testing.T) {
	dataDir := setupCLI(t)

	runLift(t, "--backend", "flat", "workout", "log", "Core", "--set", "15:0x60")
	runLift(t, "--backend", "flat", "migrate", "status")

	if _, err := os.Stat(filepath.Join(dataDir, "fitness.db")); !os.IsNotExist(err) {
		t.Errorf("flat backend should not create fitness.db, stat err = %v", err)
	}

	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"--backend", "flat", "migrate", "run"})
	if err := Execute(); err != errNoMigrator {
		t.Errorf("migrate run on flat backend = %v, want %v", err, errNoMigrator)
	}
}
