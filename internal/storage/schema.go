// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the users, workout tree, routine tree and progress tables.
package storage

// Table names, in parent-before-child order.
const (
	TableUsers            = "users"
	TableWorkouts         = "workouts"
	TableExercises        = "exercises"
	TableSets             = "sets"
	TableRoutines         = "routines"
	TableRoutineExercises = "routine_exercises"
	TableProgress         = "progress"
)

var tables = []string{
	TableUsers, TableWorkouts, TableExercises, TableSets,
	TableRoutines, TableRoutineExercises, TableProgress,
}

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		age TEXT NOT NULL DEFAULT '',
		height TEXT NOT NULL DEFAULT '',
		initial_weight TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		date TEXT NOT NULL DEFAULT '',
		timestamp INTEGER NOT NULL,
		duration TEXT NOT NULL DEFAULT '',
		volume TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		workout_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		exercise_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS sets (
		id TEXT PRIMARY KEY,
		exercise_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		reps TEXT NOT NULL DEFAULT '',
		weight TEXT NOT NULL DEFAULT '',
		completed INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS routines (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS routine_exercises (
		id TEXT PRIMARY KEY,
		routine_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		exercise_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		target_sets TEXT NOT NULL DEFAULT '',
		target_reps TEXT NOT NULL DEFAULT '',
		target_weight TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (routine_id) REFERENCES routines(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS progress (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL DEFAULT '',
		timestamp INTEGER NOT NULL,
		weight TEXT NOT NULL DEFAULT '',
		measurements_json TEXT NOT NULL DEFAULT '{}',
		photo_uri TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_workouts_timestamp ON workouts(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_exercises_workout ON exercises(workout_id, position);
	CREATE INDEX IF NOT EXISTS idx_sets_exercise ON sets(exercise_id, position);
	CREATE INDEX IF NOT EXISTS idx_routines_created ON routines(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_routine_exercises_routine ON routine_exercises(routine_id, position);
	CREATE INDEX IF NOT EXISTS idx_progress_timestamp ON progress(timestamp DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
