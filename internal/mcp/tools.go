// ABOUTME: MCP tool implementations for workouts, routines, progress, profile and theme.
// ABOUTME: Every write goes through the state containers so validation always runs.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/lift/internal/catalog"
	"github.com/harperreed/lift/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Record a finished workout with its exercises and sets",
	}, s.handleLogWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List recent workouts, newest first",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout with all its exercises and sets",
	}, s.handleGetWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_routine",
		Description: "Create a reusable routine of exercises with target sets and reps",
	}, s.handleCreateRoutine)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_routine",
		Description: "Replace an existing routine",
	}, s.handleUpdateRoutine)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_routines",
		Description: "List routines, most recently created first",
	}, s.handleListRoutines)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_routine",
		Description: "Delete a routine",
	}, s.handleDeleteRoutine)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_routine",
		Description: "Build the exercises and placeholder sets for a new session from a routine",
	}, s.handleStartRoutine)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_progress",
		Description: "Record body weight and optional measurements in cm",
	}, s.handleAddProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_progress",
		Description: "List progress entries, newest first",
	}, s.handleListProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_progress",
		Description: "Delete a progress entry",
	}, s.handleDeleteProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the user profile",
	}, s.handleGetProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_profile",
		Description: "Replace the user profile (age, height in cm, initial weight in kg)",
	}, s.handleUpdateProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_theme",
		Description: "Select the accent theme",
	}, s.handleSetTheme)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List catalog exercises, optionally filtered by primary muscle",
	}, s.handleListExercises)
}

// Tool input/output types

type setInput struct {
	Reps      string `json:"reps" jsonschema:"Repetitions"`
	Weight    string `json:"weight,omitempty" jsonschema:"Weight in kg"`
	Completed bool   `json:"completed,omitempty" jsonschema:"Whether the set was done"`
}

type exerciseInput struct {
	ExerciseID string     `json:"exercise_id" jsonschema:"Catalog exercise id"`
	Name       string     `json:"name,omitempty" jsonschema:"Display name, defaults to the catalog name"`
	Sets       []setInput `json:"sets,omitempty" jsonschema:"Sets in order"`
}

type logWorkoutInput struct {
	Name      string          `json:"name" jsonschema:"Workout name"`
	Duration  string          `json:"duration,omitempty" jsonschema:"Duration as display text, e.g. 45 min"`
	Exercises []exerciseInput `json:"exercises,omitempty" jsonschema:"Exercises in order"`
}

type workoutOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Volume  string `json:"volume"`
	Message string `json:"message"`
}

type listInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type idInput struct {
	ID string `json:"id" jsonschema:"Entity ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type routineExerciseInput struct {
	ExerciseID   string `json:"exercise_id" jsonschema:"Catalog exercise id"`
	Name         string `json:"name,omitempty" jsonschema:"Display name, defaults to the catalog name"`
	TargetSets   string `json:"target_sets" jsonschema:"Number of sets"`
	TargetReps   string `json:"target_reps" jsonschema:"Reps per set"`
	TargetWeight string `json:"target_weight,omitempty" jsonschema:"Weight per set in kg"`
	Notes        string `json:"notes,omitempty" jsonschema:"Notes"`
}

type routineInput struct {
	ID          string                 `json:"id,omitempty" jsonschema:"Routine ID, required for update_routine"`
	Name        string                 `json:"name" jsonschema:"Routine name"`
	Description string                 `json:"description,omitempty" jsonschema:"Description"`
	Exercises   []routineExerciseInput `json:"exercises,omitempty" jsonschema:"Exercises in order"`
}

type routineOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Exercises int    `json:"exercises"`
	Message   string `json:"message"`
}

type addProgressInput struct {
	Weight       string            `json:"weight" jsonschema:"Body weight in kg"`
	Measurements map[string]string `json:"measurements,omitempty" jsonschema:"Measurements in cm keyed by name (neck, chest, waist, bicepLeft, ...)"`
	PhotoURI     string            `json:"photo_uri,omitempty" jsonschema:"Progress photo location"`
}

type progressOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type profileInput struct {
	Age           string `json:"age" jsonschema:"Age in years"`
	Height        string `json:"height" jsonschema:"Height in cm"`
	InitialWeight string `json:"initial_weight" jsonschema:"Starting weight in kg"`
}

type themeInput struct {
	Theme string `json:"theme" jsonschema:"One of azul, naranja, verde, morado, rojo"`
}

type listExercisesInput struct {
	Muscle string `json:"muscle,omitempty" jsonschema:"Primary muscle filter"`
}

// Tool handlers

func (s *Server) millis() int64 { return s.now().UnixMilli() }

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	now := s.now()
	w := models.Workout{
		ID:        s.newID(),
		Date:      now.Format(models.DateLayout),
		Timestamp: now.UnixMilli(),
		Name:      input.Name,
		Duration:  input.Duration,
		Exercises: make([]models.WorkoutExercise, 0, len(input.Exercises)),
	}
	for _, ex := range input.Exercises {
		we := models.WorkoutExercise{
			ID:         s.newID(),
			ExerciseID: ex.ExerciseID,
			Name:       catalog.SnapshotName(ex.ExerciseID, ex.Name),
			Sets:       make([]models.WorkoutSet, 0, len(ex.Sets)),
		}
		for _, set := range ex.Sets {
			we.Sets = append(we.Sets, models.WorkoutSet{
				ID:        s.newID(),
				Reps:      models.NumericString(set.Reps),
				Weight:    models.NumericString(set.Weight),
				Completed: set.Completed,
			})
		}
		w.Exercises = append(w.Exercises, we)
	}

	saved, err := s.app.WorkoutState.AddWorkout(ctx, w)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, workoutOutput{
		ID:      saved.ID,
		Name:    saved.Name,
		Volume:  saved.Volume,
		Message: fmt.Sprintf("Logged %s: %s (ID: %s)", saved.Name, saved.Volume, saved.ID),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	workouts := s.app.WorkoutState.Workouts()
	if len(workouts) == 0 {
		return nil, map[string]any{"message": "No workouts found."}, nil
	}
	if len(workouts) > input.Limit {
		workouts = workouts[:input.Limit]
	}
	return nil, map[string]any{"workouts": workouts, "count": len(workouts)}, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, any, error) {
	w, err := s.app.Workouts.Get(ctx, input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("workout not found: %s", input.ID)
	}
	return nil, w, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.app.WorkoutState.DeleteWorkout(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted workout: %s", input.ID)}, nil
}

func (s *Server) routineFromInput(id string, createdAt int64, input routineInput) models.Routine {
	r := models.Routine{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   createdAt,
		Exercises:   make([]models.RoutineExercise, 0, len(input.Exercises)),
	}
	for _, ex := range input.Exercises {
		r.Exercises = append(r.Exercises, models.RoutineExercise{
			ExerciseID:   ex.ExerciseID,
			Name:         catalog.SnapshotName(ex.ExerciseID, ex.Name),
			TargetSets:   models.NumericString(ex.TargetSets),
			TargetReps:   models.NumericString(ex.TargetReps),
			TargetWeight: models.NumericString(ex.TargetWeight),
			Notes:        ex.Notes,
		})
	}
	return r
}

func (s *Server) handleCreateRoutine(ctx context.Context, req *mcp.CallToolRequest, input routineInput) (*mcp.CallToolResult, routineOutput, error) {
	r := s.routineFromInput(s.newID(), s.millis(), input)
	saved, err := s.app.WorkoutState.AddRoutine(ctx, r)
	if err != nil {
		return nil, routineOutput{}, fmt.Errorf("failed to create routine: %w", err)
	}
	return nil, routineOutput{
		ID:        saved.ID,
		Name:      saved.Name,
		Exercises: len(saved.Exercises),
		Message:   fmt.Sprintf("Created routine %s (ID: %s)", saved.Name, saved.ID),
	}, nil
}

func (s *Server) handleUpdateRoutine(ctx context.Context, req *mcp.CallToolRequest, input routineInput) (*mcp.CallToolResult, routineOutput, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, routineOutput{}, fmt.Errorf("id is required")
	}
	existing, ok := s.app.WorkoutState.Routine(input.ID)
	if !ok {
		return nil, routineOutput{}, fmt.Errorf("routine not found: %s", input.ID)
	}

	r := s.routineFromInput(input.ID, existing.CreatedAt, input)
	saved, err := s.app.WorkoutState.UpdateRoutine(ctx, input.ID, r)
	if err != nil {
		return nil, routineOutput{}, fmt.Errorf("failed to update routine: %w", err)
	}
	return nil, routineOutput{
		ID:        saved.ID,
		Name:      saved.Name,
		Exercises: len(saved.Exercises),
		Message:   fmt.Sprintf("Updated routine %s", saved.Name),
	}, nil
}

func (s *Server) handleListRoutines(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	routines := s.app.WorkoutState.Routines()
	if len(routines) == 0 {
		return nil, map[string]any{"message": "No routines found."}, nil
	}
	if input.Limit > 0 && len(routines) > input.Limit {
		routines = routines[:input.Limit]
	}
	return nil, map[string]any{"routines": routines, "count": len(routines)}, nil
}

func (s *Server) handleDeleteRoutine(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.app.WorkoutState.DeleteRoutine(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete routine: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted routine: %s", input.ID)}, nil
}

func (s *Server) handleStartRoutine(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, any, error) {
	exercises, err := s.app.WorkoutState.StartRoutine(input.ID, s.newID)
	if err != nil {
		return nil, nil, fmt.Errorf("routine not found: %s", input.ID)
	}
	return nil, map[string]any{"routine_id": input.ID, "exercises": exercises}, nil
}

func (s *Server) handleAddProgress(ctx context.Context, req *mcp.CallToolRequest, input addProgressInput) (*mcp.CallToolResult, progressOutput, error) {
	now := s.now()
	e := models.ProgressEntry{
		ID:        s.newID(),
		Date:      now.Format(models.DateLayout),
		Timestamp: now.UnixMilli(),
		Weight:    models.NumericString(input.Weight),
		PhotoURI:  input.PhotoURI,
	}
	if len(input.Measurements) > 0 {
		e.Measurements = make(map[string]models.NumericString, len(input.Measurements))
		for k, v := range input.Measurements {
			e.Measurements[k] = models.NumericString(v)
		}
	}

	saved, err := s.app.ProgressState.AddEntry(ctx, e)
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("failed to add progress entry: %w", err)
	}
	return nil, progressOutput{
		ID:      saved.ID,
		Message: fmt.Sprintf("Recorded %s kg with %d measurements (ID: %s)", saved.Weight, len(saved.Measurements), saved.ID),
	}, nil
}

func (s *Server) handleListProgress(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	entries := s.app.ProgressState.Entries()
	if len(entries) == 0 {
		return nil, map[string]any{"message": "No progress entries found."}, nil
	}
	if len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}
	return nil, map[string]any{"entries": entries, "count": len(entries)}, nil
}

func (s *Server) handleDeleteProgress(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.app.ProgressState.RemoveEntry(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete progress entry: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted progress entry: %s", input.ID)}, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	p, ok := s.app.ProgressState.Profile()
	if !ok {
		return nil, map[string]any{"message": "No profile saved."}, nil
	}
	return nil, p, nil
}

func (s *Server) handleUpdateProfile(ctx context.Context, req *mcp.CallToolRequest, input profileInput) (*mcp.CallToolResult, simpleOutput, error) {
	p := models.UserProfile{
		Age:           models.NumericString(input.Age),
		Height:        models.NumericString(input.Height),
		InitialWeight: models.NumericString(input.InitialWeight),
	}
	if _, err := s.app.ProgressState.UpdateProfile(ctx, p); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return nil, simpleOutput{Message: "Profile updated"}, nil
}

func (s *Server) handleSetTheme(ctx context.Context, req *mcp.CallToolRequest, input themeInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.app.ThemeState.SetTheme(ctx, models.ThemeKey(input.Theme)); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to set theme: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Theme set to %s", s.app.ThemeState.Palette().Name)}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	if input.Muscle == "" {
		return nil, map[string]any{"exercises": catalog.All()}, nil
	}
	exercises := catalog.ByMuscle(input.Muscle)
	if len(exercises) == 0 {
		return nil, map[string]any{"message": fmt.Sprintf("No exercises for %s.", input.Muscle)}, nil
	}
	return nil, map[string]any{"exercises": exercises}, nil
}
