// ABOUTME: Export and import of all data held by a backend.
// ABOUTME: Supports JSON, YAML and Markdown export; JSON import is validated before any write.
package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/validate"
	"gopkg.in/yaml.v3"
)

// ExportVersion is written into every snapshot.
const ExportVersion = "1.0"

// Snapshot is the full export format.
type Snapshot struct {
	Version    string                 `json:"version" yaml:"version"`
	ExportedAt time.Time              `json:"exported_at" yaml:"exported_at"`
	Tool       string                 `json:"tool" yaml:"tool"`
	Backend    string                 `json:"backend" yaml:"backend"`
	Profile    *models.UserProfile    `json:"profile,omitempty" yaml:"profile,omitempty"`
	Workouts   []models.Workout       `json:"workouts" yaml:"workouts"`
	Routines   []models.Routine       `json:"routines" yaml:"routines"`
	Progress   []models.ProgressEntry `json:"progress" yaml:"progress"`
}

// Export reads everything from b.
func Export(ctx context.Context, b Backend) (*Snapshot, error) {
	workouts, err := b.ListWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	routines, err := b.ListRoutines(ctx)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	progress, err := b.ListProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	profile, err := b.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &Snapshot{
		Version:    ExportVersion,
		ExportedAt: time.Now().UTC(),
		Tool:       "lift",
		Backend:    b.Name(),
		Profile:    profile,
		Workouts:   workouts,
		Routines:   routines,
		Progress:   progress,
	}, nil
}

// JSON renders the snapshot as indented JSON.
func (s *Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// YAML renders the snapshot as YAML.
func (s *Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// Markdown renders a readable report. When since is set, only workouts and
// progress entries at or after it are included.
func (s *Snapshot) Markdown(since *time.Time) string {
	var sb strings.Builder
	keep := func(ts int64) bool {
		return since == nil || ts >= since.UnixMilli()
	}

	sb.WriteString(fmt.Sprintf("# Lift Export - %s\n\n", s.ExportedAt.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", s.ExportedAt.Format(time.RFC3339)))

	if s.Profile != nil {
		sb.WriteString("## Profile\n\n")
		sb.WriteString("| Age | Height (cm) | Initial Weight (kg) |\n")
		sb.WriteString("|-----|-------------|---------------------|\n")
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n\n", s.Profile.Age, s.Profile.Height, s.Profile.InitialWeight))
	}

	var workouts []models.Workout
	for _, w := range s.Workouts {
		if keep(w.Timestamp) {
			workouts = append(workouts, w)
		}
	}
	var progress []models.ProgressEntry
	for _, e := range s.Progress {
		if keep(e.Timestamp) {
			progress = append(progress, e)
		}
	}

	if len(workouts) > 0 {
		sb.WriteString("## Workouts\n\n")
		sb.WriteString("| Date | Name | Duration | Volume | Exercises |\n")
		sb.WriteString("|------|------|----------|--------|-----------|\n")
		for _, w := range workouts {
			names := make([]string, 0, len(w.Exercises))
			for _, ex := range w.Exercises {
				names = append(names, fmt.Sprintf("%s (%d/%d)", ex.Name, len(ex.CompletedSets()), len(ex.Sets)))
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
				w.Date, w.Name, w.Duration, w.Volume, strings.Join(names, ", ")))
		}
		sb.WriteString("\n")
	}

	if len(s.Routines) > 0 {
		sb.WriteString("## Routines\n\n")
		for _, r := range s.Routines {
			sb.WriteString(fmt.Sprintf("### %s\n\n", r.Name))
			if r.Description != "" {
				sb.WriteString(r.Description + "\n\n")
			}
			for _, ex := range r.Exercises {
				line := fmt.Sprintf("- %s: %s x %s", ex.Name, ex.TargetSets, ex.TargetReps)
				if !ex.TargetWeight.IsEmpty() {
					line += fmt.Sprintf(" @ %s kg", ex.TargetWeight)
				}
				sb.WriteString(line + "\n")
			}
			sb.WriteString("\n")
		}
	}

	if len(progress) > 0 {
		sb.WriteString("## Progress\n\n")
		sb.WriteString("| Date | Weight (kg) | Measurements (cm) |\n")
		sb.WriteString("|------|-------------|-------------------|\n")
		for _, e := range progress {
			parts := make([]string, 0, len(e.Measurements))
			for _, k := range e.MeasurementKeys() {
				parts = append(parts, fmt.Sprintf("%s %s", models.MeasurementLabel(k), e.Measurements[k]))
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", e.Date, e.Weight, strings.Join(parts, ", ")))
		}
	}

	return sb.String()
}

// importDocument keeps items raw so each can be checked against its schema
// before anything is decoded or written.
type importDocument struct {
	Profile  json.RawMessage   `json:"profile"`
	Workouts []json.RawMessage `json:"workouts"`
	Routines []json.RawMessage `json:"routines"`
	Progress []json.RawMessage `json:"progress"`
}

// Import validates every item of a JSON snapshot and then upserts them into
// b. Nothing is written when any item is invalid.
func Import(ctx context.Context, b Backend, data []byte) (*CopySummary, error) {
	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}

	hasProfile := len(doc.Profile) > 0 && string(doc.Profile) != "null"
	if err := validateItems(doc, hasProfile); err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	summary := &CopySummary{}
	for _, w := range snap.Workouts {
		if err := b.UpsertWorkout(ctx, w); err != nil {
			return summary, fmt.Errorf("import workout %s: %w", w.ID, err)
		}
		summary.Workouts++
	}
	for _, r := range snap.Routines {
		if err := b.UpsertRoutine(ctx, r); err != nil {
			return summary, fmt.Errorf("import routine %s: %w", r.ID, err)
		}
		summary.Routines++
	}
	for _, e := range snap.Progress {
		if err := b.UpsertProgress(ctx, e); err != nil {
			return summary, fmt.Errorf("import progress entry %s: %w", e.ID, err)
		}
		summary.ProgressEntries++
	}
	if hasProfile && snap.Profile != nil {
		if err := b.SaveProfile(ctx, *snap.Profile); err != nil {
			return summary, fmt.Errorf("import profile: %w", err)
		}
		summary.Profile = true
	}
	return summary, nil
}

func validateItems(doc importDocument, hasProfile bool) error {
	groups := []struct {
		name  string
		kind  validate.Kind
		items []json.RawMessage
	}{
		{"workouts", validate.KindWorkout, doc.Workouts},
		{"routines", validate.KindRoutine, doc.Routines},
		{"progress", validate.KindProgress, doc.Progress},
	}
	for _, g := range groups {
		for i, raw := range g.items {
			if err := validate.Document(g.kind, raw); err != nil {
				return fmt.Errorf("%s[%d]: %w", g.name, i, err)
			}
		}
	}
	if hasProfile {
		if err := validate.Document(validate.KindProfile, doc.Profile); err != nil {
			return fmt.Errorf("profile: %w", err)
		}
	}
	return nil
}
