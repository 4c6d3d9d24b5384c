// ABOUTME: MCP resource implementations for the lift store.
// ABOUTME: Provides lift://recent, lift://routines and lift://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/lift/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Resource URIs.
const (
	RecentURI   = "lift://recent"
	RoutinesURI = "lift://routines"
	SummaryURI  = "lift://summary"
)

func (s *Server) registerResources() {
	// lift://recent - last 5 workouts and last 5 progress entries
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         RecentURI,
		Name:        "Recent Training",
		Description: "Last 5 workouts and last 5 progress entries",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         RoutinesURI,
		Name:        "Routines",
		Description: "Every saved routine with its exercises",
		MIMEType:    "application/json",
	}, s.handleRoutinesResource)

	// lift://summary - profile, theme, latest entry and volume totals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         SummaryURI,
		Name:        "Training Summary Dashboard",
		Description: "Profile, theme, latest measurements and training volume",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts := s.app.WorkoutState.Workouts()
	if len(workouts) > 5 {
		workouts = workouts[:5]
	}
	entries := s.app.ProgressState.Entries()
	if len(entries) > 5 {
		entries = entries[:5]
	}

	return jsonResource(RecentURI, map[string]any{
		"workouts": workouts,
		"progress": entries,
	})
}

func (s *Server) handleRoutinesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	routines := s.app.WorkoutState.Routines()
	return jsonResource(RoutinesURI, map[string]any{
		"routines": routines,
		"count":    len(routines),
	})
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts := s.app.WorkoutState.Workouts()
	entries := s.app.ProgressState.Entries()

	var totalVolume float64
	for _, w := range workouts {
		totalVolume += w.TotalVolume()
	}

	result := map[string]any{
		"generated_at": s.now().Format(time.RFC3339),
		"backend":      s.app.Backend.Name(),
		"theme":        s.app.ThemeState.Palette(),
		"total_volume": models.FormatVolume(totalVolume),
		"summary": map[string]int{
			"workouts":         len(workouts),
			"routines":         len(s.app.WorkoutState.Routines()),
			"progress_entries": len(entries),
		},
	}
	if p, ok := s.app.ProgressState.Profile(); ok {
		result["profile"] = p
	}
	if len(workouts) > 0 {
		result["last_workout"] = workouts[0]
	}
	if len(entries) > 0 {
		latest := entries[0]
		measurements := make(map[string]string, len(latest.Measurements))
		for _, k := range latest.MeasurementKeys() {
			measurements[models.MeasurementLabel(k)] = latest.Measurements[k].String() + " " + models.MeasurementUnit
		}
		result["latest_progress"] = map[string]any{
			"date":         latest.Date,
			"weight":       latest.Weight,
			"measurements": measurements,
		}
	}

	return jsonResource(SummaryURI, result)
}
