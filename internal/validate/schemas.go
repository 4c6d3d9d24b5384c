// ABOUTME: JSON schemas for every persisted entity shape.
// ABOUTME: Leaf schemas carry the human message reported when a value fails them.
package validate

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/harperreed/lift/internal/models"
)

// Kind names an entity shape that can be validated.
type Kind string

const (
	KindWorkout  Kind = "workout"
	KindRoutine  Kind = "routine"
	KindProgress Kind = "progress entry"
	KindProfile  Kind = "profile"
	KindTheme    Kind = "theme"
)

func intPtr(n int) *int { return &n }

// Leaf schemas. Description is the message shown for a failing value.
var (
	anyString = &jsonschema.Schema{
		Type:        "string",
		Description: "must be a string",
	}
	nonEmptyString = &jsonschema.Schema{
		Type:        "string",
		MinLength:   intPtr(1),
		Pattern:     `\S`,
		Description: "must not be empty",
	}
	timestampMillis = &jsonschema.Schema{
		Type:        "number",
		Description: "must be a timestamp in milliseconds",
	}
	numericText = &jsonschema.Schema{
		Types:       []string{"string", "number"},
		Description: "must be a number or numeric text",
	}
	requiredNumericText = &jsonschema.Schema{
		Types:       []string{"string", "number"},
		MinLength:   intPtr(1),
		Pattern:     `\S`,
		Description: "must not be empty",
	}
	flag = &jsonschema.Schema{
		Type:        "boolean",
		Description: "must be true or false",
	}
	themeKey = &jsonschema.Schema{
		Type:        "string",
		Enum:        themeEnum(),
		Description: fmt.Sprintf("must be one of %v", models.AllThemeKeys),
	}
)

func themeEnum() []any {
	out := make([]any, 0, len(models.AllThemeKeys))
	for _, k := range models.AllThemeKeys {
		out = append(out, string(k))
	}
	return out
}

var workoutSetSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"id", "reps", "weight", "completed"},
	Properties: map[string]*jsonschema.Schema{
		"id":        anyString,
		"reps":      numericText,
		"weight":    numericText,
		"completed": flag,
	},
}

var workoutExerciseSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"id", "exerciseId", "name", "sets"},
	Properties: map[string]*jsonschema.Schema{
		"id":         anyString,
		"exerciseId": anyString,
		"name":       nonEmptyString,
		"sets":       {Type: "array", Items: workoutSetSchema},
	},
}

var workoutSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"id", "date", "timestamp", "name", "exercises"},
	Properties: map[string]*jsonschema.Schema{
		"id":        nonEmptyString,
		"date":      anyString,
		"timestamp": timestampMillis,
		"name":      nonEmptyString,
		"duration":  anyString,
		"volume":    anyString,
		"exercises": {Type: "array", Items: workoutExerciseSchema},
	},
}

var routineExerciseSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"exerciseId", "name", "targetSets", "targetReps"},
	Properties: map[string]*jsonschema.Schema{
		"exerciseId":   anyString,
		"name":         nonEmptyString,
		"targetSets":   numericText,
		"targetReps":   numericText,
		"targetWeight": numericText,
		"notes":        anyString,
	},
}

var routineSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"id", "name", "exercises", "createdAt"},
	Properties: map[string]*jsonschema.Schema{
		"id":          nonEmptyString,
		"name":        nonEmptyString,
		"description": anyString,
		"exercises":   {Type: "array", Items: routineExerciseSchema},
		"createdAt":   timestampMillis,
	},
}

// progressSchema allows any extra key as long as it holds a measurement.
var progressSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"id", "date", "timestamp", "weight"},
	Properties: map[string]*jsonschema.Schema{
		"id":        nonEmptyString,
		"date":      anyString,
		"timestamp": timestampMillis,
		"weight":    numericText,
		"photoUri":  anyString,
		"photos":    {Type: "array", Items: anyString},
	},
	AdditionalProperties: numericText,
}

var profileSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"age", "height", "initialWeight"},
	Properties: map[string]*jsonschema.Schema{
		"age":           requiredNumericText,
		"height":        requiredNumericText,
		"initialWeight": requiredNumericText,
	},
}

var schemasByKind = map[Kind]*jsonschema.Schema{
	KindWorkout:  workoutSchema,
	KindRoutine:  routineSchema,
	KindProgress: progressSchema,
	KindProfile:  profileSchema,
	KindTheme:    themeKey,
}
