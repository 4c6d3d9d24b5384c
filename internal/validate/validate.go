// ABOUTME: Schema validation for entities before they reach any store.
// ABOUTME: Walks object/array schemas for field paths and checks leaves with jsonschema.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/harperreed/lift/internal/models"
)

// FieldError is one failing field.
type FieldError struct {
	Path    string
	Message string
}

func (f FieldError) String() string {
	if f.Path == "" {
		return f.Message
	}
	return f.Path + ": " + f.Message
}

// ValidationError lists every field of an entity that failed its schema.
type ValidationError struct {
	Entity Kind
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// resolved holds the compiled form of every leaf schema.
var resolved = map[*jsonschema.Schema]*jsonschema.Resolved{}

func init() {
	for _, s := range schemasByKind {
		resolveLeaves(s)
	}
}

func resolveLeaves(s *jsonschema.Schema) {
	switch s.Type {
	case "object":
		for _, p := range s.Properties {
			resolveLeaves(p)
		}
		if s.AdditionalProperties != nil {
			resolveLeaves(s.AdditionalProperties)
		}
	case "array":
		resolveLeaves(s.Items)
	default:
		if _, ok := resolved[s]; ok {
			return
		}
		r, err := s.Resolve(nil)
		if err != nil {
			panic(fmt.Sprintf("resolve schema %q: %v", s.Description, err))
		}
		resolved[s] = r
	}
}

// Workout validates a workout tree.
func Workout(w models.Workout) error { return value(KindWorkout, w) }

// Routine validates a routine and its exercises.
func Routine(r models.Routine) error { return value(KindRoutine, r) }

// ProgressEntry validates a progress entry and its measurements.
func ProgressEntry(e models.ProgressEntry) error { return value(KindProgress, e) }

// Profile validates a user profile. All three fields are required.
func Profile(p models.UserProfile) error { return value(KindProfile, p) }

// Theme validates a theme key.
func Theme(key string) error { return value(KindTheme, key) }

// Document validates raw JSON against the schema for kind. It is used for
// data that has not been decoded into a model yet, such as imports.
func Document(kind Kind, raw []byte) error {
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return &ValidationError{
			Entity: kind,
			Fields: []FieldError{{Message: "invalid JSON: " + err.Error()}},
		}
	}
	return check(kind, instance)
}

// value checks a typed value in its JSON form, so the schema sees exactly
// what would be stored.
func value(kind Kind, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &ValidationError{
			Entity: kind,
			Fields: []FieldError{{Message: "cannot encode: " + err.Error()}},
		}
	}
	return Document(kind, data)
}

func check(kind Kind, instance any) error {
	schema, ok := schemasByKind[kind]
	if !ok {
		return fmt.Errorf("no schema for %q", kind)
	}

	var fields []FieldError
	rootPath := ""
	if schema.Type != "object" && schema.Type != "array" {
		rootPath = string(kind)
	}
	walk(schema, instance, rootPath, &fields)
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Entity: kind, Fields: fields}
}

func walk(s *jsonschema.Schema, v any, path string, fields *[]FieldError) {
	switch s.Type {
	case "object":
		obj, ok := v.(map[string]any)
		if !ok {
			*fields = append(*fields, FieldError{Path: path, Message: "must be an object"})
			return
		}
		for _, key := range s.Required {
			if _, present := obj[key]; !present {
				*fields = append(*fields, FieldError{Path: join(path, key), Message: "is required"})
			}
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			child, known := s.Properties[key]
			if !known {
				child = s.AdditionalProperties
			}
			if child == nil {
				continue
			}
			walk(child, obj[key], join(path, key), fields)
		}

	case "array":
		// nil slices encode as null
		if v == nil {
			return
		}
		items, ok := v.([]any)
		if !ok {
			*fields = append(*fields, FieldError{Path: path, Message: "must be a list"})
			return
		}
		for i, item := range items {
			walk(s.Items, item, fmt.Sprintf("%s[%d]", path, i), fields)
		}

	default:
		if err := resolved[s].Validate(v); err != nil {
			*fields = append(*fields, FieldError{Path: path, Message: s.Description})
		}
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
