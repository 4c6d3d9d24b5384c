// ABOUTME: Flat key-value store contract and the key names used by the app.
// ABOUTME: Each collection lives as one JSON document under a single key.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Flat store keys.
const (
	KeyWorkouts = "@workouts"
	KeyRoutines = "@routines"
	KeyProgress = "@progress"
	KeyProfile  = "@profile"
	KeyTheme    = "@theme"

	// KeyProgressEntries and KeyUserProfile are older names for the progress
	// and profile documents. They are still read and folded into the current
	// keys on the next write.
	KeyProgressEntries = "@progress_entries"
	KeyUserProfile     = "@user_profile"

	// KeyMigrated marks that the flat data was copied into the relational store.
	KeyMigrated = "@db_migrated_v1"
)

// Store is a flat key-value store of raw values.
type Store interface {
	// Get returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
