// ABOUTME: Tests specific to the flat backend.
// ABOUTME: Covers older key names, prepend-on-insert and the stored JSON shape.
package persist

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/harperreed/lift/internal/kv"
	"github.com/harperreed/lift/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatPrependsNewItems(t *testing.T) {
	ctx := context.Background()
	f, store := setupFlat(t)

	require.NoError(t, f.UpsertRoutine(ctx, testRoutine("r1", 10)))
	require.NoError(t, f.UpsertRoutine(ctx, testRoutine("r2", 10)))

	raw, err := store.Get(ctx, kv.KeyRoutines)
	require.NoError(t, err)
	var stored []models.Routine
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, "r2", stored[0].ID)
}

func TestFlatReadsLegacyProgressKey(t *testing.T) {
	ctx := context.Background()
	f, store := setupFlat(t)

	legacy := []models.ProgressEntry{testEntry("old", 1), testEntry("dup", 2)}
	require.NoError(t, kv.SetJSON(ctx, store, kv.KeyProgressEntries, legacy))
	dup := testEntry("dup", 2)
	dup.Weight = "70"
	require.NoError(t, kv.SetJSON(ctx, store, kv.KeyProgress, []models.ProgressEntry{dup}))

	es, err := f.ListProgress(ctx)
	require.NoError(t, err)
	require.Len(t, es, 2)
	assert.Equal(t, "dup", es[0].ID)
	assert.Equal(t, models.NumericString("70"), es[0].Weight, "current key wins")

	// a write folds the older key in and removes it
	require.NoError(t, f.DeleteProgress(ctx, "old"))
	_, err = store.Get(ctx, kv.KeyProgressEntries)
	assert.ErrorIs(t, err, kv.ErrNotFound)

	es, err = f.ListProgress(ctx)
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.Equal(t, "dup", es[0].ID)
}

func TestFlatReadsLegacyProfileKey(t *testing.T) {
	ctx := context.Background()
	f, store := setupFlat(t)

	old := models.UserProfile{Age: "40", Height: "170", InitialWeight: "90"}
	require.NoError(t, kv.SetJSON(ctx, store, kv.KeyUserProfile, old))

	got, err := f.GetProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, old, *got)

	updated := models.UserProfile{Age: "41", Height: "170", InitialWeight: "88"}
	require.NoError(t, f.SaveProfile(ctx, updated))
	_, err = store.Get(ctx, kv.KeyUserProfile)
	assert.ErrorIs(t, err, kv.ErrNotFound)

	got, err = f.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, *got)
}

func TestFlatAcceptsNumbersInStoredJSON(t *testing.T) {
	ctx := context.Background()
	f, store := setupFlat(t)

	raw := `[{"id":"w1","date":"d","timestamp":5,"name":"Old","duration":"","volume":"",
		"exercises":[{"id":"e1","exerciseId":"x","name":"X","sets":[{"id":"s1","reps":8,"weight":60,"completed":true}]}]}]`
	require.NoError(t, store.Set(ctx, kv.KeyWorkouts, []byte(raw)))

	w, err := f.GetWorkout(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, models.NumericString("8"), w.Exercises[0].Sets[0].Reps)
	assert.Equal(t, 480.0, w.TotalVolume())
}

func TestFlatCorruptDocumentIsReadError(t *testing.T) {
	ctx := context.Background()
	f, store := setupFlat(t)
	require.NoError(t, store.Set(ctx, kv.KeyRoutines, []byte(`{"not":"a list"}`)))

	_, err := f.ListRoutines(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read list routines")
}
