// ABOUTME: Tests for the badger flat store and the typed JSON helpers.
// ABOUTME: Uses in-memory badger plus an on-disk reopen check.
package kv

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Badger {
	t.Helper()
	s, err := OpenBadgerInMemory(nil)
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBadgerGetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	_, err := s.Get(ctx, KeyWorkouts)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyWorkouts, []byte(`[]`)))
	got, err := s.Get(ctx, KeyWorkouts)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, s.Delete(ctx, KeyWorkouts))
	_, err = s.Get(ctx, KeyWorkouts)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting again is fine
	assert.NoError(t, s.Delete(ctx, KeyWorkouts))
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenBadger(dir, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyTheme, []byte(`"verde"`)))
	require.NoError(t, s.Close())

	s, err = OpenBadger(dir, nil)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, `"verde"`, string(got))
}

func TestBadgerCanceledContext(t *testing.T) {
	s := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Set(ctx, KeyTheme, []byte(`"rojo"`)), context.Canceled)
}

func TestGetJSONAbsentAndPresent(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	v, found, err := GetJSON[[]string](ctx, s, KeyRoutines)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, v)

	require.NoError(t, SetJSON(ctx, s, KeyRoutines, []string{"a", "b"}))
	v, found, err = GetJSON[[]string](ctx, s, KeyRoutines)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestGetJSONCorruptValue(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	require.NoError(t, s.Set(ctx, KeyRoutines, []byte(`{not json`)))

	_, _, err := GetJSON[[]string](ctx, s, KeyRoutines)
	assert.Error(t, err)
}

func TestUpdateAbortsOnError(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	require.NoError(t, SetJSON(ctx, s, KeyWorkouts, []int{1}))

	boom := errors.New("boom")
	err := Update(ctx, s, KeyWorkouts, func(cur []int, found bool) ([]int, error) {
		return append(cur, 2), boom
	})
	assert.ErrorIs(t, err, boom)

	v, _, err := GetJSON[[]int](ctx, s, KeyWorkouts)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, v)
}

func TestUpdateSerializesSameKey(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	const writers = 20
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := Update(ctx, s, KeyProgress, func(cur []string, _ bool) ([]string, error) {
				return append(cur, fmt.Sprintf("entry-%d", i)), nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	v, _, err := GetJSON[[]string](ctx, s, KeyProgress)
	require.NoError(t, err)
	assert.Len(t, v, writers)
}
