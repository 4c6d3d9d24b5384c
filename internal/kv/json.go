// ABOUTME: Typed JSON helpers over a flat Store.
// ABOUTME: Update serializes read-modify-write cycles per store and key.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// GetJSON decodes the value under key into a T. found is false when the key
// is absent.
func GetJSON[T any](ctx context.Context, s Store, key string) (value T, found bool, err error) {
	data, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return value, false, nil
	}
	if err != nil {
		return value, false, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return value, true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, data)
}

// Update reads key, applies fn and writes the result back. Concurrent Update
// calls for the same store and key run one at a time, so no write is lost
// between the read and the write. fn receives found=false for an absent key.
func Update[T any](ctx context.Context, s Store, key string, fn func(current T, found bool) (T, error)) error {
	unlock := keyLocks.lock(s, key)
	defer unlock()

	current, found, err := GetJSON[T](ctx, s, key)
	if err != nil {
		return err
	}
	next, err := fn(current, found)
	if err != nil {
		return err
	}
	return SetJSON(ctx, s, key, next)
}

type lockKey struct {
	store Store
	key   string
}

type keyedMutex struct {
	mu    sync.Mutex
	locks map[lockKey]*sync.Mutex
}

var keyLocks = &keyedMutex{locks: make(map[lockKey]*sync.Mutex)}

func (k *keyedMutex) lock(s Store, key string) func() {
	k.mu.Lock()
	id := lockKey{store: s, key: key}
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
