// ABOUTME: Charm KV flat store for data synced through Charm Cloud.
// ABOUTME: Wraps the shared badger-backed KV with a read-only guard and auto sync.
package charm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
	"github.com/sirupsen/logrus"

	flat "github.com/harperreed/lift/internal/kv"
)

const (
	// DefaultDBName is the Charm KV database used when none is configured.
	DefaultDBName = "lift"
	charmHost     = "charm.2389.dev"
)

// ErrReadOnly is returned for writes while another process holds the lock.
var ErrReadOnly = errors.New("cannot write: database is locked by another process (MCP server?)")

// kvDB is the subset of *kv.KV the store uses.
type kvDB interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Delete(key []byte) error
	Sync() error
	Reset() error
	IsReadOnly() bool
	Close() error
}

// Store is a flat.Store on Charm KV.
type Store struct {
	kv       kvDB
	autoSync bool
	logger   logrus.FieldLogger
	mu       sync.RWMutex
}

var _ flat.Store = (*Store)(nil)

// Open opens the named Charm KV database and pulls remote data.
// CHARM_HOST defaults to the project server unless already set.
func Open(name string, logger logrus.FieldLogger) (*Store, error) {
	if name == "" {
		name = DefaultDBName
	}
	if os.Getenv("CHARM_HOST") == "" {
		if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
			return nil, err
		}
	}

	db, err := kv.OpenWithDefaultsFallback(name)
	if err != nil {
		return nil, fmt.Errorf("open charm kv %s: %w", name, err)
	}

	s := newStore(db, logger)
	if !db.IsReadOnly() {
		if err := db.Sync(); err != nil {
			s.logger.WithError(err).Warn("initial charm sync failed")
		}
	}
	return s, nil
}

func newStore(db kvDB, logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Store{
		kv:       db,
		autoSync: true,
		logger:   logger.WithField("component", "charm"),
	}
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, err := s.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, flat.ErrNotFound
	}
	return val, err
}

// Set stores value under key and syncs.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return ErrReadOnly
	}
	if err := s.kv.Set([]byte(key), value); err != nil {
		return err
	}
	s.syncIfEnabled()
	return nil
}

// Delete removes key and syncs.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return ErrReadOnly
	}
	if err := s.kv.Delete([]byte(key)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return err
	}
	s.syncIfEnabled()
	return nil
}

// Close closes the KV database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}

// IsReadOnly returns true if the database is open in read-only mode.
// This happens when another process (like an MCP server) holds the lock.
func (s *Store) IsReadOnly() bool {
	return s.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud.
func (s *Store) Sync() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.kv.IsReadOnly() {
		return nil
	}
	return s.kv.Sync()
}

// SetAutoSync enables or disables automatic sync after writes.
func (s *Store) SetAutoSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSync = enabled
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Reset()
}

// ID returns the Charm user ID for the current account.
func ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// syncIfEnabled pushes after a write. Sync failures are logged; the local
// write already succeeded.
func (s *Store) syncIfEnabled() {
	if !s.autoSync || s.kv.IsReadOnly() {
		return
	}
	if err := s.kv.Sync(); err != nil {
		s.logger.WithError(err).Warn("charm sync after write failed")
	}
}
