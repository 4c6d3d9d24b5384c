// ABOUTME: ProgressContainer holds progress entries and the profile in memory.
// ABOUTME: Entries are added or removed; the profile is replaced as a whole.
package state

import (
	"context"
	"sync"

	"github.com/harperreed/lift/internal/models"
	"github.com/sirupsen/logrus"
)

// ProgressContainer caches progress entries and the profile.
type ProgressContainer struct {
	progress Progress
	log      logrus.FieldLogger

	mu      sync.RWMutex
	entries []models.ProgressEntry
	profile *models.UserProfile
}

// NewProgressContainer returns an empty container. Call Load to fill it.
func NewProgressContainer(progress Progress, logger logrus.FieldLogger) *ProgressContainer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ProgressContainer{
		progress: progress,
		log:      logger.WithField("component", "progress_state"),
		entries:  []models.ProgressEntry{},
	}
}

// Load reads entries and the profile.
func (c *ProgressContainer) Load(ctx context.Context) error {
	es, err := c.progress.GetEntries(ctx)
	if err != nil {
		return err
	}
	p, err := c.progress.GetProfile(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nonNil(es)
	c.profile = nil
	if p != nil {
		cp := *p
		c.profile = &cp
	}
	c.log.WithField("entries", len(es)).Debug("loaded")
	return nil
}

// Profile returns the cached profile and whether one exists.
func (c *ProgressContainer) Profile() (models.UserProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.profile == nil {
		return models.UserProfile{}, false
	}
	return *c.profile, true
}

// Entries returns the cached entries, newest first.
func (c *ProgressContainer) Entries() []models.ProgressEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.entries, models.ProgressEntry.Clone)
}

// UpdateProfile replaces the profile.
func (c *ProgressContainer) UpdateProfile(ctx context.Context, p models.UserProfile) (models.UserProfile, error) {
	saved, err := c.progress.UpdateProfile(ctx, p)
	if err != nil {
		return models.UserProfile{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *saved
	c.profile = &cp
	return cp, nil
}

// AddEntry stores an entry and caches it.
func (c *ProgressContainer) AddEntry(ctx context.Context, e models.ProgressEntry) (models.ProgressEntry, error) {
	saved, err := c.progress.AddEntry(ctx, e)
	if err != nil {
		return models.ProgressEntry{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = upsert(c.entries, saved.Clone(), entryID)
	newestFirst(c.entries, entryTime)
	return saved.Clone(), nil
}

// RemoveEntry deletes an entry.
func (c *ProgressContainer) RemoveEntry(ctx context.Context, id string) error {
	if err := c.progress.RemoveEntry(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = remove(c.entries, id, entryID)
	return nil
}

func entryID(e models.ProgressEntry) string  { return e.ID }
func entryTime(e models.ProgressEntry) int64 { return e.Timestamp }
