// ABOUTME: ProgressService: progress entries and the user profile.
// ABOUTME: Entries are added or removed, never edited; the profile is replaced wholesale.
package service

import (
	"context"
	"slices"

	"github.com/harperreed/lift/internal/errs"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/persist"
	"github.com/harperreed/lift/internal/validate"
	"github.com/sirupsen/logrus"
)

// ProgressService reads and writes progress entries and the profile.
type ProgressService struct {
	backend persist.Backend
	log     logrus.FieldLogger
}

// NewProgressService returns a service over backend.
func NewProgressService(backend persist.Backend, logger logrus.FieldLogger) *ProgressService {
	return &ProgressService{backend: backend, log: componentLogger(logger, "progress", backend)}
}

// GetEntries returns every entry, newest first.
func (s *ProgressService) GetEntries(ctx context.Context) ([]models.ProgressEntry, error) {
	es, err := s.backend.ListProgress(ctx)
	if err != nil {
		s.log.WithError(err).Debug("list progress failed")
		return nil, err
	}
	return es, nil
}

// AddEntry validates and stores an entry.
func (s *ProgressService) AddEntry(ctx context.Context, e models.ProgressEntry) (*models.ProgressEntry, error) {
	if err := validate.ProgressEntry(e); err != nil {
		s.log.WithError(err).WithField("entry_id", e.ID).Debug("progress entry rejected")
		return nil, err
	}
	if err := s.backend.UpsertProgress(ctx, e); err != nil {
		s.log.WithError(err).WithField("entry_id", e.ID).Debug("save progress entry failed")
		return nil, err
	}

	es, err := s.backend.ListProgress(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(es, func(x models.ProgressEntry) bool { return x.ID == e.ID })
	if i < 0 {
		return nil, errs.NotFound("progress entry", e.ID)
	}
	return &es[i], nil
}

// RemoveEntry deletes an entry.
func (s *ProgressService) RemoveEntry(ctx context.Context, id string) error {
	if err := s.backend.DeleteProgress(ctx, id); err != nil {
		s.log.WithError(err).WithField("entry_id", id).Debug("delete progress entry failed")
		return err
	}
	return nil
}

// GetProfile returns the profile, or nil when none was saved.
func (s *ProgressService) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	return s.backend.GetProfile(ctx)
}

// UpdateProfile validates and replaces the profile.
func (s *ProgressService) UpdateProfile(ctx context.Context, p models.UserProfile) (*models.UserProfile, error) {
	if err := validate.Profile(p); err != nil {
		s.log.WithError(err).Debug("profile rejected")
		return nil, err
	}
	if err := s.backend.SaveProfile(ctx, p); err != nil {
		s.log.WithError(err).Debug("save profile failed")
		return nil, err
	}
	saved, err := s.backend.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, errs.NotFound("profile", "")
	}
	return saved, nil
}
