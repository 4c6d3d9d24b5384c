// ABOUTME: ThemeService: the selected accent theme in the flat store.
// ABOUTME: The key holds the bare theme name; a missing or unknown value reads as the default.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/harperreed/lift/internal/errs"
	"github.com/harperreed/lift/internal/kv"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/validate"
	"github.com/sirupsen/logrus"
)

// ThemeService reads and writes the theme preference.
type ThemeService struct {
	store kv.Store
	log   logrus.FieldLogger
}

// NewThemeService returns a service over store. The theme always lives in
// the flat store, whichever backend holds the rest of the data.
func NewThemeService(store kv.Store, logger logrus.FieldLogger) *ThemeService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ThemeService{store: store, log: logger.WithField("component", "theme")}
}

// Get returns the stored theme, or models.DefaultTheme.
func (s *ThemeService) Get(ctx context.Context) (models.ThemeKey, error) {
	raw, err := s.store.Get(ctx, kv.KeyTheme)
	if errors.Is(err, kv.ErrNotFound) {
		return models.DefaultTheme, nil
	}
	if err != nil {
		return "", errs.Read("get theme", err)
	}

	// older builds may have written the name as a JSON string
	name := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if !models.IsValidTheme(name) {
		s.log.WithField("stored", name).Warn("unknown theme stored, using default")
		return models.DefaultTheme, nil
	}
	return models.ThemeKey(name), nil
}

// Set validates and stores a theme.
func (s *ThemeService) Set(ctx context.Context, key models.ThemeKey) error {
	if err := validate.Theme(string(key)); err != nil {
		return err
	}
	if err := s.store.Set(ctx, kv.KeyTheme, []byte(key)); err != nil {
		return errs.Write("set theme", err)
	}
	return nil
}
