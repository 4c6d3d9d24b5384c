// ABOUTME: ThemeContainer holds the selected theme.
// ABOUTME: Starts on the default theme until Load reads the stored one.
package state

import (
	"context"
	"sync"

	"github.com/harperreed/lift/internal/models"
)

// ThemeContainer caches the theme. It starts on models.DefaultTheme.
type ThemeContainer struct {
	themes Themes

	mu    sync.RWMutex
	theme models.ThemeKey
}

func NewThemeContainer(themes Themes) *ThemeContainer {
	return &ThemeContainer{themes: themes, theme: models.DefaultTheme}
}

// Load reads the stored theme. On error the current theme is kept.
func (c *ThemeContainer) Load(ctx context.Context) error {
	key, err := c.themes.Get(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.theme = key
	c.mu.Unlock()
	return nil
}

func (c *ThemeContainer) Theme() models.ThemeKey {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.theme
}

// Palette returns the name and color of the current theme.
func (c *ThemeContainer) Palette() models.Theme {
	return models.Themes[c.Theme()]
}

// SetTheme stores key and makes it current.
func (c *ThemeContainer) SetTheme(ctx context.Context, key models.ThemeKey) error {
	if err := c.themes.Set(ctx, key); err != nil {
		return err
	}
	c.mu.Lock()
	c.theme = key
	c.mu.Unlock()
	return nil
}
