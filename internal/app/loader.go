// Package app assembles the portfolio program from configuration.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/kyaoi/termfolio/internal/config"
	"github.com/kyaoi/termfolio/internal/content"
	"github.com/kyaoi/termfolio/internal/theme"
	"github.com/kyaoi/termfolio/internal/ui"
)

// LoadInitialState resolves content, the theme preference and display
// settings into the UI state.
func LoadInitialState(cfg *config.Config, logger *log.Logger) (ui.State, error) {
	if err := cfg.Validate(); err != nil {
		return ui.State{}, fmt.Errorf("invalid config: %w", err)
	}

	profile := content.Default()
	contentPath := ""
	if cfg.Content != "" {
		abs, err := filepath.Abs(cfg.Content)
		if err != nil {
			return ui.State{}, fmt.Errorf("resolving content path: %w", err)
		}
		profile, err = content.Load(abs)
		if err != nil {
			return ui.State{}, err
		}
		contentPath = abs
		logger.Debug("loaded content", "path", abs)
	}

	hidden, err := cfg.Hidden()
	if err != nil {
		return ui.State{}, err
	}

	controller, err := NewThemeController(cfg, logger)
	if err != nil {
		return ui.State{}, err
	}

	return ui.State{
		Profile:        profile,
		ContentPath:    contentPath,
		HiddenSections: hidden,
		Theme:          controller,
		CollapseWidth:  cfg.CollapseWidth,
		SmoothScroll:   cfg.SmoothScroll,
		Logger:         logger,
	}, nil
}

// NewThemeController opens the configured preference store and applies the
// startup theme override, if any.
func NewThemeController(cfg *config.Config, logger *log.Logger) (*theme.Controller, error) {
	store, err := cfg.Store()
	if err != nil {
		return nil, err
	}
	controller := theme.NewController(store, logger)
	if mode, ok := cfg.ThemeOverride(); ok {
		controller.Set(mode)
	}
	logger.Debug("theme ready", "mode", controller.Mode())
	return controller, nil
}
