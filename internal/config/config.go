// Package config loads termfolio settings from a YAML file with
// TERMFOLIO_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kyaoi/termfolio/internal/section"
	"github.com/kyaoi/termfolio/internal/theme"
)

const envPrefix = "TERMFOLIO_"

// Config holds the runtime settings.
type Config struct {
	// Content is an optional portfolio Markdown file; empty uses the
	// built-in profile.
	Content string `koanf:"content" yaml:"content"`

	// PreferencesFile stores the theme preference. Empty selects the
	// per-user default location.
	PreferencesFile string `koanf:"preferences_file" yaml:"preferences_file"`

	// NoPersist keeps the theme preference in memory only.
	NoPersist bool `koanf:"no_persist" yaml:"no_persist"`

	// DefaultTheme, when set, overrides the persisted preference at startup.
	DefaultTheme string `koanf:"default_theme" yaml:"default_theme"`

	HiddenSections []string `koanf:"hidden_sections" yaml:"hidden_sections"`

	// CollapseWidth is the terminal width under which the nav bar collapses
	// into a menu.
	CollapseWidth int `koanf:"collapse_width" yaml:"collapse_width"`

	SmoothScroll bool `koanf:"smooth_scroll" yaml:"smooth_scroll"`

	LogFile string `koanf:"log_file" yaml:"log_file"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		CollapseWidth: 100,
		SmoothScroll:  true,
	}
}

// Load reads the YAML file at path when it exists and overlays environment
// variables. An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// envValue maps TERMFOLIO_HIDDEN_SECTIONS=a,b to hidden_sections: [a b].
func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if key != "hidden_sections" {
		return key, value
	}
	var list []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return key, list
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if c.DefaultTheme != "" {
		if _, ok := theme.ParseFlag(c.DefaultTheme); !ok {
			return fmt.Errorf("invalid default_theme %q: must be dark or light", c.DefaultTheme)
		}
	}
	if _, err := c.Hidden(); err != nil {
		return err
	}
	if c.CollapseWidth < 0 {
		return fmt.Errorf("collapse_width must be non-negative")
	}
	return nil
}

// Hidden resolves HiddenSections into section ids.
func (c *Config) Hidden() ([]section.ID, error) {
	ids := make([]section.ID, 0, len(c.HiddenSections))
	for _, raw := range c.HiddenSections {
		id, ok := section.Parse(raw)
		if !ok {
			return nil, fmt.Errorf("invalid hidden section %q", raw)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ThemeOverride returns the configured startup theme, if any.
func (c *Config) ThemeOverride() (theme.Mode, bool) {
	if c.DefaultTheme == "" {
		return theme.Dark, false
	}
	return theme.ParseFlag(c.DefaultTheme)
}

// Store returns the preference store the settings select.
func (c *Config) Store() (theme.Store, error) {
	if c.NoPersist {
		return theme.NewMemoryStore(nil), nil
	}
	path := c.PreferencesFile
	if path == "" {
		var err error
		path, err = theme.DefaultPreferencesPath()
		if err != nil {
			return nil, err
		}
	}
	return theme.NewFileStore(path), nil
}
