package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/termfolio/internal/section"
	"github.com/kyaoi/termfolio/internal/theme"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "termfolio.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`content: me.md
default_theme: light
hidden_sections: [education, work]
collapse_width: 80
smooth_scroll: false
`), 0o644))
	t.Setenv("TERMFOLIO_CONTENT", "override.md")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "override.md", cfg.Content)
	assert.Equal(t, 80, cfg.CollapseWidth)
	assert.False(t, cfg.SmoothScroll)

	mode, ok := cfg.ThemeOverride()
	assert.True(t, ok)
	assert.Equal(t, theme.Light, mode)

	hidden, err := cfg.Hidden()
	require.NoError(t, err)
	assert.Equal(t, []section.ID{section.Education, section.Experience}, hidden)
}

func TestLoadEnvHiddenSectionsList(t *testing.T) {
	t.Setenv("TERMFOLIO_HIDDEN_SECTIONS", "education, contact,")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"education", "contact"}, cfg.HiddenSections)
	hidden, err := cfg.Hidden()
	require.NoError(t, err)
	assert.Equal(t, []section.ID{section.Education, section.Contact}, hidden)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("content: [unterminated\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultTheme = "sepia"
	assert.ErrorContains(t, cfg.Validate(), "default_theme")

	cfg = DefaultConfig()
	cfg.HiddenSections = []string{"blog"}
	assert.ErrorContains(t, cfg.Validate(), "hidden section")

	cfg = DefaultConfig()
	cfg.CollapseWidth = -1
	assert.Error(t, cfg.Validate())
}

func TestStoreSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoPersist = true
	store, err := cfg.Store()
	require.NoError(t, err)
	assert.IsType(t, &theme.MemoryStore{}, store)

	cfg = DefaultConfig()
	cfg.PreferencesFile = filepath.Join(t.TempDir(), "prefs.yaml")
	store, err = cfg.Store()
	require.NoError(t, err)
	fs, ok := store.(*theme.FileStore)
	require.True(t, ok)
	assert.Equal(t, cfg.PreferencesFile, fs.Path())
}
