package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ err error }

func (s failingStore) Get(string) (string, bool, error) { return "", false, s.err }
func (s failingStore) Set(string, string) error        { return s.err }

func TestNewControllerDefaultsToDark(t *testing.T) {
	store := NewMemoryStore(nil)
	c := NewController(store, nil)

	assert.Equal(t, Dark, c.Mode())
	v, ok, err := store.Get(PreferenceKey)
	require.NoError(t, err)
	require.True(t, ok, "initial normalization is persisted")
	assert.Equal(t, "dark", v)

	assert.Equal(t, Light, c.Toggle())
	v, _, _ = store.Get(PreferenceKey)
	assert.Equal(t, "light", v)
}

func TestNewControllerReadsPreference(t *testing.T) {
	tests := []struct {
		name   string
		stored map[string]string
		want   Mode
	}{
		{name: "light", stored: map[string]string{PreferenceKey: "light"}, want: Light},
		{name: "dark", stored: map[string]string{PreferenceKey: "dark"}, want: Dark},
		{name: "unknown value", stored: map[string]string{PreferenceKey: "solarized"}, want: Dark},
		{name: "wrong case", stored: map[string]string{PreferenceKey: "Light"}, want: Dark},
		{name: "empty", stored: map[string]string{PreferenceKey: ""}, want: Dark},
		{name: "absent", stored: map[string]string{"other": "light"}, want: Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore(tt.stored)
			c := NewController(store, nil)
			assert.Equal(t, tt.want, c.Mode())
			v, _, _ := store.Get(PreferenceKey)
			assert.Equal(t, tt.want.String(), v)
		})
	}
}

func TestToggleTwiceRestoresMode(t *testing.T) {
	store := NewMemoryStore(map[string]string{PreferenceKey: "light"})
	c := NewController(store, nil)

	c.Toggle()
	c.Toggle()

	assert.Equal(t, Light, c.Mode())
	v, _, _ := store.Get(PreferenceKey)
	assert.Equal(t, "light", v)
	assert.Equal(t, 3, store.Writes())
}

func TestControllerSurvivesStoreFailure(t *testing.T) {
	c := NewController(failingStore{err: errors.New("disk full")}, nil)
	assert.Equal(t, Dark, c.Mode())
	assert.Equal(t, Light, c.Toggle())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")

	first := NewController(NewFileStore(path), nil)
	require.Equal(t, Dark, first.Mode())
	first.Toggle()

	reloaded := NewController(NewFileStore(path), nil)
	assert.Equal(t, Light, reloaded.Mode())
}

func TestFileStoreInvalidValueReloadsDark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: sepia\n"), 0o644))

	c := NewController(NewFileStore(path), nil)
	assert.Equal(t, Dark, c.Mode())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme: dark")
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":::not yaml[\n"), 0o644))

	store := NewFileStore(path)
	_, _, err := store.Get(PreferenceKey)
	require.Error(t, err)

	c := NewController(store, nil)
	assert.Equal(t, Dark, c.Mode())

	v, ok, err := store.Get(PreferenceKey)
	require.NoError(t, err, "the write replaced the corrupt content")
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestFileStoreKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\nlast_section: skills\n"), 0o644))

	store := NewFileStore(path)
	require.NoError(t, store.Set(PreferenceKey, "dark"))

	v, ok, err := store.Get("last_section")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "skills", v)
}

func TestClassesFollowMode(t *testing.T) {
	dark := ClassesFor(Dark)
	light := ClassesFor(Light)

	assert.Equal(t, "dark", dark.Markdown)
	assert.Equal(t, "light", light.Markdown)
	assert.Equal(t, PaletteFor(Dark).Accent, dark.AccentText.GetForeground())
	assert.Equal(t, PaletteFor(Light).Accent, light.AccentText.GetForeground())
	assert.NotEqual(t, dark.PrimaryText.GetForeground(), light.PrimaryText.GetForeground())
	assert.Equal(t, "☀", dark.ToggleIcon())
	assert.Equal(t, "☾", light.ToggleIcon())

	c := NewController(NewMemoryStore(map[string]string{PreferenceKey: "light"}), nil)
	assert.Equal(t, Light, c.Classes().Mode)
}

func TestParseFlag(t *testing.T) {
	m, ok := ParseFlag(" LIGHT ")
	assert.True(t, ok)
	assert.Equal(t, Light, m)

	_, ok = ParseFlag("auto")
	assert.False(t, ok)
}
