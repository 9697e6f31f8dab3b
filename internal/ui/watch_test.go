package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/termfolio/internal/content"
)

func receive(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a watcher message")
		return nil
	}
}

func newWatchedModel(t *testing.T) (*Model, string, tea.Cmd) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.md")
	require.NoError(t, os.WriteFile(path, []byte("---\nname: Grace\n---\n"), 0o644))
	profile, err := content.Load(path)
	require.NoError(t, err)

	m, _ := newTestModel(t, 140, 40, func(s *State) {
		s.Profile = profile
		s.ContentPath = path
	})
	t.Cleanup(func() { _ = m.Close() })
	cmd := m.Init()
	require.NotNil(t, cmd)
	return m, path, cmd
}

func TestContentReloadsOnReplace(t *testing.T) {
	m, path, cmd := newWatchedModel(t)
	m.contentVP.SetYOffset(3)

	// Other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "notes.md"), []byte("notes"), 0o644))

	staged := filepath.Join(t.TempDir(), "portfolio.md")
	require.NoError(t, os.WriteFile(staged, []byte("---\nname: Ada\n---\n"), 0o644))
	require.NoError(t, os.Rename(staged, path))

	msg := receive(t, cmd)
	changed, ok := msg.(contentChangedMsg)
	require.True(t, ok, "got %T", msg)

	_, next := m.Update(changed)
	assert.NotNil(t, next)
	assert.Equal(t, "Ada", m.profile.Name)
	assert.Contains(t, ansi.Strip(m.rendered), "Ada")
	assert.Equal(t, 3, m.contentVP.YOffset)
}

func TestContentReloadKeepsProfileOnParseError(t *testing.T) {
	m, path, cmd := newWatchedModel(t)

	staged := filepath.Join(t.TempDir(), "portfolio.md")
	require.NoError(t, os.WriteFile(staged, []byte("---\nname: [broken\n---\n"), 0o644))
	require.NoError(t, os.Rename(staged, path))

	msg := receive(t, cmd)
	require.IsType(t, contentChangedMsg{}, msg)
	m.Update(msg)

	assert.Error(t, m.err)
	assert.Equal(t, "Grace", m.profile.Name)
}

func TestCloseStopsWatching(t *testing.T) {
	m, _, cmd := newWatchedModel(t)

	require.NoError(t, m.Close())
	assert.Nil(t, receive(t, cmd))
}
