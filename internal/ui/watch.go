package ui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/termfolio/internal/content"
)

// reloadOps are the events that can change the content file. Editors that
// save by rename show up as Create or Rename on the directory.
const reloadOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// startWatching watches the directory of path and reports changes to path
// as contentChangedMsg.
func (m *Model) startWatching(path string) tea.Cmd {
	if path == "" || m.watcher != nil {
		return nil
	}
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		m.err = fmt.Errorf("watching %s: %w", path, err)
		return nil
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		m.err = fmt.Errorf("watching %s: %w", path, err)
		return nil
	}

	m.watcher = watcher
	m.watchedFile = path
	m.watchChan = make(chan tea.Msg, 1)
	go forwardContentEvents(watcher, path, m.watchChan)

	m.logger.Debug("watching content file", "path", path)
	return m.waitForFileEvent()
}

// forwardContentEvents runs until the watcher is closed. At most one
// message is pending at a time; a burst of writes collapses into a single
// reload because the reload reads the file's latest state anyway.
func forwardContentEvents(watcher *fsnotify.Watcher, path string, out chan<- tea.Msg) {
	defer close(out)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&reloadOps == 0 || filepath.Clean(event.Name) != path {
				continue
			}
			offer(out, contentChangedMsg{op: event.Op})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			offer(out, fileWatchErrMsg{err: err})
		}
	}
}

func offer(out chan<- tea.Msg, msg tea.Msg) {
	select {
	case out <- msg:
	default:
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	ch := m.watchChan
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) handleContentChanged(msg contentChangedMsg) tea.Cmd {
	m.logger.Debug("content file changed", "path", m.watchedFile, "op", msg.op)
	m.reloadContent()
	return m.waitForFileEvent()
}

// reloadContent reads the watched file again and re-renders in place. A
// file that fails to parse leaves the previous profile on screen.
func (m *Model) reloadContent() {
	profile, err := content.Load(m.watchedFile)
	if err != nil {
		m.logger.Warn("could not reload content", "path", m.watchedFile, "error", err)
		m.err = err
		return
	}
	m.logger.Info("content reloaded", "path", m.watchedFile)
	m.profile = profile
	m.rerender(true)
}

// Close stops the file watcher.
func (m *Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Close()
}
