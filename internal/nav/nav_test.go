package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/termfolio/internal/section"
)

type recordingScroller struct {
	known   map[section.ID]bool
	targets []section.ID
}

func (r *recordingScroller) ScrollTo(id section.ID) bool {
	r.targets = append(r.targets, id)
	return r.known[id]
}

func TestNavigateClosesMenu(t *testing.T) {
	for _, open := range []bool{true, false} {
		s := State{MenuOpen: open}
		scroller := &recordingScroller{known: map[section.ID]bool{section.Projects: true}}

		moved := s.Navigate(section.Projects, scroller)

		assert.True(t, moved)
		assert.False(t, s.MenuOpen, "menu open before: %v", open)
		assert.Equal(t, []section.ID{section.Projects}, scroller.targets)
	}
}

func TestNavigateUnknownTargetStillClosesMenu(t *testing.T) {
	s := State{MenuOpen: true}
	tracker := section.NewTracker()
	scroller := &recordingScroller{known: map[section.ID]bool{}}

	moved := s.Navigate(section.ID("blog"), scroller)

	assert.False(t, moved)
	assert.False(t, s.MenuOpen)
	assert.Equal(t, section.Home, tracker.Active())
}

func TestNavigateWithoutScroller(t *testing.T) {
	s := State{MenuOpen: true}
	assert.False(t, s.Navigate(section.About, nil))
	assert.False(t, s.MenuOpen)
}

func TestToggleMenu(t *testing.T) {
	var s State
	s.ToggleMenu(section.Skills)
	require.True(t, s.MenuOpen)
	assert.Equal(t, section.Skills, s.Selected())

	s.ToggleMenu(section.Skills)
	assert.False(t, s.MenuOpen)
}

func TestMoveCursorWraps(t *testing.T) {
	var s State
	s.MoveCursor(-1)
	assert.Equal(t, section.Contact, s.Selected())
	s.MoveCursor(2)
	assert.Equal(t, section.About, s.Selected())
}

func TestItemsMarkActive(t *testing.T) {
	items := Items(section.Experience)
	require.Len(t, items, len(section.Order))

	active := 0
	for _, it := range items {
		if it.Active {
			active++
			assert.Equal(t, section.Experience, it.ID)
			assert.Equal(t, "Work", it.Label)
		}
	}
	assert.Equal(t, 1, active)
}

func TestStepClamps(t *testing.T) {
	all := section.Order
	assert.Equal(t, section.About, Step(all, section.Home, 1))
	assert.Equal(t, section.Home, Step(all, section.Home, -1))
	assert.Equal(t, section.Contact, Step(all, section.Contact, 3))
	assert.Equal(t, section.Home, Step(nil, section.Home, 1))
}

func TestStepSkipsHiddenSections(t *testing.T) {
	visible := []section.ID{section.Home, section.Skills, section.Experience, section.Contact}

	assert.Equal(t, section.Experience, Step(visible, section.Skills, 1))
	assert.Equal(t, section.Skills, Step(visible, section.Experience, -1))

	// Education is hidden: stepping starts from where it would sit.
	assert.Equal(t, section.Experience, Step(visible, section.Education, 1))
	assert.Equal(t, section.Skills, Step(visible, section.Education, -1))
	assert.Equal(t, section.Contact, Step(visible, section.Certifications, 1))
	assert.Equal(t, section.Home, Step([]section.ID{section.Home}, section.Contact, 1))
}
