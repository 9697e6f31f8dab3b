// Package nav holds the navigation bar state: the collapsed menu and the
// action of jumping to a section.
package nav

import "github.com/kyaoi/termfolio/internal/section"

// Scroller performs the scroll to a section. It returns false when the
// target is not rendered and nothing moved.
type Scroller interface {
	ScrollTo(id section.ID) bool
}

// ScrollFunc adapts a function to Scroller.
type ScrollFunc func(id section.ID) bool

// ScrollTo implements Scroller.
func (f ScrollFunc) ScrollTo(id section.ID) bool { return f(id) }

// Item is one rendered navigation entry.
type Item struct {
	ID     section.ID
	Label  string
	Active bool
}

// State is the navigation state of the page.
type State struct {
	MenuOpen bool
	cursor   int
}

// ToggleMenu opens or closes the collapsed menu. Opening it places the
// cursor on active.
func (s *State) ToggleMenu(active section.ID) {
	s.MenuOpen = !s.MenuOpen
	if s.MenuOpen {
		if idx := section.Index(active); idx >= 0 {
			s.cursor = idx
		}
	}
}

// Navigate scrolls to target and closes the menu, whether or not target
// exists or the menu was open.
func (s *State) Navigate(target section.ID, scroller Scroller) bool {
	moved := false
	if scroller != nil {
		moved = scroller.ScrollTo(target)
	}
	s.MenuOpen = false
	return moved
}

// MoveCursor moves the menu cursor by delta, wrapping around.
func (s *State) MoveCursor(delta int) {
	n := len(section.Order)
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// Cursor is the index of the highlighted menu entry.
func (s *State) Cursor() int {
	return s.cursor
}

// Selected returns the section under the menu cursor.
func (s *State) Selected() section.ID {
	return section.Order[s.cursor]
}

// Items builds the navigation entries with active marking the current
// section.
func Items(active section.ID) []Item {
	items := make([]Item, 0, len(section.Order))
	for _, id := range section.Order {
		items = append(items, Item{
			ID:     id,
			Label:  section.Label(id),
			Active: id == active,
		})
	}
	return items
}

// Step returns the section delta entries away from current among
// visible, clamped to the ends. When current is not visible, stepping
// starts from its position in section.Order.
func Step(visible []section.ID, current section.ID, delta int) section.ID {
	if len(visible) == 0 {
		return current
	}
	idx := -1
	for i, id := range visible {
		if id == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		pos := section.Index(current)
		// The insertion point: the first visible section after current.
		idx = len(visible)
		for i, id := range visible {
			if section.Index(id) > pos {
				idx = i
				break
			}
		}
		if delta > 0 {
			delta--
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(visible) {
		idx = len(visible) - 1
	}
	return visible[idx]
}
