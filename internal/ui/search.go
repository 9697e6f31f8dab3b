package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/kyaoi/termfolio/internal/section"
)

func (m *Model) enterSearchMode() tea.Cmd {
	m.searchActive = true
	m.pendingKey = ""
	if m.searchQuery != "" {
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.CursorEnd()
	} else {
		m.searchInput.SetValue("")
	}
	return m.searchInput.Focus()
}

func (m *Model) exitSearchMode() {
	m.searchActive = false
	m.searchInput.Blur()
}

func (m *Model) clearSearch() {
	m.searchQuery = ""
	m.searchMatches = nil
	m.searchIndex = -1
	m.err = nil
}

func (m *Model) searchStatusLine() string {
	if m.searchQuery == "" {
		return ""
	}
	total := len(m.searchMatches)
	if total == 0 || m.searchIndex < 0 {
		return fmt.Sprintf("/%s (0/0)", m.searchQuery)
	}
	status := fmt.Sprintf("/%s (%d/%d)", m.searchQuery, m.searchIndex+1, total)
	if id := m.searchMatches[m.searchIndex].section; id != "" {
		status += " in " + section.Label(id)
	}
	return status
}

func (m *Model) performSearch(query string, resetIndex bool) {
	query = strings.TrimSpace(query)
	m.searchQuery = query
	m.searchMatches = findSearchMatches(m.rendered, query, &m.layout)
	if len(m.searchMatches) == 0 {
		m.searchIndex = -1
		m.err = fmt.Errorf("no match for %q", query)
		return
	}
	if resetIndex || m.searchIndex < 0 || m.searchIndex >= len(m.searchMatches) {
		m.searchIndex = 0
	}
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) nextSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	if m.searchIndex < 0 {
		m.searchIndex = 0
	} else {
		m.searchIndex = (m.searchIndex + 1) % len(m.searchMatches)
	}
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) previousSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	if m.searchIndex <= 0 {
		m.searchIndex = len(m.searchMatches) - 1
	} else {
		m.searchIndex--
	}
	m.err = nil
	m.gotoSearchMatch()
}

// gotoSearchMatch scrolls so the match sits at the look-ahead line, which
// makes its section the active one.
func (m *Model) gotoSearchMatch() {
	if len(m.searchMatches) == 0 || m.searchIndex < 0 {
		return
	}
	m.stopAnimation()
	line := m.searchMatches[m.searchIndex].line
	offset := clamp(line-section.LookAhead/section.UnitsPerLine, 0, m.maxOffset())
	m.contentVP.SetYOffset(offset)
	m.afterScroll()
}

// onContentChanged keeps the current search result after a re-render,
// moving to the match closest to the previous one.
func (m *Model) onContentChanged() {
	if m.searchQuery == "" {
		return
	}

	prevLine := -1
	if len(m.searchMatches) > 0 && m.searchIndex >= 0 && m.searchIndex < len(m.searchMatches) {
		prevLine = m.searchMatches[m.searchIndex].line
	}

	m.searchMatches = findSearchMatches(m.rendered, m.searchQuery, &m.layout)
	if len(m.searchMatches) == 0 {
		m.searchIndex = -1
		m.err = fmt.Errorf("no match for %q", m.searchQuery)
		return
	}

	if prevLine >= 0 {
		m.searchIndex = closestMatchIndex(m.searchMatches, prevLine)
	} else if m.searchIndex < 0 || m.searchIndex >= len(m.searchMatches) {
		m.searchIndex = 0
	}
	m.err = nil
}

// searchMatch is a rendered line containing the query and the section
// it belongs to.
type searchMatch struct {
	line    int
	section section.ID
}

// findSearchMatches returns every rendered line containing query, ignoring
// case. Lines outside the layout (trailing padding) carry no section.
func findSearchMatches(content, query string, layout *section.Layout) []searchMatch {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || content == "" {
		return nil
	}

	var matches []searchMatch
	for i, line := range strings.Split(ansi.Strip(content), "\n") {
		if !strings.Contains(strings.ToLower(line), query) {
			continue
		}
		match := searchMatch{line: i}
		if layout != nil {
			match.section, _ = layout.At(i)
		}
		matches = append(matches, match)
	}
	return matches
}

func closestMatchIndex(matches []searchMatch, line int) int {
	if len(matches) == 0 {
		return 0
	}
	bestIndex := 0
	bestDiff := absInt(matches[0].line - line)
	for i := 1; i < len(matches); i++ {
		if diff := absInt(matches[i].line - line); diff < bestDiff {
			bestDiff = diff
			bestIndex = i
		}
	}
	return bestIndex
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
