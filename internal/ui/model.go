package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/termfolio/internal/content"
	"github.com/kyaoi/termfolio/internal/nav"
	"github.com/kyaoi/termfolio/internal/section"
	"github.com/kyaoi/termfolio/internal/theme"
)

const (
	navHeight            = 2
	statusHeight         = 1
	minContentWidth      = 20
	defaultCollapseWidth = 100
)

// Model implements the Bubble Tea program for the portfolio.
type Model struct {
	contentVP     viewport.Model
	renderer      *glamour.TermRenderer
	rendererStyle string
	rendererWidth int
	profile       content.Profile
	hidden        []section.ID
	layout        section.Layout
	rendered      string
	collapseWidth int
	smoothScroll  bool
	showHelp      bool
	pendingKey    string
	ready         bool
	width         int
	height        int
	err           error
	logger        *log.Logger

	theme   *theme.Controller
	tracker *section.Tracker
	nav     nav.State
	anim    scrollAnimation

	searchInput   textinput.Model
	searchActive  bool
	searchQuery   string
	searchMatches []searchMatch
	searchIndex   int

	watcher          *fsnotify.Watcher
	watchedFile      string
	watchChan        chan tea.Msg
	initialWatchPath string
}

type contentChangedMsg struct {
	op fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// NewModel constructs the portfolio model with the provided initial state.
func NewModel(state State) *Model {
	contentVP := viewport.New(0, 0)
	contentVP.Style = lipgloss.NewStyle().Padding(0, 1)

	logger := state.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	controller := state.Theme
	if controller == nil {
		controller = theme.NewController(theme.NewMemoryStore(nil), logger)
	}
	collapse := state.CollapseWidth
	if collapse <= 0 {
		collapse = defaultCollapseWidth
	}

	m := &Model{
		contentVP:     contentVP,
		profile:       state.Profile,
		hidden:        state.HiddenSections,
		collapseWidth: collapse,
		smoothScroll:  state.SmoothScroll,
		logger:        logger,
		theme:         controller,
		tracker:       section.NewTracker(),
		searchIndex:   -1,
	}

	searchInput := textinput.New()
	searchInput.Prompt = "/"
	searchInput.CharLimit = 256
	searchInput.Placeholder = "search"
	searchInput.CursorEnd()
	searchInput.Blur()
	m.searchInput = searchInput

	if state.ContentPath != "" {
		m.initialWatchPath = state.ContentPath
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.initialWatchPath != "" {
		path := m.initialWatchPath
		m.initialWatchPath = ""
		return m.startWatching(path)
	}
	return nil
}

// Active returns the highlighted section.
func (m *Model) Active() section.ID {
	return m.tracker.Active()
}

// MenuOpen reports whether the collapsed menu is expanded.
func (m *Model) MenuOpen() bool {
	return m.nav.MenuOpen
}

// Layout returns the geometry of the rendered sections.
func (m *Model) Layout() *section.Layout {
	return &m.layout
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	classes := m.theme.Classes()

	if m.showHelp {
		helpOverlay := helpBoxStyle(classes).Render(helpText())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpOverlay)
	}

	body := m.contentVP.View()
	if m.nav.MenuOpen && m.collapsed() {
		body = overlayTop(body, m.menuView(classes))
	}

	var footer string
	switch {
	case m.searchActive:
		footer = m.searchInput.View()
	case m.err != nil:
		footer = classes.Error.Render(m.err.Error())
	default:
		footer = m.statusLine(classes)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.navView(classes), body, footer)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contentChangedMsg:
		return m, m.handleContentChanged(msg)
	case fileWatchErrMsg:
		m.err = msg.err
		return m, m.waitForFileEvent()
	case scrollFrameMsg:
		return m, m.stepAnimation(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.searchActive {
			switch msg.Type {
			case tea.KeyEnter:
				query := strings.TrimSpace(m.searchInput.Value())
				m.exitSearchMode()
				if query == "" {
					m.clearSearch()
					return m, nil
				}
				m.performSearch(query, true)
				return m, nil
			case tea.KeyEsc, tea.KeyCtrlC:
				m.exitSearchMode()
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		key := msg.String()
		if key != "g" {
			m.pendingKey = ""
		}

		if m.showHelp {
			m.pendingKey = ""
			switch key {
			case "q", "?", "esc":
				m.showHelp = false
			}
			return m, nil
		}

		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "T":
			m.toggleTheme()
			return m, nil
		case "m":
			if m.collapsed() {
				m.nav.ToggleMenu(m.Active())
				return m, nil
			}
		case "/":
			return m, m.enterSearchMode()
		case "n":
			if len(m.searchMatches) > 0 {
				m.nextSearchMatch()
				return m, nil
			}
		case "N":
			if len(m.searchMatches) > 0 {
				m.previousSearchMatch()
				return m, nil
			}
		case "tab":
			return m, m.navigate(nav.Step(m.layout.IDs(), m.Active(), 1))
		case "shift+tab":
			return m, m.navigate(nav.Step(m.layout.IDs(), m.Active(), -1))
		}

		if id, ok := sectionForKey(key); ok {
			return m, m.navigate(id)
		}

		if m.nav.MenuOpen && m.collapsed() {
			return m, m.handleMenuKey(key)
		}

		if m.handleContentKey(key) {
			return m, nil
		}

		var cmd tea.Cmd
		m.contentVP, cmd = m.contentVP.Update(msg)
		m.afterScroll()
		return m, cmd
	}

	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	m.afterScroll()
	return m, cmd
}

func (m *Model) handleMenuKey(key string) tea.Cmd {
	switch key {
	case "j", "down":
		m.nav.MoveCursor(1)
	case "k", "up":
		m.nav.MoveCursor(-1)
	case "enter", "l":
		return m.navigate(m.nav.Selected())
	case "esc", "h":
		m.nav.MenuOpen = false
	}
	return nil
}

func (m *Model) handleContentKey(key string) bool {
	switch key {
	case "j", "down":
		m.scrollBy(1)
	case "k", "up":
		m.scrollBy(-1)
	case "ctrl+d", "pgdown", " ":
		m.stopAnimation()
		m.contentVP.HalfPageDown()
		m.afterScroll()
	case "ctrl+u", "pgup":
		m.stopAnimation()
		m.contentVP.HalfPageUp()
		m.afterScroll()
	case "g":
		if m.pendingKey == "g" {
			m.stopAnimation()
			m.contentVP.GotoTop()
			m.afterScroll()
			m.pendingKey = ""
		} else {
			m.pendingKey = "g"
		}
		return true
	case "G":
		m.stopAnimation()
		m.contentVP.GotoBottom()
		m.afterScroll()
	default:
		return false
	}
	m.pendingKey = ""
	return true
}

func (m *Model) scrollBy(delta int) {
	m.stopAnimation()
	if delta > 0 {
		m.contentVP.ScrollDown(delta)
	} else {
		m.contentVP.ScrollUp(-delta)
	}
	m.afterScroll()
}

// navigate jumps to target and closes the menu.
func (m *Model) navigate(target section.ID) tea.Cmd {
	if !m.nav.Navigate(target, m) {
		m.logger.Debug("navigation target not rendered", "section", target)
		return nil
	}
	return m.animationCmd()
}

// afterScroll is called after every change of the viewport offset.
func (m *Model) afterScroll() {
	id, changed := m.tracker.OnScroll(section.LineOffset(m.contentVP.YOffset), &m.layout)
	if changed {
		m.logger.Debug("active section changed", "section", id, "offset", m.contentVP.YOffset)
	}
}

func (m *Model) toggleTheme() {
	mode := m.theme.Toggle()
	m.logger.Info("theme toggled", "mode", mode)
	m.rerender(true)
}

func (m *Model) collapsed() bool {
	return m.width < m.collapseWidth
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= navHeight+statusHeight {
		return
	}

	m.width = width
	m.height = height
	m.ready = true
	if !m.collapsed() {
		m.nav.MenuOpen = false
	}

	contentWidth := max(width, minContentWidth)
	m.contentVP.Width = contentWidth
	m.contentVP.Height = max(height-navHeight-statusHeight, 1)

	m.rerender(true)
}

// rerender renders the sections again, rebuilding the renderer when the
// width or theme changed. With keepOffset the scroll position survives.
func (m *Model) rerender(keepOffset bool) {
	if !m.ready {
		return
	}
	offset := m.contentVP.YOffset

	wrapWidth := max(m.contentVP.Width-m.contentVP.Style.GetHorizontalFrameSize(), 0)
	style := m.theme.Classes().Markdown
	if m.renderer == nil || wrapWidth != m.rendererWidth || style != m.rendererStyle {
		renderer, err := newRenderer(style, wrapWidth)
		if err != nil {
			m.err = err
			return
		}
		m.renderer = renderer
		m.rendererWidth = wrapWidth
		m.rendererStyle = style
	}

	rendered, err := renderSections(m.renderer, content.Sections(m.profile, m.hidden), m.contentVP.Height, &m.layout)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.rendered = rendered
	m.contentVP.SetContent(rendered)
	if keepOffset {
		m.contentVP.SetYOffset(offset)
	}
	m.onContentChanged()
	m.afterScroll()
}

func helpText() string {
	return strings.Join([]string{
		"Help (? / Esc to close)",
		"j / k            : scroll one line",
		"Ctrl+d / Ctrl+u  : half page down / up",
		"gg / G           : top / bottom",
		"Tab / Shift+Tab  : next / previous section",
		"1-8              : jump to section",
		"m                : toggle the menu (narrow terminals)",
		"T                : toggle dark / light theme",
		"/                : search",
		"n / N            : next / previous match",
		"q / Ctrl+c       : quit",
	}, "\n")
}

func sectionForKey(key string) (section.ID, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return "", false
	}
	idx := int(key[0] - '1')
	if idx >= len(section.Order) {
		return "", false
	}
	return section.Order[idx], true
}

func (m *Model) statusLine(classes theme.Classes) string {
	status := fmt.Sprintf("%s · %d%%", section.Label(m.Active()), int(m.contentVP.ScrollPercent()*100))
	if line := m.searchStatusLine(); line != "" {
		status += " · " + line
	}
	return classes.SecondaryText.Render(status + " · ? help")
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
