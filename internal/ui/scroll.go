package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/termfolio/internal/section"
)

const scrollFrame = 16 * time.Millisecond

type scrollAnimation struct {
	active bool
	target int
	seq    int
}

type scrollFrameMsg struct {
	seq int
}

// ScrollTo moves the viewport so id starts at its top, animated when smooth
// scrolling is enabled. It reports false when id is not rendered.
func (m *Model) ScrollTo(id section.ID) bool {
	top, ok := m.layout.Top(id)
	if !ok {
		return false
	}
	target := clamp(top, 0, m.maxOffset())

	if !m.smoothScroll {
		m.stopAnimation()
		m.contentVP.SetYOffset(target)
		m.afterScroll()
		return true
	}

	m.anim.seq++
	m.anim.active = true
	m.anim.target = target
	return true
}

func (m *Model) maxOffset() int {
	return max(m.contentVP.TotalLineCount()-m.contentVP.Height, 0)
}

func (m *Model) animationCmd() tea.Cmd {
	if !m.anim.active {
		return nil
	}
	seq := m.anim.seq
	return tea.Tick(scrollFrame, func(time.Time) tea.Msg {
		return scrollFrameMsg{seq: seq}
	})
}

func (m *Model) stopAnimation() {
	m.anim.active = false
}

// stepAnimation advances the viewport a third of the remaining distance,
// at least one line, and schedules the next frame until the target is
// reached. Frames of a superseded animation are dropped.
func (m *Model) stepAnimation(msg scrollFrameMsg) tea.Cmd {
	if !m.anim.active || msg.seq != m.anim.seq {
		return nil
	}

	current := m.contentVP.YOffset
	diff := m.anim.target - current
	step := diff / 3
	if step == 0 {
		switch {
		case diff > 0:
			step = 1
		case diff < 0:
			step = -1
		}
	}
	m.contentVP.SetYOffset(current + step)
	m.afterScroll()

	if m.contentVP.YOffset == m.anim.target || m.contentVP.YOffset == current {
		m.stopAnimation()
		return nil
	}
	return m.animationCmd()
}
