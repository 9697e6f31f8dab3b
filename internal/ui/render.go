package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kyaoi/termfolio/internal/content"
	"github.com/kyaoi/termfolio/internal/nav"
	"github.com/kyaoi/termfolio/internal/section"
	"github.com/kyaoi/termfolio/internal/theme"
)

// renderSections renders every block and records its line range in layout.
// The hero section is padded to a full screen, and blank lines are appended
// after the last section so it can be scrolled to the top of the viewport.
func renderSections(r *glamour.TermRenderer, blocks []content.Block, screenHeight int, layout *section.Layout) (string, error) {
	layout.Reset()
	var lines []string
	for _, block := range blocks {
		out, err := r.Render(block.Markdown)
		if err != nil {
			return "", fmt.Errorf("rendering %s: %w", block.ID, err)
		}
		blockLines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if block.ID == section.Home {
			for len(blockLines) < screenHeight {
				blockLines = append(blockLines, "")
			}
		}
		layout.Append(block.ID, len(blockLines))
		lines = append(lines, blockLines...)
	}

	if n := len(blocks); n > 0 {
		lastTop, _ := layout.Top(blocks[n-1].ID)
		for pad := lastTop + screenHeight - len(lines); pad > 0; pad-- {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n"), nil
}

func newRenderer(style string, width int) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	} else {
		opts = append(opts, glamour.WithWordWrap(0))
	}
	return glamour.NewTermRenderer(opts...)
}

func (m *Model) navView(classes theme.Classes) string {
	title := classes.AccentText.Bold(true).Render(m.profile.Title)
	toggle := classes.Toggle.Render(classes.ToggleIcon())

	var right string
	if m.collapsed() {
		icon := "☰ Menu"
		if m.nav.MenuOpen {
			icon = "✕ Close"
		}
		right = classes.NavText.Render(icon)
	} else {
		entries := make([]string, 0, len(section.Order))
		for _, item := range nav.Items(m.Active()) {
			style := classes.SecondaryText
			if item.Active {
				style = classes.NavActive
			}
			entries = append(entries, style.Render(item.Label))
		}
		right = strings.Join(entries, "  ")
	}
	right = toggle + "  " + right

	inner := max(m.width-classes.Nav.GetHorizontalFrameSize(), 0)
	gap := inner - lipgloss.Width(title) - lipgloss.Width(right)
	var bar string
	if gap >= 1 {
		bar = title + strings.Repeat(" ", gap) + right
	} else {
		bar = ansi.Truncate(title+" "+right, inner, "…")
	}
	return classes.Nav.Width(m.width).Render(bar)
}

func (m *Model) menuView(classes theme.Classes) string {
	var b strings.Builder
	for i, item := range nav.Items(m.Active()) {
		label := fmt.Sprintf("%d %s", i+1, item.Label)
		style := classes.SecondaryText
		switch {
		case i == m.nav.Cursor():
			style = classes.PrimaryButton
		case item.Active:
			style = classes.NavActive
		}
		b.WriteString(style.Render(label))
		if i < len(section.Order)-1 {
			b.WriteByte('\n')
		}
	}
	return classes.Card.Render(b.String())
}

// overlayTop draws overlay over the first lines of body.
func overlayTop(body, overlay string) string {
	bodyLines := strings.Split(body, "\n")
	overLines := strings.Split(overlay, "\n")
	for i, line := range overLines {
		if i >= len(bodyLines) {
			break
		}
		bodyLines[i] = line
	}
	return strings.Join(bodyLines, "\n")
}

func helpBoxStyle(classes theme.Classes) lipgloss.Style {
	p := theme.PaletteFor(classes.Mode)
	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Foreground(p.Primary).
		Background(p.Surface)
}
