package theme

import (
	styles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors a mode is drawn with.
type Palette struct {
	Name       string
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Button     lipgloss.Color
	ButtonText lipgloss.Color
	TagBg      lipgloss.Color
	TagText    lipgloss.Color
	Toggle     lipgloss.Color
	Error      lipgloss.Color
}

// PaletteFor returns the palette of mode.
func PaletteFor(mode Mode) Palette {
	if mode == Light {
		return Palette{
			Name:       "light",
			Background: lipgloss.Color("#EFF6FF"),
			Surface:    lipgloss.Color("#FFFFFF"),
			Border:     lipgloss.Color("#E9D5FF"),
			Primary:    lipgloss.Color("#111827"),
			Secondary:  lipgloss.Color("#4B5563"),
			Accent:     lipgloss.Color("#9333EA"),
			Button:     lipgloss.Color("#9333EA"),
			ButtonText: lipgloss.Color("#FFFFFF"),
			TagBg:      lipgloss.Color("#F3E8FF"),
			TagText:    lipgloss.Color("#7E22CE"),
			Toggle:     lipgloss.Color("#334155"),
			Error:      lipgloss.Color("#DC2626"),
		}
	}
	return Palette{
		Name:       "dark",
		Background: lipgloss.Color("#0F172A"),
		Surface:    lipgloss.Color("#1E293B"),
		Border:     lipgloss.Color("#6B21A8"),
		Primary:    lipgloss.Color("#FFFFFF"),
		Secondary:  lipgloss.Color("#D1D5DB"),
		Accent:     lipgloss.Color("#C084FC"),
		Button:     lipgloss.Color("#A855F7"),
		ButtonText: lipgloss.Color("#FFFFFF"),
		TagBg:      lipgloss.Color("#3B2360"),
		TagText:    lipgloss.Color("#D8B4FE"),
		Toggle:     lipgloss.Color("#FACC15"),
		Error:      lipgloss.Color("#FF6B6B"),
	}
}

// Classes maps semantic style roles to concrete styles for one mode. It has
// no state of its own.
type Classes struct {
	Mode            Mode
	Background      lipgloss.Style
	Nav             lipgloss.Style
	NavText         lipgloss.Style
	NavActive       lipgloss.Style
	Card            lipgloss.Style
	PrimaryText     lipgloss.Style
	SecondaryText   lipgloss.Style
	AccentText      lipgloss.Style
	PrimaryButton   lipgloss.Style
	SecondaryButton lipgloss.Style
	Tag             lipgloss.Style
	Toggle          lipgloss.Style
	Error           lipgloss.Style

	// Markdown is the glamour standard style used for section bodies.
	Markdown string
}

// ClassesFor derives the style table for mode.
func ClassesFor(mode Mode) Classes {
	p := PaletteFor(mode)
	markdown := styles.DarkStyle
	if mode == Light {
		markdown = styles.LightStyle
	}

	return Classes{
		Mode:       mode,
		Background: lipgloss.NewStyle().Background(p.Background),
		Nav: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border),
		NavText:       lipgloss.NewStyle().Foreground(p.Primary),
		NavActive:     lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Underline(true),
		Card:          lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(p.Border),
		PrimaryText:   lipgloss.NewStyle().Foreground(p.Primary),
		SecondaryText: lipgloss.NewStyle().Foreground(p.Secondary),
		AccentText:    lipgloss.NewStyle().Foreground(p.Accent),
		PrimaryButton: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(p.ButtonText).
			Background(p.Button).
			Bold(true),
		SecondaryButton: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(p.Accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Accent),
		Tag:      lipgloss.NewStyle().Padding(0, 1).Foreground(p.TagText).Background(p.TagBg),
		Toggle:   lipgloss.NewStyle().Foreground(p.Toggle).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(p.Error),
		Markdown: markdown,
	}
}

// ToggleIcon is the glyph of the theme switch: the sun offers light mode,
// the moon offers dark mode.
func (c Classes) ToggleIcon() string {
	if c.Mode == Dark {
		return "☀"
	}
	return "☾"
}
