// Package theme owns the dark/light display mode, its persistence and the
// style table derived from it.
package theme

import "strings"

// Mode is the display mode.
type Mode int

const (
	Dark Mode = iota
	Light
)

// PreferenceKey is the slot the mode is persisted under.
const PreferenceKey = "theme"

// String returns the persisted form of the mode.
func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// Inverse returns the other mode.
func (m Mode) Inverse() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// ParseMode reads a persisted value. Only the exact strings "dark" and
// "light" are recognized.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "dark":
		return Dark, true
	case "light":
		return Light, true
	default:
		return Dark, false
	}
}

// ParseFlag is the lenient variant used for user input such as CLI flags
// and config values.
func ParseFlag(s string) (Mode, bool) {
	return ParseMode(strings.ToLower(strings.TrimSpace(s)))
}
