package ui

import (
	"github.com/charmbracelet/log"

	"github.com/kyaoi/termfolio/internal/content"
	"github.com/kyaoi/termfolio/internal/section"
	"github.com/kyaoi/termfolio/internal/theme"
)

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Profile        content.Profile
	ContentPath    string
	HiddenSections []section.ID
	Theme          *theme.Controller
	CollapseWidth  int
	SmoothScroll   bool
	Logger         *log.Logger
}
