package theme

import (
	"io"

	"github.com/charmbracelet/log"
)

// Controller holds the current mode and writes every change to its store.
type Controller struct {
	mode   Mode
	store  Store
	logger *log.Logger
}

// NewController reads the persisted preference from store. Anything other
// than "dark" or "light" yields Dark. The normalized value is written back
// right away. A nil logger discards output.
func NewController(store Store, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{mode: Dark, store: store, logger: logger}

	if store != nil {
		raw, ok, err := store.Get(PreferenceKey)
		switch {
		case err != nil:
			logger.Warn("could not read theme preference, using dark", "error", err)
		case ok:
			if mode, valid := ParseMode(raw); valid {
				c.mode = mode
			} else {
				logger.Debug("ignoring unknown theme preference", "value", raw)
			}
		}
	}

	c.persist()
	return c
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// IsDark reports whether the dark mode is active.
func (c *Controller) IsDark() bool {
	return c.mode == Dark
}

// Toggle inverts the mode and persists it.
func (c *Controller) Toggle() Mode {
	c.Set(c.mode.Inverse())
	return c.mode
}

// Set switches to mode and persists it. Writing the current mode again is
// harmless.
func (c *Controller) Set(mode Mode) {
	c.mode = mode
	c.persist()
}

// Classes returns the style table for the current mode.
func (c *Controller) Classes() Classes {
	return ClassesFor(c.mode)
}

func (c *Controller) persist() {
	if c.store == nil {
		return
	}
	if err := c.store.Set(PreferenceKey, c.mode.String()); err != nil {
		c.logger.Warn("could not persist theme preference", "mode", c.mode, "error", err)
		return
	}
	c.logger.Debug("theme preference saved", "mode", c.mode)
}
