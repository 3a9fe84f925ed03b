package button

import "github.com/iw2rmb/lineedit/events"

// Config configures the button Model.
type Config struct {
	// ID identifies the button in emitted messages and broker events.
	ID string

	Label string

	// Width and Height of the clickable area in cells. Zero derives them from
	// the label: its cell width plus one cell of padding on each side, one
	// row high.
	Width  int
	Height int

	KeyMap KeyMap
	Style  Style

	// OnPress is called synchronously from Update for every press.
	OnPress func(PressedMsg)

	// Events receives press, focus, and blur notifications.
	Events events.Publisher[Notification]

	// Focused starts the button with focus.
	Focused bool
}

func normalizeConfig(c Config) Config {
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Width < 0 {
		c.Width = 0
	}
	if c.Height < 0 {
		c.Height = 0
	}
	return c
}
