package editor

import (
	"github.com/iw2rmb/lineedit/buffer"
	"github.com/iw2rmb/lineedit/events"
)

// Config configures the editor Model.
type Config struct {
	// ID identifies the input in emitted messages and broker events.
	ID string

	// Initial text for the internal buffer. The cursor starts at its end.
	Text string

	// Prompt is rendered before the text and consumes viewport width.
	Prompt string
	// Placeholder is shown while the buffer is empty.
	Placeholder string

	// Width is the total width in cells, prompt included. 0 leaves the input
	// unbounded until SetWidth or a tea.WindowSizeMsg sizes it.
	Width int

	// ClearOnSubmit empties the input after enter. nil means true.
	ClearOnSubmit *bool

	// Forwarded to buffer.Options.
	CharLimit int

	KeyMap KeyMap
	Style  Style

	// Optional hooks, called synchronously from Update.
	OnChange func(ChangedMsg)
	OnSubmit func(EnterMsg)

	// Events receives every notification the input emits.
	Events events.Publisher[Notification]

	// Blurred starts the input without focus.
	Blurred bool
}

// Bool returns a pointer to b, for optional Config fields.
func Bool(b bool) *bool { return &b }

func (c Config) clearOnSubmit() bool {
	if c.ClearOnSubmit == nil {
		return true
	}
	return *c.ClearOnSubmit
}

func (c Config) bufferOptions() buffer.Options {
	return buffer.Options{CharLimit: c.CharLimit}
}

func normalizeConfig(c Config) Config {
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Width < 0 {
		c.Width = 0
	}
	if c.CharLimit < 0 {
		c.CharLimit = 0
	}
	return c
}
