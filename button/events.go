package button

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineedit/events"
)

// PressedMsg reports a completed press.
type PressedMsg struct{ ID string }

// FocusMsg reports that the button gained focus.
type FocusMsg struct{ ID string }

// BlurMsg reports that the button lost focus.
type BlurMsg struct{ ID string }

// Notification is the broker payload: the state after the event.
type Notification struct {
	State State
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *Model) emitPress() tea.Cmd {
	msg := PressedMsg{ID: m.cfg.ID}
	if m.cfg.OnPress != nil {
		m.cfg.OnPress(msg)
	}
	if m.cfg.Events != nil {
		m.cfg.Events.Publish(events.Press, m.cfg.ID, Notification{State: m.state})
	}
	return msgCmd(msg)
}

func (m *Model) emitFocus(focused bool) tea.Cmd {
	ch := events.Blur
	var msg tea.Msg = BlurMsg{ID: m.cfg.ID}
	if focused {
		ch = events.Focus
		msg = FocusMsg{ID: m.cfg.ID}
	}
	if m.cfg.Events != nil {
		m.cfg.Events.Publish(ch, m.cfg.ID, Notification{State: m.state})
	}
	return msgCmd(msg)
}
