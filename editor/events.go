package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineedit/buffer"
	"github.com/iw2rmb/lineedit/events"
)

// ChangedMsg reports one inserted or removed character.
type ChangedMsg struct {
	ID     string
	Change buffer.Change
}

// EnterMsg reports a submission. It is not an edit: a clearing submit emits
// EnterMsg only, never ChangedMsg.
type EnterMsg struct {
	ID   string
	Text string
}

// FocusMsg reports that the input gained focus.
type FocusMsg struct{ ID string }

// BlurMsg reports that the input lost focus.
type BlurMsg struct{ ID string }

// Notification is the broker payload. Change is set on events.Changed, Text
// on events.Enter; focus and blur carry neither.
type Notification struct {
	Change buffer.Change
	Text   string
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *Model) emitChanges(changes []buffer.Change) tea.Cmd {
	if len(changes) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(changes))
	for _, ch := range changes {
		msg := ChangedMsg{ID: m.cfg.ID, Change: ch}
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(msg)
		}
		if m.cfg.Events != nil {
			m.cfg.Events.Publish(events.Changed, m.cfg.ID, Notification{Change: ch})
		}
		cmds = append(cmds, msgCmd(msg))
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	// Sequence keeps per-character order for multi-rune input such as paste.
	return tea.Sequence(cmds...)
}

func (m *Model) emitEnter(text string) tea.Cmd {
	msg := EnterMsg{ID: m.cfg.ID, Text: text}
	if m.cfg.OnSubmit != nil {
		m.cfg.OnSubmit(msg)
	}
	if m.cfg.Events != nil {
		m.cfg.Events.Publish(events.Enter, m.cfg.ID, Notification{Text: text})
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
		m.cfg.Events.Publish(ch, m.cfg.ID, Notification{})
	}
	return msgCmd(msg)
}
