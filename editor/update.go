package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineedit/buffer"
	"github.com/iw2rmb/lineedit/internal/log"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}
	m.syncFromBuffer()

	a, ok := ActionForKey(msg, m.cfg.KeyMap)
	if !ok {
		return m, nil
	}
	return m.Apply(a)
}

// Apply performs a on the buffer, re-clamps the viewport, and returns the
// command delivering the resulting messages, if any.
//
// Apply ignores focus so hosts can drive a blurred input programmatically.
func (m Model) Apply(a Action) (Model, tea.Cmd) {
	if m.buf == nil {
		return m, nil
	}

	var cmd tea.Cmd
	switch a.Kind {
	case ActionInsert:
		cmd = m.emitChanges(m.buf.InsertRunes(a.Runes))

	case ActionDeleteBackward:
		if ch, ok := m.buf.DeleteBackward(); ok {
			cmd = m.emitChanges([]buffer.Change{ch})
		}

	case ActionDeleteForward:
		if ch, ok := m.buf.DeleteForward(); ok {
			cmd = m.emitChanges([]buffer.Change{ch})
		}

	case ActionMove:
		m.buf.Move(a.Move)

	case ActionSubmit:
		clearText := m.cfg.clearOnSubmit()
		if text, ok := m.buf.Submit(clearText); ok {
			log.Debug(log.CatInput, "Submit", "id", m.cfg.ID, "chars", len([]rune(text)), "clear", clearText)
			cmd = m.emitEnter(text)
		}
	}

	m.reclamp()
	return m, cmd
}
