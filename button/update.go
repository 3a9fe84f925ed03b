package button

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineedit/internal/log"
)

func keyMatches(msg tea.KeyMsg, km KeyMap) bool {
	return key.Matches(msg, km.Press)
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		m.state = Down

	case tea.MouseActionRelease:
		// X10 mouse reporting does not say which button was released.
		if m.state != Down || (msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone) {
			return m, nil
		}
		// The press completes wherever the pointer is released.
		m.state = Up
		log.Debug(log.CatButton, "Press", "id", m.cfg.ID, "via", "mouse")
		return m, m.emitPress()
	}

	return m, nil
}

func (m Model) mouseInBounds(x, y int) bool {
	w, h := m.Size()
	if w <= 0 || h <= 0 {
		return false
	}
	x -= m.x
	y -= m.y
	return x >= 0 && x < w && y >= 0 && y < h
}
