package button

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineedit/internal/cellwidth"
	"github.com/iw2rmb/lineedit/internal/log"
)

// Model is a Bubble Tea button component.
type Model struct {
	cfg Config

	state   State
	focused bool

	// Screen position of the top-left cell; mouse events are absolute.
	x, y int
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	return Model{cfg: cfg, focused: cfg.Focused}
}

func (m Model) ID() string { return m.cfg.ID }

func (m Model) State() State { return m.state }

func (m Model) Init() tea.Cmd { return nil }

// SetPosition records where the host drew the button so mouse coordinates
// can be hit-tested.
func (m Model) SetPosition(x, y int) Model {
	m.x, m.y = x, y
	return m
}

// Size returns the clickable area in cells.
func (m Model) Size() (width, height int) {
	width, height = m.cfg.Width, m.cfg.Height
	if width == 0 {
		width = cellwidth.String(m.cfg.Label) + 2
	}
	if height == 0 {
		height = 1
	}
	return width, height
}

// Focus gives the button focus. The returned command delivers FocusMsg on a
// transition and is nil otherwise.
func (m Model) Focus() (Model, tea.Cmd) {
	if m.focused {
		return m, nil
	}
	m.focused = true
	log.Debug(log.CatButton, "Focus", "id", m.cfg.ID)
	return m, m.emitFocus(true)
}

// Blur removes focus. A held press is kept: the release still completes it.
func (m Model) Blur() (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	m.focused = false
	log.Debug(log.CatButton, "Blur", "id", m.cfg.ID)
	return m, m.emitFocus(false)
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		if m.focused && keyMatches(msg, m.cfg.KeyMap) {
			log.Debug(log.CatButton, "Press", "id", m.cfg.ID, "via", "key")
			return m, m.emitPress()
		}
	}
	return m, nil
}

func (m Model) View() string {
	w, h := m.Size()
	label := m.cfg.Label
	if pad := w - cellwidth.String(label); pad > 0 {
		left := pad / 2
		label = strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left)
	}
	rows := make([]string, h)
	blank := strings.Repeat(" ", w)
	for i := range rows {
		rows[i] = blank
	}
	rows[h/2] = label

	st := m.cfg.Style.Up
	if m.state == Down {
		st = m.cfg.Style.Down
	}
	if m.focused {
		st = st.Inherit(m.cfg.Style.Focused)
	}
	for i, r := range rows {
		rows[i] = st.Render(r)
	}
	return strings.Join(rows, "\n")
}
