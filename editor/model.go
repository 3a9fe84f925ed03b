package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineedit/buffer"
	"github.com/iw2rmb/lineedit/internal/log"
)

// Model is a Bubble Tea component for single-line text input.
//
// The model owns the viewport offset and width; the buffer owns text and
// cursor. Every action re-clamps the viewport before Update returns, so View
// never observes a cursor outside the visible window.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	width   int
	offset  int
	display int

	lastVersion uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:     cfg,
		buf:     buffer.New(cfg.Text, cfg.bufferOptions()),
		focused: !cfg.Blurred,
		width:   cfg.Width,
	}
	m.reclamp()
	return m
}

// Buffer exposes the underlying buffer. Hosts may mutate it directly; the
// next Update re-syncs the viewport.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) ID() string { return m.cfg.ID }

// Value returns the current text.
func (m Model) Value() string {
	if m.buf == nil {
		return ""
	}
	return m.buf.Text()
}

// Cursor returns the logical cursor in characters.
func (m Model) Cursor() int {
	if m.buf == nil {
		return 0
	}
	return m.buf.Cursor()
}

func (m Model) Init() tea.Cmd { return nil }

// SetWidth sets the total width in cells, prompt included. 0 makes the input
// unbounded.
func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	m.reclamp()
	return m
}

func (m Model) Width() int { return m.width }

// SetValue replaces the text and moves the cursor to the end. No change
// messages are emitted.
func (m Model) SetValue(s string) Model {
	if m.buf == nil {
		return m
	}
	m.buf.SetText(s)
	m.reclamp()
	return m
}

// Reset clears text, cursor, and scroll offset without emitting messages.
func (m Model) Reset() Model {
	if m.buf == nil {
		return m
	}
	m.buf.SetText("")
	m.offset = 0
	m.reclamp()
	return m
}

// Focus gives the input focus. The returned command delivers FocusMsg on a
// transition and is nil otherwise.
func (m Model) Focus() (Model, tea.Cmd) {
	if m.focused {
		return m, nil
	}
	m.focused = true
	log.Debug(log.CatInput, "Focus", "id", m.cfg.ID)
	m.reclamp()
	return m, m.emitFocus(true)
}

// Blur removes focus. The returned command delivers BlurMsg on a transition
// and is nil otherwise.
func (m Model) Blur() (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	m.focused = false
	log.Debug(log.CatInput, "Blur", "id", m.cfg.ID)
	return m, m.emitFocus(false)
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.cfg.Width == 0 {
			return m.SetWidth(msg.Width), nil
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		// Hosts may mutate the buffer between messages.
		m.syncFromBuffer()
		return m, nil
	}
}

func (m *Model) syncFromBuffer() {
	if m.buf == nil || m.buf.Version() == m.lastVersion {
		return
	}
	m.reclamp()
}
