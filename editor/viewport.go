package editor

import "github.com/iw2rmb/lineedit/internal/cellwidth"

// MapViewport re-clamps a horizontal viewport so the cursor is visible.
//
// offset is the index of the leftmost visible character, cursor the logical
// cursor, width the number of visible character columns. It returns the new
// offset and the cursor's display column, which is always in [0, width-1].
//
// The clamp is branch-based rather than iterative, so it holds for any jump
// distance (home, end, replacing the text). A width below 1 is treated as 1.
func MapViewport(offset, cursor, width int) (newOffset, display int) {
	if width < 1 {
		width = 1
	}
	if offset < 0 {
		offset = 0
	}
	if cursor < 0 {
		cursor = 0
	}

	display = cursor - offset

	// Cursor left of the window: scroll left by the overshoot.
	if display < 0 {
		offset += display
		display = 0
	}

	// Cursor right of the window: scroll right just enough to show it in the
	// last column.
	if display >= width {
		excess := display + 1 - width
		offset += excess
		display = width - 1
	}

	return offset, display
}

// reclamp runs MapViewport against the model's current state.
func (m *Model) reclamp() {
	if m.buf == nil {
		return
	}
	m.offset, m.display = MapViewport(m.offset, m.buf.Cursor(), m.contentWidth())
	m.fitCells()
	m.lastVersion = m.buf.Version()
}

// fitCells scrolls further right when wide runes before the cursor would
// push the cursor cell past the cell budget. MapViewport counts characters;
// this pass makes the window hold in cells too.
func (m *Model) fitCells() {
	budget := m.cellBudget()
	if budget == 0 {
		return
	}
	cursor := m.buf.Cursor()

	cursorWidth := 1
	if r, ok := m.buf.RuneAt(cursor); ok {
		cursorWidth = cellwidth.Visible(r)
	}
	used := 0
	for i := m.offset; i < cursor; i++ {
		r, _ := m.buf.RuneAt(i)
		used += cellwidth.Rune(r)
	}
	for used+cursorWidth > budget && m.offset < cursor {
		r, _ := m.buf.RuneAt(m.offset)
		used -= cellwidth.Rune(r)
		m.offset++
	}
	m.display = cursor - m.offset
}

// contentWidth is the number of character columns available to text.
//
// An unsized input is unbounded: it always has room for the whole text plus
// the cursor cell past its end.
func (m Model) contentWidth() int {
	if m.width <= 0 {
		if m.buf == nil {
			return 1
		}
		return m.buf.Len() + 1
	}
	w := m.width - m.promptWidth()
	if w < 1 {
		return 1
	}
	return w
}
