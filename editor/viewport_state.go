package editor

import "github.com/iw2rmb/lineedit/internal/cellwidth"

// ViewportState is a stable host-facing snapshot of the input's viewport.
type ViewportState struct {
	// Offset is the index of the leftmost visible character.
	Offset int
	// DisplayColumn is the cursor's column inside the text area, in
	// [0, Width-1].
	DisplayColumn int
	// Width is the number of character columns available to text (prompt
	// excluded).
	Width int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	return ViewportState{
		Offset:        m.offset,
		DisplayColumn: m.display,
		Width:         m.contentWidth(),
	}
}

// Offset returns the index of the leftmost visible character.
func (m Model) Offset() int { return m.offset }

// DisplayColumn returns the cursor column inside the text area.
func (m Model) DisplayColumn() int { return m.display }

// SetOffset scrolls the viewport explicitly. The result is re-clamped so the
// cursor stays visible.
func (m Model) SetOffset(offset int) Model {
	if m.buf == nil {
		return m
	}
	if offset < 0 {
		offset = 0
	}
	if offset > m.buf.Len() {
		offset = m.buf.Len()
	}
	m.offset = offset
	m.reclamp()
	return m
}

// CursorToScreen maps the logical cursor to a cell column relative to the
// start of the input, prompt included. For a sized input the column is always
// inside its width, matching the cell View draws the cursor in. ok is false
// when the input has no buffer.
func (m Model) CursorToScreen() (x int, ok bool) {
	if m.buf == nil {
		return 0, false
	}
	x = m.promptWidth()
	for i := m.offset; i < m.offset+m.display; i++ {
		r, ok := m.buf.RuneAt(i)
		if !ok {
			break
		}
		x += cellwidth.Rune(r)
	}
	return x, true
}

// ScrollBy shifts the offset by delta characters, subject to the same clamp
// as SetOffset.
func (m Model) ScrollBy(delta int) Model {
	return m.SetOffset(m.offset + delta)
}
