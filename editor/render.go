package editor

import (
	"strings"

	"github.com/iw2rmb/lineedit/internal/cellwidth"
)

func (m Model) View() string {
	var sb strings.Builder
	if m.cfg.Prompt != "" {
		sb.WriteString(m.cfg.Style.Prompt.Render(m.cfg.Prompt))
	}
	if m.buf == nil {
		return sb.String()
	}

	if m.buf.IsEmpty() && m.cfg.Placeholder != "" {
		sb.WriteString(m.renderPlaceholder())
		return sb.String()
	}
	sb.WriteString(m.renderText())
	return sb.String()
}

func (m Model) promptWidth() int {
	return cellwidth.String(m.cfg.Prompt)
}

// cellBudget is the number of terminal cells the text area may use. 0 means
// unbounded.
func (m Model) cellBudget() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - m.promptWidth()
	if w < 1 {
		return 1
	}
	return w
}

func (m Model) renderText() string {
	cw := m.contentWidth()
	visible := []rune(m.buf.Slice(m.offset, m.offset+cw))

	// Characters before the cursor, the cursor cell, characters after it.
	cursorIdx := m.display
	if cursorIdx > len(visible) {
		cursorIdx = len(visible)
	}
	before := visible[:cursorIdx]
	var under []rune
	var after []rune
	if cursorIdx < len(visible) {
		under = visible[cursorIdx : cursorIdx+1]
		after = visible[cursorIdx+1:]
	}

	budget := m.cellBudget()
	used := 0
	var sb strings.Builder

	write := func(rs []rune) {
		if len(rs) == 0 {
			return
		}
		if budget > 0 {
			rs, _ = cellwidth.Truncate(rs, budget-used)
		}
		if len(rs) == 0 {
			return
		}
		used += cellwidth.String(string(rs))
		sb.WriteString(m.cfg.Style.Text.Render(string(rs)))
	}

	write(before)

	cursorCell, cursorWidth := " ", 1
	if len(under) > 0 {
		cursorCell, cursorWidth = string(under), cellwidth.Visible(under[0])
	}
	// A wide rune under the cursor in a one-cell input cannot be shown; the
	// cursor itself always is.
	if budget > 0 && used+cursorWidth > budget {
		cursorCell, cursorWidth = " ", 1
	}
	if m.focused {
		sb.WriteString(m.cfg.Style.Cursor.Render(cursorCell))
	} else {
		sb.WriteString(m.cfg.Style.Text.Render(cursorCell))
	}
	used += cursorWidth

	write(after)

	if budget > used {
		sb.WriteString(strings.Repeat(" ", budget-used))
	}
	return sb.String()
}

func (m Model) renderPlaceholder() string {
	ph := []rune(m.cfg.Placeholder)
	budget := m.cellBudget()
	if budget > 0 {
		ph, _ = cellwidth.Truncate(ph, budget)
	}

	var sb strings.Builder
	used := 0
	if m.focused {
		first := " "
		if len(ph) > 0 {
			first = string(ph[0])
			used += cellwidth.Visible(ph[0])
			ph = ph[1:]
		} else {
			used++
		}
		sb.WriteString(m.cfg.Style.Cursor.Render(first))
	}
	if len(ph) > 0 {
		sb.WriteString(m.cfg.Style.Placeholder.Render(string(ph)))
		used += cellwidth.String(string(ph))
	}
	if budget > used {
		sb.WriteString(strings.Repeat(" ", budget-used))
	}
	return sb.String()
}
