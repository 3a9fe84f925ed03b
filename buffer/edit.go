package buffer

// InsertRune inserts c at the cursor and advances the cursor by one.
//
// Any rune is accepted. The only refusal is a full buffer when a CharLimit is
// set.
func (b *Buffer) InsertRune(c rune) (Change, bool) {
	if b.opt.CharLimit > 0 && len(b.runes) >= b.opt.CharLimit {
		return Change{}, false
	}

	if b.cursor == len(b.runes) {
		b.runes = append(b.runes, c)
	} else {
		b.runes = append(b.runes, 0)
		copy(b.runes[b.cursor+1:], b.runes[b.cursor:])
		b.runes[b.cursor] = c
	}
	b.cursor++

	return b.commitChange(Insert(c, b.cursor)), true
}

// InsertText inserts s rune by rune, returning one Change per inserted rune.
// Insertion stops early once the CharLimit is reached.
func (b *Buffer) InsertText(s string) []Change {
	if s == "" {
		return nil
	}
	return b.InsertRunes([]rune(s))
}

// InsertRunes is InsertText for runes already decoded, such as the runes of
// a key press.
func (b *Buffer) InsertRunes(rs []rune) []Change {
	if len(rs) == 0 {
		return nil
	}
	out := make([]Change, 0, len(rs))
	for _, r := range rs {
		ch, ok := b.InsertRune(r)
		if !ok {
			break
		}
		out = append(out, ch)
	}
	return out
}

// DeleteBackward applies backspace semantics: the cursor steps left, then the
// rune under it is removed. No-op at position 0.
func (b *Buffer) DeleteBackward() (Change, bool) {
	if b.cursor <= 0 {
		return Change{}, false
	}

	b.cursor--
	c := b.removeAt(b.cursor)
	b.cursor = b.clampCursor(b.cursor)

	return b.commitChange(Remove(c, b.cursor)), true
}

// DeleteForward applies delete-key semantics: the rune at the cursor is
// removed and the cursor stays put. No-op when the cursor is at the end,
// which includes the empty buffer.
func (b *Buffer) DeleteForward() (Change, bool) {
	if len(b.runes) == 0 || b.cursor >= len(b.runes) {
		return Change{}, false
	}

	c := b.removeAt(b.cursor)
	b.cursor = b.clampCursor(b.cursor)

	return b.commitChange(Remove(c, b.cursor)), true
}

func (b *Buffer) removeAt(i int) rune {
	c := b.runes[i]
	b.runes = append(b.runes[:i], b.runes[i+1:]...)
	return c
}
