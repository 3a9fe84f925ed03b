package buffer

// Submit commits the current text.
//
// An empty buffer is a no-op. With clearText set, the text is taken out of the
// buffer and the cursor reset to 0; otherwise the buffer is left intact and a
// copy of the text is returned.
//
// Submission is not an edit: it never produces a Change, even when clearText
// removes the text.
func (b *Buffer) Submit(clearText bool) (string, bool) {
	if len(b.runes) == 0 {
		return "", false
	}

	text := string(b.runes)
	if !clearText {
		return text, true
	}

	b.runes = b.runes[:0]
	b.cursor = 0
	b.version++
	b.textVersion++
	return text, true
}
