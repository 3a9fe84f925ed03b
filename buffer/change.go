package buffer

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) commitChange(ch Change) Change {
	b.version++
	b.textVersion++
	b.lastChange = ch
	b.hasLastChange = true
	return ch
}
