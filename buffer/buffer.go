package buffer

type Options struct {
	// CharLimit caps the number of runes. 0 means unlimited.
	CharLimit int
}

// Buffer is the pure edit state: text and logical cursor.
type Buffer struct {
	runes       []rune
	version     uint64
	textVersion uint64

	cursor int

	opt Options

	lastChange    Change
	hasLastChange bool
}

// New returns a buffer holding text with the cursor at the end.
func New(text string, opt Options) *Buffer {
	if opt.CharLimit < 0 {
		opt.CharLimit = 0
	}
	b := &Buffer{
		runes: []rune(text),
		opt:   opt,
	}
	if opt.CharLimit > 0 && len(b.runes) > opt.CharLimit {
		b.runes = b.runes[:opt.CharLimit]
	}
	b.cursor = len(b.runes)
	return b
}

func (b *Buffer) Text() string { return string(b.runes) }

// Len returns the current length in runes.
func (b *Buffer) Len() int { return len(b.runes) }

func (b *Buffer) IsEmpty() bool { return len(b.runes) == 0 }

// Version bumps on every effective mutation, including cursor moves.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion bumps only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) CharLimit() int { return b.opt.CharLimit }

// RuneAt returns the rune at index i.
func (b *Buffer) RuneAt(i int) (rune, bool) {
	if i < 0 || i >= len(b.runes) {
		return 0, false
	}
	return b.runes[i], true
}

// Slice returns the text in the rune range [start, end), clamped to bounds.
func (b *Buffer) Slice(start, end int) string {
	start = clampInt(start, 0, len(b.runes))
	end = clampInt(end, start, len(b.runes))
	return string(b.runes[start:end])
}

// SetCursor moves the cursor to p, clamped into [0, Len()].
func (b *Buffer) SetCursor(p int) {
	next := b.clampCursor(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// SetText replaces the whole text and moves the cursor to the end.
//
// SetText is a host operation (seeding, reset) and does not produce a Change.
func (b *Buffer) SetText(text string) {
	next := []rune(text)
	if b.opt.CharLimit > 0 && len(next) > b.opt.CharLimit {
		next = next[:b.opt.CharLimit]
	}
	if string(next) == string(b.runes) && b.cursor == len(next) {
		return
	}
	textChanged := string(next) != string(b.runes)
	b.runes = next
	b.cursor = len(next)
	b.version++
	if textChanged {
		b.textVersion++
	}
}

func (b *Buffer) clampCursor(p int) int {
	return clampInt(p, 0, len(b.runes))
}
