package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome
	DirEnd
)

func (d MoveDir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirHome:
		return "home"
	case DirEnd:
		return "end"
	default:
		return "unknown"
	}
}

type Move struct {
	Dir MoveDir
}

// Move moves the cursor. Moves never produce a Change; the return value
// reports whether the cursor actually moved.
func (b *Buffer) Move(m Move) bool {
	next := b.clampCursor(b.moveCursor(b.cursor, m.Dir))
	if next == b.cursor {
		return false
	}
	b.cursor = next
	b.version++
	return true
}

func (b *Buffer) moveCursor(p int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		if p > 0 {
			return p - 1
		}
		return p
	case DirRight:
		if p < len(b.runes) {
			return p + 1
		}
		return p
	case DirHome:
		return 0
	case DirEnd:
		return len(b.runes)
	default:
		return p
	}
}
