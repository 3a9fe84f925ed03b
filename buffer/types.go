package buffer

// ChangeKind identifies the kind of an effective edit.
type ChangeKind uint8

const (
	ChangeInsert ChangeKind = iota
	ChangeRemove
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Change describes one inserted or removed rune.
//
// Pos is the cursor position after the edit: for an insert it is one past the
// inserted rune, for a remove it is where the cursor rests once the rune is
// gone. It is not the index the rune originally held.
type Change struct {
	Kind ChangeKind
	Char rune
	Pos  int
}

// Insert builds an insert change.
func Insert(c rune, pos int) Change {
	return Change{Kind: ChangeInsert, Char: c, Pos: pos}
}

// Remove builds a remove change.
func Remove(c rune, pos int) Change {
	return Change{Kind: ChangeRemove, Char: c, Pos: pos}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
