// Package cellwidth measures terminal cell widths of runes and strings.
package cellwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Rune returns the number of terminal cells r occupies.
//
// Control runes report 0. Printable runes that go-runewidth reports as zero
// width fall back to uniseg, which knows about more emoji presentation
// sequences.
func Rune(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 0
	}
	w := runewidth.RuneWidth(r)
	if w == 0 {
		if fallback := uniseg.StringWidth(string(r)); fallback > w {
			w = fallback
		}
	}
	if w < 0 {
		w = 0
	}
	return w
}

// String returns the total cell width of s.
func String(s string) int {
	n := 0
	for _, r := range s {
		n += Rune(r)
	}
	return n
}

// Visible returns the cell width of r, or 1 for combining marks and other
// zero-width runes so a cursor drawn on them still occupies a cell.
func Visible(r rune) int {
	if w := Rune(r); w > 0 {
		return w
	}
	return 1
}

// Truncate returns the longest prefix of rs that fits in width cells and the
// number of cells it occupies.
func Truncate(rs []rune, width int) ([]rune, int) {
	if width <= 0 {
		return nil, 0
	}
	used := 0
	for i, r := range rs {
		w := Rune(r)
		if used+w > width {
			return rs[:i], used
		}
		used += w
	}
	return rs, used
}
