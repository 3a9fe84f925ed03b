// Package buffer implements the pure single-line edit model for lineedit.
//
// The buffer owns the text and a logical cursor. Both are measured in runes
// (Unicode scalar values), never bytes or terminal cells. The cursor is an
// insertion point in [0, Len()].
//
// Mutating operations return the Change they produced, if any. Operations
// whose precondition does not hold are no-ops: they do not mutate, do not
// bump versions, and do not produce a Change.
//
// A Buffer is not safe for concurrent use.
package buffer
