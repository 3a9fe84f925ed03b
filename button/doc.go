// Package button provides a pressable Bubble Tea button.
//
// A button is Up until the left mouse button goes down inside it. The next
// left release, wherever the pointer is, reports a press and returns the
// button to Up. Enter or space on a focused button also reports a press.
package button
