// Package editor provides a single-line Bubble Tea text input backed by the
// buffer package.
//
// The Model is the host side of the edit core: it resolves key presses into
// buffer operations, owns the horizontal scroll offset and viewport width,
// re-clamps the viewport after every action, and routes change, submit, and
// focus notifications to the host as Bubble Tea messages, callbacks, and an
// optional events broker.
package editor
