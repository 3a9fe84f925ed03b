package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineedit/buffer"
)

// ActionKind identifies a discrete input action.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	// ActionInsert inserts Action.Runes at the cursor, one change per rune.
	ActionInsert
	ActionDeleteBackward
	ActionDeleteForward
	// ActionMove moves the cursor per Action.Move.
	ActionMove
	ActionSubmit
)

func (k ActionKind) String() string {
	switch k {
	case ActionInsert:
		return "insert"
	case ActionDeleteBackward:
		return "delete-backward"
	case ActionDeleteForward:
		return "delete-forward"
	case ActionMove:
		return "move"
	case ActionSubmit:
		return "submit"
	default:
		return "none"
	}
}

// Action is one resolved input action.
type Action struct {
	Kind  ActionKind
	Runes []rune
	Move  buffer.Move
}

// Convenience constructors for hosts that drive the input directly.
func InsertAction(runes ...rune) Action { return Action{Kind: ActionInsert, Runes: runes} }
func MoveAction(dir buffer.MoveDir) Action {
	return Action{Kind: ActionMove, Move: buffer.Move{Dir: dir}}
}
func BackspaceAction() Action { return Action{Kind: ActionDeleteBackward} }
func DeleteAction() Action    { return Action{Kind: ActionDeleteForward} }
func SubmitAction() Action    { return Action{Kind: ActionSubmit} }

// ActionForKey resolves a key press through km. ok is false for keys the
// input does not handle.
func ActionForKey(msg tea.KeyMsg, km KeyMap) (Action, bool) {
	switch {
	case key.Matches(msg, km.Left):
		return MoveAction(buffer.DirLeft), true
	case key.Matches(msg, km.Right):
		return MoveAction(buffer.DirRight), true
	case key.Matches(msg, km.Home):
		return MoveAction(buffer.DirHome), true
	case key.Matches(msg, km.End):
		return MoveAction(buffer.DirEnd), true
	case key.Matches(msg, km.Backspace):
		return BackspaceAction(), true
	case key.Matches(msg, km.Delete):
		return DeleteAction(), true
	case key.Matches(msg, km.Enter):
		return SubmitAction(), true
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return Action{}, false
		}
		return InsertAction(msg.Runes...), true
	case tea.KeySpace:
		return InsertAction(' '), true
	}
	return Action{}, false
}
