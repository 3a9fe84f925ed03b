package button

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keys that press a focused button.
type KeyMap struct {
	Press key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Press} }

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Press}} }

func (k KeyMap) isZero() bool { return len(k.Press.Keys()) == 0 }
