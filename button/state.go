package button

// State is the button's press state.
type State int

const (
	Up State = iota
	Down
)

func (s State) String() string {
	switch s {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}
