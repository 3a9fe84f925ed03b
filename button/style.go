package button

import "github.com/charmbracelet/lipgloss"

// Style controls the button's rendering. Down applies while the mouse button
// is held; Focused is layered on top of Up or Down when the button has focus.
type Style struct {
	Up      lipgloss.Style
	Down    lipgloss.Style
	Focused lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Up:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		Down:    lipgloss.NewStyle().Reverse(true),
		Focused: lipgloss.NewStyle().Bold(true),
	}
}
