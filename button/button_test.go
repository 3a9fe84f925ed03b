package button

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/lineedit/events"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func msgOf(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestMouse_PressInsideThenRelease(t *testing.T) {
	m := New(Config{ID: "ok", Label: "OK"}).SetPosition(10, 3)
	if w, h := m.Size(); w != 4 || h != 1 {
		t.Fatalf("size: got %dx%d, want 4x1", w, h)
	}

	m, cmd := m.Update(press(11, 3))
	if cmd != nil {
		t.Fatalf("press should not emit")
	}
	if m.State() != Down {
		t.Fatalf("state after press: got %v, want %v", m.State(), Down)
	}

	m, cmd = m.Update(release(11, 3))
	if got := msgOf(cmd); got != (PressedMsg{ID: "ok"}) {
		t.Fatalf("release msg: got %#v, want PressedMsg{ok}", got)
	}
	if m.State() != Up {
		t.Fatalf("state after release: got %v, want %v", m.State(), Up)
	}
}

func TestMouse_ReleaseOutsideStillPresses(t *testing.T) {
	m := New(Config{ID: "b", Label: "Go"})
	m, _ = m.Update(press(0, 0))
	m, cmd := m.Update(release(50, 20))
	if got := msgOf(cmd); got != (PressedMsg{ID: "b"}) {
		t.Fatalf("release outside: got %#v, want PressedMsg{b}", got)
	}
	if m.State() != Up {
		t.Fatalf("state: got %v, want %v", m.State(), Up)
	}
}

func TestMouse_IgnoredPresses(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{name: "outside", msg: press(4, 0)},
		{name: "above", msg: press(1, -1)},
		{name: "right button", msg: tea.MouseMsg{X: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}},
		{name: "wheel", msg: tea.MouseMsg{X: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(Config{Label: "OK"})
			m, _ = m.Update(tc.msg)
			if m.State() != Up {
				t.Fatalf("state: got %v, want %v", m.State(), Up)
			}
			if _, cmd := m.Update(release(1, 0)); cmd != nil {
				t.Fatalf("release without a press should not emit")
			}
		})
	}
}

func TestMouse_X10ReleaseWithoutButton(t *testing.T) {
	m := New(Config{Label: "OK"})
	m, _ = m.Update(press(1, 0))
	m, cmd := m.Update(tea.MouseMsg{X: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	if _, ok := msgOf(cmd).(PressedMsg); !ok || m.State() != Up {
		t.Fatalf("X10 release: msg=%#v state=%v", msgOf(cmd), m.State())
	}
}

func TestKeys_PressOnlyWhenFocused(t *testing.T) {
	var pressed int
	m := New(Config{ID: "k", Label: "OK", OnPress: func(PressedMsg) { pressed++ }})

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("unfocused button handled enter")
	}

	m, _ = m.Focus()
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEnter}, {Type: tea.KeySpace, Runes: []rune{' '}}} {
		_, cmd := m.Update(k)
		if got := msgOf(cmd); got != (PressedMsg{ID: "k"}) {
			t.Fatalf("%s: got %#v, want PressedMsg{k}", k, got)
		}
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); cmd != nil {
		t.Fatalf("x should not press")
	}
	if pressed != 2 {
		t.Fatalf("OnPress calls: got %d, want %d", pressed, 2)
	}
}

func TestFocusBlur_EmitOnTransitionsOnly(t *testing.T) {
	m := New(Config{ID: "f"})
	m, cmd := m.Focus()
	if got := msgOf(cmd); got != (FocusMsg{ID: "f"}) {
		t.Fatalf("focus: got %#v", got)
	}
	if _, cmd := m.Focus(); cmd != nil {
		t.Fatalf("second focus emitted")
	}
	m, cmd = m.Blur()
	if got := msgOf(cmd); got != (BlurMsg{ID: "f"}) {
		t.Fatalf("blur: got %#v", got)
	}
	if _, cmd := m.Blur(); cmd != nil {
		t.Fatalf("second blur emitted")
	}
}

type recorder struct{ got []events.Channel }

func (r *recorder) Publish(ch events.Channel, _ string, _ Notification) { r.got = append(r.got, ch) }

func TestEvents_Published(t *testing.T) {
	rec := &recorder{}
	m := New(Config{Label: "OK", Events: rec})
	m, _ = m.Focus()
	m, _ = m.Update(press(0, 0))
	m, _ = m.Update(release(0, 0))
	_, _ = m.Blur()

	want := []events.Channel{events.Focus, events.Press, events.Blur}
	if len(rec.got) != len(want) {
		t.Fatalf("published: got %v, want %v", rec.got, want)
	}
	for i := range want {
		if rec.got[i] != want[i] {
			t.Fatalf("published[%d]: got %v, want %v", i, rec.got[i], want[i])
		}
	}
}

func TestView(t *testing.T) {
	m := New(Config{Label: "OK", Width: 6, Height: 3})
	want := "      \n  OK  \n      "
	if got := m.View(); got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}
