package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineedit/buffer"
)

func changesOf(t *testing.T, cmd tea.Cmd) []buffer.Change {
	t.Helper()
	var out []buffer.Change
	for _, msg := range collect(cmd) {
		ch, ok := msg.(ChangedMsg)
		if !ok {
			t.Fatalf("unexpected message %T", msg)
		}
		out = append(out, ch.Change)
	}
	return out
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd := m.Update(runes("X"))
	if got := m.Value(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := changesOf(t, cmd); len(got) != 1 || got[0] != buffer.Insert('X', 2) {
		t.Fatalf("insert changes: got %+v", got)
	}

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Value(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := changesOf(t, cmd); len(got) != 1 || got[0] != buffer.Remove('X', 1) {
		t.Fatalf("backspace changes: got %+v", got)
	}

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.Value(); got != "a" {
		t.Fatalf("text after delete: got %q, want %q", got, "a")
	}
	if got := changesOf(t, cmd); len(got) != 1 || got[0] != buffer.Remove('b', 1) {
		t.Fatalf("delete changes: got %+v", got)
	}
}

func TestUpdate_NavigationEmitsNothing(t *testing.T) {
	m := New(Config{Text: "abc"})
	for _, k := range []tea.KeyType{tea.KeyLeft, tea.KeyHome, tea.KeyRight, tea.KeyEnd, tea.KeyCtrlA, tea.KeyCtrlE} {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: k})
		if cmd != nil {
			t.Fatalf("key %v emitted a command", k)
		}
	}
	if got := m.Cursor(); got != 3 {
		t.Fatalf("cursor after navigation: got %d, want %d", got, 3)
	}
}

func TestUpdate_SpaceAndAltRunes(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(runes("a"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true})
	if cmd != nil {
		t.Fatalf("alt+rune should be ignored")
	}
	if got := m.Value(); got != "a " {
		t.Fatalf("value: got %q, want %q", got, "a ")
	}
}

func TestUpdate_PasteEmitsOneChangePerRuneInOrder(t *testing.T) {
	m := New(Config{Text: "[]"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("héj"), Paste: true})
	if got := m.Value(); got != "[héj]" {
		t.Fatalf("value after paste: got %q, want %q", got, "[héj]")
	}
	want := []buffer.Change{buffer.Insert('h', 2), buffer.Insert('é', 3), buffer.Insert('j', 4)}
	got := changesOf(t, cmd)
	if len(got) != len(want) {
		t.Fatalf("changes: got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("change[%d]: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestUpdate_CharLimitRefusesSilently(t *testing.T) {
	m := New(Config{CharLimit: 2})
	m, _ = m.Update(runes("ab"))
	m, cmd := m.Update(runes("c"))
	if cmd != nil {
		t.Fatalf("insert past limit emitted a command")
	}
	if got := m.Value(); got != "ab" {
		t.Fatalf("value: got %q, want %q", got, "ab")
	}
}

func TestUpdate_SubmitClearsByDefault(t *testing.T) {
	var hooked []EnterMsg
	m := New(Config{ID: "q", Text: "hello", OnSubmit: func(msg EnterMsg) { hooked = append(hooked, msg) }})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msgs := collect(cmd)
	if len(msgs) != 1 || msgs[0] != (EnterMsg{ID: "q", Text: "hello"}) {
		t.Fatalf("submit msgs: got %#v", msgs)
	}
	if len(hooked) != 1 || hooked[0].Text != "hello" {
		t.Fatalf("OnSubmit calls: got %#v", hooked)
	}
	if m.Value() != "" || m.Cursor() != 0 {
		t.Fatalf("after submit: value=%q cursor=%d, want empty at 0", m.Value(), m.Cursor())
	}
	if st := m.ViewportState(); st.Offset != 0 || st.DisplayColumn != 0 {
		t.Fatalf("viewport after submit: %+v", st)
	}
}

func TestUpdate_SubmitKeepsText(t *testing.T) {
	m := New(Config{Text: "hello", ClearOnSubmit: Bool(false)})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msgs := collect(cmd)
	if len(msgs) != 1 || msgs[0].(EnterMsg).Text != "hello" {
		t.Fatalf("submit msgs: got %#v", msgs)
	}
	if m.Value() != "hello" || m.Cursor() != 5 {
		t.Fatalf("after submit: value=%q cursor=%d", m.Value(), m.Cursor())
	}
}

func TestUpdate_EmptyInputOnlyInsertActs(t *testing.T) {
	keys := []tea.KeyType{tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd, tea.KeyEnter}
	m := New(Config{Width: 5})
	v := m.Buffer().Version()
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: k})
		if cmd != nil {
			t.Fatalf("key %v on empty input emitted a command", k)
		}
	}
	if m.Buffer().Version() != v || m.Value() != "" || m.Cursor() != 0 {
		t.Fatalf("empty input changed: version=%d value=%q cursor=%d", m.Buffer().Version(), m.Value(), m.Cursor())
	}
}

func TestUpdate_OnChangeHook(t *testing.T) {
	var got []ChangedMsg
	m := New(Config{ID: "x", OnChange: func(msg ChangedMsg) { got = append(got, msg) }})
	m, _ = m.Update(runes("a"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})

	want := []ChangedMsg{
		{ID: "x", Change: buffer.Insert('a', 1)},
		{ID: "x", Change: buffer.Remove('a', 0)},
	}
	if len(got) != len(want) {
		t.Fatalf("hook calls: got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("hook[%d]: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestApply_WorksWhileBlurred(t *testing.T) {
	m := New(Config{Blurred: true})
	m, cmd := m.Apply(InsertAction('z'))
	if m.Value() != "z" || cmd == nil {
		t.Fatalf("Apply on blurred input: value=%q cmd=%v", m.Value(), cmd != nil)
	}
}
