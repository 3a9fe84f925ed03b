package editor

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineedit/buffer"
	"github.com/iw2rmb/lineedit/events"
)

type published struct {
	ch      events.Channel
	source  string
	payload Notification
}

type recorder struct{ got []published }

func (r *recorder) Publish(ch events.Channel, source string, payload Notification) {
	r.got = append(r.got, published{ch: ch, source: source, payload: payload})
}

func TestEvents_PublishesEveryNotification(t *testing.T) {
	rec := &recorder{}
	m := New(Config{ID: "in", Events: rec, Blurred: true})

	m, _ = m.Focus()
	m, _ = m.Update(runes("hi"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, _ = m.Blur()

	want := []published{
		{ch: events.Focus, source: "in"},
		{ch: events.Changed, source: "in", payload: Notification{Change: buffer.Insert('h', 1)}},
		{ch: events.Changed, source: "in", payload: Notification{Change: buffer.Insert('i', 2)}},
		{ch: events.Enter, source: "in", payload: Notification{Text: "hi"}},
		{ch: events.Blur, source: "in"},
	}
	if len(rec.got) != len(want) {
		t.Fatalf("published: got %+v, want %+v", rec.got, want)
	}
	for i := range want {
		if rec.got[i] != want[i] {
			t.Fatalf("published[%d]: got %+v, want %+v", i, rec.got[i], want[i])
		}
	}
}

func TestEvents_SubmitNeverPublishesChanges(t *testing.T) {
	rec := &recorder{}
	m := New(Config{Text: "abc", Events: rec})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(rec.got) != 1 || rec.got[0].ch != events.Enter {
		t.Fatalf("published: got %+v, want a single enter", rec.got)
	}
	if m.Value() != "" {
		t.Fatalf("value after clearing submit: got %q", m.Value())
	}
}

func TestEvents_BrokerDelivery(t *testing.T) {
	broker := events.NewBroker[Notification]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := broker.Subscribe(ctx)

	m := New(Config{ID: "b", Events: broker})
	m, _ = m.Update(runes("x"))
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	want := []buffer.Change{buffer.Insert('x', 1), buffer.Remove('x', 0)}
	for i, w := range want {
		select {
		case ev := <-sub:
			if ev.Channel != events.Changed || ev.Source != "b" || ev.Payload.Change != w {
				t.Fatalf("event[%d]: got %+v, want changed %+v from b", i, ev, w)
			}
		case <-time.After(time.Second):
			t.Fatalf("event[%d]: timed out", i)
		}
	}
}
