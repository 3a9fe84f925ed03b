// Package demo is the interactive showcase for the lineedit widgets: two
// text inputs, a submit button, and a live event log fed from the widgets'
// event brokers.
package demo

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lineedit/button"
	"github.com/iw2rmb/lineedit/editor"
	"github.com/iw2rmb/lineedit/events"
	"github.com/iw2rmb/lineedit/internal/config"
	"github.com/iw2rmb/lineedit/internal/log"
)

const (
	maxEntries = 8

	// Row of the submit button in View; used for mouse hit-testing.
	buttonRow = 5
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Width(8)
	logStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
	Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

// Model is the demo program's root model.
type Model struct {
	inputs []editor.Model
	submit button.Model
	focus  int

	inputEvents    *events.Broker[editor.Notification]
	buttonEvents   *events.Broker[button.Notification]
	inputListener  *events.Listener[editor.Notification]
	buttonListener *events.Listener[button.Notification]
	logListener    *log.Listener

	ctx    context.Context
	cancel context.CancelFunc

	entries   []string
	submitted []string
}

// New builds the demo model from cfg.
func New(cfg config.Config) Model {
	ctx, cancel := context.WithCancel(context.Background())

	inputEvents := events.NewBroker[editor.Notification]()
	buttonEvents := events.NewBroker[button.Notification]()

	mk := func(id string, blurred bool) editor.Model {
		return editor.New(editor.Config{
			ID:            id,
			Prompt:        cfg.Input.Prompt,
			Placeholder:   cfg.Input.Placeholder,
			Width:         cfg.Input.Width,
			CharLimit:     cfg.Input.CharLimit,
			ClearOnSubmit: editor.Bool(cfg.Input.ClearOnEnter),
			Style:         editor.DefaultStyle(),
			Events:        inputEvents,
			Blurred:       blurred,
		})
	}

	submit := button.New(button.Config{
		ID:     "submit",
		Label:  "Submit",
		Style:  button.DefaultStyle(),
		Events: buttonEvents,
	})
	// The button sits after the label column, like the inputs.
	submit = submit.SetPosition(lipgloss.Width(labelStyle.Render("")), buttonRow)

	return Model{
		inputs:         []editor.Model{mk("name", false), mk("email", true)},
		submit:         submit,
		inputEvents:    inputEvents,
		buttonEvents:   buttonEvents,
		inputListener:  events.NewListener(ctx, inputEvents),
		buttonListener: events.NewListener(ctx, buttonEvents),
		logListener:    log.NewListener(ctx),
		ctx:            ctx,
		cancel:         cancel,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.inputListener.Listen(), m.buttonListener.Listen()}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Close stops the event listeners and closes the brokers.
func (m Model) Close() {
	m.cancel()
	m.inputEvents.Close()
	m.buttonEvents.Close()
}

// Submitted returns the recorded submissions, oldest first.
func (m Model) Submitted() []string { return m.submitted }

// Entries returns the visible event log, oldest first.
func (m Model) Entries() []string { return m.entries }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			return m.moveFocus(1)
		case key.Matches(msg, keys.Prev):
			return m.moveFocus(-1)
		}
		return m.updateFocused(msg)

	case tea.WindowSizeMsg:
		w := msg.Width - lipgloss.Width(labelStyle.Render(""))
		for i := range m.inputs {
			m.inputs[i], _ = m.inputs[i].Update(tea.WindowSizeMsg{Width: w, Height: 1})
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.submit, cmd = m.submit.Update(msg)
		return m, cmd

	case editor.EnterMsg:
		m.submitted = append(m.submitted, msg.ID+"="+msg.Text)
		return m, nil

	case button.PressedMsg:
		return m.submitAll()

	case events.Event[editor.Notification]:
		m.record(describeInput(msg))
		return m, m.inputListener.Listen()

	case events.Event[button.Notification]:
		m.record(fmt.Sprintf("%s %s (%s)", msg.Channel, msg.Source, msg.Payload.State))
		return m, m.buttonListener.Listen()

	case events.Event[string]:
		if m.logListener == nil {
			return m, nil
		}
		m.record(strings.TrimSpace(msg.Payload))
		return m, m.logListener.Listen()
	}

	// Let inputs re-sync if a host mutated their buffers.
	for i := range m.inputs {
		m.inputs[i], _ = m.inputs[i].Update(msg)
	}
	return m, nil
}

func (m Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus < len(m.inputs) {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	} else {
		m.submit, cmd = m.submit.Update(msg)
	}
	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	n := len(m.inputs) + 1
	next := ((m.focus+delta)%n + n) % n

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.focus < len(m.inputs) {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Blur()
	} else {
		m.submit, cmd = m.submit.Blur()
	}
	cmds = append(cmds, cmd)

	m.focus = next
	if m.focus < len(m.inputs) {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Focus()
	} else {
		m.submit, cmd = m.submit.Focus()
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submitAll records every input's value and resets the form.
func (m Model) submitAll() (tea.Model, tea.Cmd) {
	parts := make([]string, 0, len(m.inputs))
	for i := range m.inputs {
		parts = append(parts, m.inputs[i].ID()+"="+m.inputs[i].Value())
		m.inputs[i] = m.inputs[i].Reset()
	}
	m.submitted = append(m.submitted, strings.Join(parts, " "))
	log.Info(log.CatApp, "Form submitted", "fields", len(parts))
	return m, nil
}

func (m *Model) record(entry string) {
	m.entries = append(m.entries, entry)
	if len(m.entries) > maxEntries {
		m.entries = m.entries[len(m.entries)-maxEntries:]
	}
}

func describeInput(ev events.Event[editor.Notification]) string {
	switch ev.Channel {
	case events.Changed:
		ch := ev.Payload.Change
		return fmt.Sprintf("changed %s %s %q @%d", ev.Source, ch.Kind, ch.Char, ch.Pos)
	case events.Enter:
		return fmt.Sprintf("enter %s %q", ev.Source, ev.Payload.Text)
	default:
		return fmt.Sprintf("%s %s", ev.Channel, ev.Source)
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("lineedit demo"))
	sb.WriteString("\n\n")
	for _, in := range m.inputs {
		sb.WriteString(labelStyle.Render(in.ID()))
		sb.WriteString(in.View())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render(""))
	sb.WriteString(m.submit.View())
	sb.WriteString("\n\n")

	for _, s := range m.submitted {
		sb.WriteString("submitted: " + s + "\n")
	}
	for _, e := range m.entries {
		sb.WriteString(logStyle.Render(e) + "\n")
	}
	sb.WriteString("\ntab: next field • enter: submit field • esc: quit\n")
	return sb.String()
}
