package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/core/combobox"
	"multiselect/internal/infra/logx"
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.FocusMsg:
		m.dispatch(combobox.Focus{})

	case tea.BlurMsg:
		m.tagCursor = -1
		m.dispatch(combobox.Blur{})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if w := msg.Width - 8; w > 10 {
			m.input.Width = w
		}

	case SelectionChangedMsg:
		logx.Infow("selection changed", logx.Fields{
			"widget":  m.id,
			"total":   len(msg.Selected),
			"added":   labelsOf(msg.Added),
			"removed": labelsOf(msg.Removed),
		})

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey maps key presses to combobox events. Anything unbound edits the
// query through the text input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	empty := m.state.Query == ""

	switch {
	case key.Matches(msg, m.keys.Abort):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Accept):
		m.accepted = true
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		if step := m.dispatch(combobox.AdvanceHighlight{}); !step.PreventDefault {
			return m.updateInput(msg)
		}
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if step := m.dispatch(combobox.RetreatHighlight{}); !step.PreventDefault {
			return m.updateInput(msg)
		}
		return m, nil

	case key.Matches(msg, m.keys.Commit):
		item, ok := m.highlighted()
		if !ok {
			return m, nil
		}
		step := m.dispatch(combobox.ItemCommitted[*Option]{Item: item})
		return m, changeCmd(step.Change)

	case key.Matches(msg, m.keys.RemoveLast, m.keys.RemoveTag) && m.tagCursor >= 0:
		sel := m.state.Selection.Items()
		step := m.dispatch(combobox.ItemRemoved[*Option]{Item: sel[m.tagCursor]})
		return m, changeCmd(step.Change)

	case key.Matches(msg, m.keys.RemoveLast) && empty:
		step := m.dispatch(combobox.RemoveLast{})
		return m, changeCmd(step.Change)

	case key.Matches(msg, m.keys.TagLeft) && empty:
		m.moveTagCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.TagRight) && empty && m.tagCursor >= 0:
		m.moveTagCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Close):
		m.tagCursor = -1
		if m.state.Nav.Open {
			m.dispatch(combobox.Blur{})
		} else {
			m.dispatch(combobox.Reset{})
		}
		return m, nil
	}

	return m.updateInput(msg)
}

// updateInput feeds msg to the text input and reports a query change when
// the text actually changed. Typing reopens the panel.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != prev {
		m.tagCursor = -1
		m.dispatch(combobox.QueryChanged{Query: v})
	}
	return m, cmd
}

// dispatch runs one event through the reducer and syncs the text input and
// tag cursor with the new state.
func (m *Model) dispatch(ev combobox.Event) combobox.Step[*Option] {
	step := m.cfg.Reduce(m.state, ev)
	m.state = step.State

	if m.input.Value() != m.state.Query {
		m.input.SetValue(m.state.Query)
	}
	if n := m.state.Selection.Len(); m.tagCursor >= n {
		m.tagCursor = n - 1
	}

	if logx.Enabled(logx.LevelDebug) {
		logx.Debugw("dispatch", logx.Fields{
			"widget":    m.id,
			"event":     fmt.Sprintf("%T", ev),
			"query":     m.state.Query,
			"open":      m.state.Nav.Open,
			"highlight": m.state.Nav.Highlight,
			"selected":  m.state.Selection.Len(),
			"changed":   step.Change != nil,
		})
	}
	return step
}

// moveTagCursor steps through the tags. Moving left from the input enters
// the last tag; moving right past the last tag returns to the input.
func (m *Model) moveTagCursor(delta int) {
	n := m.state.Selection.Len()
	if n == 0 {
		m.tagCursor = -1
		return
	}
	switch {
	case m.tagCursor < 0 && delta < 0:
		m.tagCursor = n - 1
	case m.tagCursor < 0:
	default:
		m.tagCursor += delta
		if m.tagCursor < 0 {
			m.tagCursor = 0
		}
		if m.tagCursor >= n {
			m.tagCursor = -1
		}
	}
}

func changeCmd(ch *combobox.Change[*Option]) tea.Cmd {
	if ch == nil {
		return nil
	}
	msg := SelectionChangedMsg{
		Selected: ch.Selection.Items(),
		Added:    ch.Added,
		Removed:  ch.Removed,
	}
	return func() tea.Msg { return msg }
}

func labelsOf(opts []*Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}
