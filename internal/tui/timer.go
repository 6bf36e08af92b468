package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/pomodoro"
)

// timerModel renders the countdown and the task list of one widget.
type timerModel struct {
	widget *pomodoro.Widget
	width  int
	height int

	cursor int

	input       textinput.Model
	inputActive bool

	form       durationsForm
	formActive bool

	bar progress.Model
}

func newTimerModel(w *pomodoro.Widget) timerModel {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200
	ti.Prompt = "› "

	return timerModel{
		widget: w,
		input:  ti,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

func (t *timerModel) setSize(w, h int) {
	t.width = w
	t.height = h
	t.bar.Width = max(10, w-16)
	t.input.Width = max(10, w-16)
}

// capturing reports whether keys belong to the input or the form.
func (t timerModel) capturing() bool {
	return t.inputActive || t.formActive
}

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	if t.formActive {
		var cmd tea.Cmd
		var done bool
		t.form, cmd, done = t.form.update(msg)
		if done {
			t.formActive = false
		}
		return t, cmd
	}
	if t.inputActive {
		return t.updateInput(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch {
	case key.Matches(km, keys.Toggle):
		t.widget.Toggle()
		if t.widget.Timer().Active {
			return t, status("Timer started")
		}
		return t, status("Timer paused")
	case key.Matches(km, keys.Reset):
		t.widget.Reset()
		return t, status("Timer reset")
	case key.Matches(km, keys.Edit):
		t.form = newDurationsForm(t.widget)
		t.formActive = true
		return t, t.form.form.Init()
	case key.Matches(km, keys.AddTask):
		t.inputActive = true
		t.input.SetValue(t.widget.Pending())
		return t, t.input.Focus()
	case key.Matches(km, keys.Delete):
		if t.widget.RemoveTask(t.cursor) {
			t.clampCursor()
			return t, status("Task removed")
		}
	case key.Matches(km, keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(km, keys.Down):
		if t.cursor < len(t.widget.Tasks())-1 {
			t.cursor++
		}
	}
	return t, nil
}

func (t timerModel) updateInput(msg tea.Msg) (timerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Back):
			t.inputActive = false
			t.input.Blur()
			return t, nil
		case key.Matches(msg, keys.Enter):
			t.widget.SetPending(t.input.Value())
			if !t.widget.SubmitPending() {
				return t, status("Task text is empty")
			}
			t.input.Reset()
			t.inputActive = false
			t.input.Blur()
			t.cursor = len(t.widget.Tasks()) - 1
			return t, status("Task added")
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	t.widget.SetPending(t.input.Value())
	return t, cmd
}

func (t *timerModel) clampCursor() {
	if n := len(t.widget.Tasks()); t.cursor >= n {
		t.cursor = max(0, n-1)
	}
}

func status(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func (t timerModel) view() string {
	w := t.width - 4

	if t.formActive {
		return activePanelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Durations"), "", t.form.view()),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		t.renderClock(w),
		t.renderTasks(w),
	)
}

func (t timerModel) renderClock(w int) string {
	st := t.widget.Timer()

	label := accentStyle.Bold(true).Render(st.Mode.Label())
	if st.Mode == pomodoro.ModeBreak {
		label = successStyle.Bold(true).Render(st.Mode.Label())
	}

	style := timerPausedStyle
	indicator := warningStyle.Render("⏸ Paused")
	if st.Active {
		style = timerRunningStyle
		indicator = successStyle.Render("● Running")
	}
	clock := style.Width(w - 6).Render(t.widget.Clock())

	pct := st.Progress / 100
	pct = min(1, max(0, pct))
	bar := t.bar.ViewAs(pct)

	durations := mutedStyle.Render(fmt.Sprintf("work %dm · break %dm", st.WorkMinutes, st.BreakMinutes))
	controls := mutedStyle.Render("space: start/pause  r: reset  e: durations  t: theme")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			label,
			"",
			clock,
			indicator,
			"",
			bar,
			durations,
			"",
			controls,
		),
	)
}

func (t timerModel) renderTasks(w int) string {
	tasks := t.widget.Tasks()

	var rows []string
	rows = append(rows, titleStyle.Render(fmt.Sprintf("Tasks (%d)", len(tasks))))
	rows = append(rows, "")

	if len(tasks) == 0 {
		rows = append(rows, mutedStyle.Render("  No tasks yet. Press a to add one."))
	}
	for i, task := range tasks {
		cursor := "  "
		style := normalItemStyle
		if i == t.cursor && !t.inputActive {
			cursor = "> "
			style = selectedItemStyle
		}
		remove := ""
		if i == t.cursor {
			remove = errorStyle.Render("  ×")
		}
		rows = append(rows, style.Render(cursor+task)+remove)
	}

	if t.inputActive {
		rows = append(rows, "", t.input.View())
		rows = append(rows, mutedStyle.Render("  enter: add  esc: cancel"))
	} else {
		rows = append(rows, "", mutedStyle.Render("  a: add  d: remove  ↑/↓: select"))
	}

	style := panelStyle
	if t.inputActive {
		style = activePanelStyle
	}
	return style.Width(w).Render(strings.Join(rows, "\n"))
}
