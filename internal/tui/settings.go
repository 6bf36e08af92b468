package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/sadopc/pomo/internal/pomodoro"
)

// durationsForm edits the work and break lengths in minutes.
type durationsForm struct {
	widget *pomodoro.Widget
	form   *huh.Form

	// Form values as pointers (survive value copies)
	work     *string
	breakLen *string
}

func newDurationsForm(w *pomodoro.Widget) durationsForm {
	t := w.Timer()
	work := strconv.Itoa(t.WorkMinutes)
	brk := strconv.Itoa(t.BreakMinutes)
	f := durationsForm{widget: w, work: &work, breakLen: &brk}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Work (min)").Value(f.work).Validate(validateMinutes),
			huh.NewInput().Title("Break (min)").Value(f.breakLen).Validate(validateMinutes),
		).Title("Durations"),
	).WithShowHelp(true).WithShowErrors(true)
	return f
}

func validateMinutes(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a whole number of minutes")
	}
	if n < 1 {
		return errors.New("must be at least 1 minute")
	}
	return nil
}

// update forwards msg to the form. done reports that the form was either
// submitted or cancelled and should be closed.
func (f durationsForm) update(msg tea.Msg) (durationsForm, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		return f, nil, true
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	switch f.form.State {
	case huh.StateCompleted:
		return f, f.save(), true
	case huh.StateAborted:
		return f, nil, true
	}
	return f, cmd, false
}

func (f durationsForm) save() tea.Cmd {
	work, _ := strconv.Atoi(strings.TrimSpace(*f.work))
	brk, _ := strconv.Atoi(strings.TrimSpace(*f.breakLen))
	if !f.widget.SetWorkMinutes(work) || !f.widget.SetBreakMinutes(brk) {
		return func() tea.Msg {
			return statusMsg{text: "Durations must be at least 1 minute", isError: true}
		}
	}
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Durations set: work %dm, break %dm", work, brk)}
	}
}

func (f durationsForm) view() string {
	return f.form.View()
}
