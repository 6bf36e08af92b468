package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg carries the generation of the schedule that produced it.
type tickMsg struct {
	gen int
}

// tickScheduler is the pomodoro.Scheduler for a Bubble Tea program. Every
// Start and Stop opens a new generation; ticks from an older generation are
// dropped, so a tick already in flight when the timer pauses can never
// reach the widget.
type tickScheduler struct {
	interval time.Duration
	fire     func()
	gen      int
	running  bool
	armed    bool // a tea.Tick still has to be issued for gen
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{}
}

func (s *tickScheduler) Start(interval time.Duration, fire func()) {
	s.gen++
	s.interval = interval
	s.fire = fire
	s.running = true
	s.armed = true
}

func (s *tickScheduler) Stop() {
	s.gen++
	s.running = false
	s.armed = false
}

// cmd returns the next tea.Tick to run, at most once per arming.
func (s *tickScheduler) cmd() tea.Cmd {
	if !s.armed {
		return nil
	}
	s.armed = false
	gen := s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// handle fires the callback for a current tick and re-arms the schedule.
// It reports whether the tick was current.
func (s *tickScheduler) handle(msg tickMsg) bool {
	if !s.running || msg.gen != s.gen {
		return false
	}
	s.fire()
	if s.running && s.gen == msg.gen {
		s.armed = true
	}
	return true
}
