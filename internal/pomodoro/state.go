package pomodoro

import "fmt"

const (
	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5
)

// TimerState is the countdown half of the widget. Every transition is a
// value-in, value-out method so a tick and an expiry can never interleave.
type TimerState struct {
	Remaining    int // seconds
	Active       bool
	Mode         Mode
	Progress     float64 // percent through the interval, not clamped
	WorkMinutes  int
	BreakMinutes int
}

// DefaultTimerState is a paused 25:00 work interval.
func DefaultTimerState() TimerState {
	return TimerState{
		Remaining:    DefaultWorkMinutes * 60,
		Mode:         ModeWork,
		WorkMinutes:  DefaultWorkMinutes,
		BreakMinutes: DefaultBreakMinutes,
	}
}

// Minutes returns the configured length of mode m.
func (s TimerState) Minutes(m Mode) int {
	if m == ModeBreak {
		return s.BreakMinutes
	}
	return s.WorkMinutes
}

// Seconds returns the configured length of mode m in seconds.
func (s TimerState) Seconds(m Mode) int {
	return s.Minutes(m) * 60
}

func (s TimerState) Toggle() TimerState {
	s.Active = !s.Active
	return s
}

// Reset pauses the timer and rewinds the current mode to its full length.
func (s TimerState) Reset() TimerState {
	s.Active = false
	s.Remaining = s.Seconds(s.Mode)
	s.Progress = 0
	return s
}

// Expire switches to the other mode at its full length, paused.
func (s TimerState) Expire() TimerState {
	s.Mode = s.Mode.Other()
	s.Remaining = s.Seconds(s.Mode)
	s.Progress = 0
	s.Active = false
	return s
}

// ApplyTick advances s by one second. It is a no-op unless the timer is
// active with time left. When the countdown reaches zero the expiry is
// applied in the same call and expired is true; the returned state never
// has Remaining == 0.
func ApplyTick(s TimerState) (next TimerState, expired bool) {
	if !s.Active || s.Remaining <= 0 {
		return s, false
	}
	s.Remaining--
	if secs := s.Seconds(s.Mode); secs > 0 {
		s.Progress += 100 / float64(secs)
	}
	if s.Remaining == 0 {
		return s.Expire(), true
	}
	return s, false
}

// FormatClock renders seconds as MM:SS. Minutes are not capped at 99.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
