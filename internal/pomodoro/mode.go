package pomodoro

// Mode is the kind of interval the timer is counting down.
type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

// Other returns the mode that follows m when an interval expires.
func (m Mode) Other() Mode {
	if m == ModeWork {
		return ModeBreak
	}
	return ModeWork
}

func (m Mode) Label() string {
	if m == ModeBreak {
		return "Break Time"
	}
	return "Work Time"
}

// ParseMode accepts exactly the persisted encodings "work" and "break".
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeWork:
		return ModeWork, true
	case ModeBreak:
		return ModeBreak, true
	}
	return "", false
}
