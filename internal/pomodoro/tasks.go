package pomodoro

// TaskList is an ordered list of task descriptions plus the text currently
// being composed. Duplicates are allowed and positions are the only identity.
type TaskList struct {
	Items   []string
	Pending string
}

// Add appends text unless it is the empty string. Whitespace-only text is
// accepted. The pending input is cleared on success.
func (l *TaskList) Add(text string) bool {
	if text == "" {
		return false
	}
	l.Items = append(l.Items, text)
	l.Pending = ""
	return true
}

// Remove deletes the task at index i; later tasks shift down by one.
func (l *TaskList) Remove(i int) bool {
	if i < 0 || i >= len(l.Items) {
		return false
	}
	items := make([]string, 0, len(l.Items)-1)
	items = append(items, l.Items[:i]...)
	l.Items = append(items, l.Items[i+1:]...)
	return true
}

func (l TaskList) Len() int { return len(l.Items) }

// Snapshot returns a copy of the tasks safe to hand to callers.
func (l TaskList) Snapshot() []string {
	out := make([]string, len(l.Items))
	copy(out, l.Items)
	return out
}
