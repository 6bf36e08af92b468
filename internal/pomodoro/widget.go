// Package pomodoro holds the timer and task list state behind pomo, along
// with the transitions that mutate it. It has no UI; callers inject storage,
// a sound and a scheduler.
package pomodoro

import (
	"time"

	"github.com/charmbracelet/log"
)

// TickInterval is the fixed cadence of the countdown.
const TickInterval = time.Second

// Notifier plays the notification sound. Playback failures are silent.
type Notifier interface {
	Play()
}

// Scheduler fires a callback at a fixed interval until stopped. Start
// replaces any running schedule. After Stop returns, fire must not be
// called again by any firing that was already in flight.
type Scheduler interface {
	Start(interval time.Duration, fire func())
	Stop()
}

// Recorder receives every interval that runs to completion.
type Recorder interface {
	RecordInterval(mode string, seconds int, completedAt time.Time) error
}

type nopNotifier struct{}

func (nopNotifier) Play() {}

type nopScheduler struct{}

func (nopScheduler) Start(time.Duration, func()) {}
func (nopScheduler) Stop()                       {}

// Widget owns the whole pomodoro state bundle. It is not safe for concurrent
// use; every call is expected to come from one event loop.
type Widget struct {
	timer    TimerState
	tasks    TaskList
	darkMode bool

	storage  Storage
	sound    Notifier
	sched    Scheduler
	recorder Recorder
	now      func() time.Time
}

type Option func(*Widget)

func WithNotifier(n Notifier) Option {
	return func(w *Widget) { w.sound = n }
}

func WithScheduler(s Scheduler) Option {
	return func(w *Widget) { w.sched = s }
}

func WithRecorder(r Recorder) Option {
	return func(w *Widget) { w.recorder = r }
}

func WithClock(now func() time.Time) Option {
	return func(w *Widget) { w.now = now }
}

// New restores a widget from storage. The restored timer is always paused.
func New(storage Storage, opts ...Option) *Widget {
	w := &Widget{
		storage: storage,
		sound:   nopNotifier{},
		sched:   nopScheduler{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}

	snap, expired := load(storage)
	w.timer = snap.timer
	w.tasks.Items = snap.tasks
	w.darkMode = snap.darkMode
	if expired {
		log.Debug("restored an expired interval", "mode", w.timer.Mode)
	}
	w.persist()
	return w
}

func (w *Widget) Timer() TimerState { return w.timer }
func (w *Widget) Tasks() []string   { return w.tasks.Snapshot() }
func (w *Widget) Pending() string   { return w.tasks.Pending }
func (w *Widget) DarkMode() bool    { return w.darkMode }

// Clock is the remaining time as MM:SS.
func (w *Widget) Clock() string { return FormatClock(w.timer.Remaining) }

// Toggle starts or pauses the countdown.
func (w *Widget) Toggle() {
	w.timer = w.timer.Toggle()
	if w.timer.Active && w.timer.Remaining > 0 {
		w.sched.Start(TickInterval, w.Tick)
	} else {
		w.sched.Stop()
	}
	w.persist()
}

// Tick advances the countdown by one second. On expiry the schedule is
// cancelled, the sound plays once and the finished interval is recorded.
func (w *Widget) Tick() {
	prev := w.timer
	next, expired := ApplyTick(prev)
	if next == prev {
		return
	}
	w.timer = next
	if expired {
		w.sched.Stop()
		w.sound.Play()
		w.record(prev.Mode, prev.Seconds(prev.Mode))
	}
	w.persist()
}

// Reset pauses and rewinds the current mode. The mode does not change.
func (w *Widget) Reset() {
	w.timer = w.timer.Reset()
	w.sched.Stop()
	w.persist()
}

// SetWorkMinutes stores a new work length. A running countdown keeps its
// remaining time until the next reset or mode switch.
func (w *Widget) SetWorkMinutes(n int) bool {
	if n < 1 {
		return false
	}
	w.timer.WorkMinutes = n
	w.persist()
	return true
}

func (w *Widget) SetBreakMinutes(n int) bool {
	if n < 1 {
		return false
	}
	w.timer.BreakMinutes = n
	w.persist()
	return true
}

// SetPending replaces the task text being composed.
func (w *Widget) SetPending(text string) {
	w.tasks.Pending = text
}

// SubmitPending adds the pending text as a task.
func (w *Widget) SubmitPending() bool {
	return w.AddTask(w.tasks.Pending)
}

// AddTask appends text and plays the notification sound. Only the empty
// string is rejected.
func (w *Widget) AddTask(text string) bool {
	if !w.tasks.Add(text) {
		return false
	}
	w.sound.Play()
	w.persist()
	return true
}

func (w *Widget) RemoveTask(i int) bool {
	if !w.tasks.Remove(i) {
		return false
	}
	w.persist()
	return true
}

func (w *Widget) SetDarkMode(on bool) {
	w.darkMode = on
	w.persist()
}

func (w *Widget) ToggleDarkMode() {
	w.SetDarkMode(!w.darkMode)
}

// Close cancels the schedule. The widget stays usable.
func (w *Widget) Close() {
	w.sched.Stop()
}

func (w *Widget) record(mode Mode, seconds int) {
	if w.recorder == nil {
		return
	}
	if err := w.recorder.RecordInterval(string(mode), seconds, w.now()); err != nil {
		log.Warn("record interval", "mode", mode, "err", err)
	}
}

func (w *Widget) persist() {
	save(w.storage, snapshot{
		timer:    w.timer,
		tasks:    w.tasks.Items,
		darkMode: w.darkMode,
	})
}
