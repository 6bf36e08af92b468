package pomodoro

import (
	"encoding/json"
	"strconv"

	"github.com/charmbracelet/log"
)

// Persisted keys.
const (
	KeyTime          = "time"
	KeyMode          = "mode"
	KeyWorkDuration  = "workDuration"
	KeyBreakDuration = "breakDuration"
	KeyDarkMode      = "darkMode"
	KeyTasks         = "tasks"
)

// Storage is a synchronous string key-value store. Get reports false for
// absent keys; Set failures are the implementation's to swallow.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// snapshot is everything that survives a restart.
type snapshot struct {
	timer    TimerState
	tasks    []string
	darkMode bool
}

// load restores a snapshot, substituting defaults for anything absent or
// malformed. A stored remaining time of zero comes back already expired.
func load(kv Storage) (snap snapshot, expired bool) {
	t := DefaultTimerState()
	t.WorkMinutes = loadMinutes(kv, KeyWorkDuration, DefaultWorkMinutes)
	t.BreakMinutes = loadMinutes(kv, KeyBreakDuration, DefaultBreakMinutes)

	if v, ok := kv.Get(KeyMode); ok {
		if m, ok := ParseMode(v); ok {
			t.Mode = m
		} else {
			log.Debug("ignoring malformed setting", "key", KeyMode, "value", v)
		}
	}

	t.Remaining = t.Seconds(t.Mode)
	if v, ok := kv.Get(KeyTime); ok {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			t.Remaining = secs
		} else {
			log.Debug("ignoring malformed setting", "key", KeyTime, "value", v)
		}
	}
	if t.Remaining == 0 {
		t = t.Expire()
		expired = true
	}
	snap.timer = t

	if v, ok := kv.Get(KeyDarkMode); ok {
		snap.darkMode = v == "true"
	}

	if v, ok := kv.Get(KeyTasks); ok {
		var tasks []string
		if err := json.Unmarshal([]byte(v), &tasks); err != nil {
			log.Debug("ignoring malformed setting", "key", KeyTasks, "err", err)
		} else {
			snap.tasks = tasks
		}
	}
	return snap, expired
}

func loadMinutes(kv Storage, key string, fallback int) int {
	v, ok := kv.Get(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Debug("ignoring malformed setting", "key", key, "value", v)
		return fallback
	}
	return n
}

// save overwrites every persisted key.
func save(kv Storage, snap snapshot) {
	t := snap.timer
	kv.Set(KeyWorkDuration, strconv.Itoa(t.WorkMinutes))
	kv.Set(KeyBreakDuration, strconv.Itoa(t.BreakMinutes))
	kv.Set(KeyMode, string(t.Mode))
	kv.Set(KeyTime, strconv.Itoa(t.Remaining))
	kv.Set(KeyDarkMode, strconv.FormatBool(snap.darkMode))
	kv.Set(KeyTasks, encodeTasks(snap.tasks))
}

func encodeTasks(tasks []string) string {
	if tasks == nil {
		tasks = []string{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		// unreachable for []string
		return "[]"
	}
	return string(data)
}
