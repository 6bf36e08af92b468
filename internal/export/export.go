// Package export writes the task list and interval history to files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sadopc/pomo/internal/store"
)

type document struct {
	ExportedAt string         `json:"exported_at" yaml:"exported_at"`
	Tasks      []string       `json:"tasks" yaml:"tasks"`
	Count      int            `json:"interval_count" yaml:"interval_count"`
	Intervals  []intervalItem `json:"intervals" yaml:"intervals"`
}

type intervalItem struct {
	ID          int64  `json:"id" yaml:"id"`
	Mode        string `json:"mode" yaml:"mode"`
	DurationSec int64  `json:"duration_seconds" yaml:"duration_seconds"`
	Duration    string `json:"duration" yaml:"duration"`
	CompletedAt string `json:"completed_at" yaml:"completed_at"`
}

func newDocument(tasks []string, intervals []store.Interval) document {
	doc := document{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Tasks:      tasks,
		Count:      len(intervals),
		Intervals:  make([]intervalItem, 0, len(intervals)),
	}
	if doc.Tasks == nil {
		doc.Tasks = []string{}
	}
	for _, iv := range intervals {
		doc.Intervals = append(doc.Intervals, intervalItem{
			ID:          iv.ID,
			Mode:        iv.Mode,
			DurationSec: iv.Duration,
			Duration:    FormatDuration(iv.Duration),
			CompletedAt: iv.CompletedAt.Local().Format(time.RFC3339),
		})
	}
	return doc
}

// FormatDuration renders seconds as HH:MM:SS.
func FormatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Formats lists the names accepted by Write, in menu order.
var Formats = []string{"csv", "json", "yaml"}

// Write exports in the named format.
func Write(format string, tasks []string, intervals []store.Interval, path string) error {
	switch strings.ToLower(format) {
	case "csv":
		return ToCSV(tasks, intervals, path)
	case "json":
		return ToJSON(tasks, intervals, path)
	case "yaml", "yml":
		return ToYAML(tasks, intervals, path)
	}
	return fmt.Errorf("unknown export format %q", format)
}

// DefaultPath returns ~/pomo-export-YYYY-MM-DD.<format>.
func DefaultPath(format string, now time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("pomo-export-%s.%s", now.Format("2006-01-02"), strings.ToLower(format))
	return filepath.Join(home, name), nil
}
