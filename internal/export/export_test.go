package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/sadopc/pomo/internal/store"
	"gopkg.in/yaml.v3"
)

func sampleData() ([]string, []store.Interval) {
	now := time.Now().UTC().Truncate(time.Second)
	tasks := []string{"Write report", `Reply to "Ops", then lunch`, "Write report"}
	intervals := []store.Interval{
		{ID: 2, Mode: "break", Duration: 300, CompletedAt: now},
		{ID: 1, Mode: "work", Duration: 1500, CompletedAt: now.Add(-5 * time.Minute)},
	}
	return tasks, intervals
}

// ============================================================
// CSV
// ============================================================

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("CSV should be valid: %v", err)
	}
	return records
}

func TestToCSV(t *testing.T) {
	tasks, intervals := sampleData()
	path := filepath.Join(t.TempDir(), "test.csv")

	if err := ToCSV(tasks, intervals, path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}
	records := readCSV(t, path)

	// header + 3 tasks + 2 intervals
	if len(records) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(records))
	}

	expectedHeader := []string{"Type", "ID", "Mode", "Duration (s)", "Duration", "Completed", "Text"}
	if !reflect.DeepEqual(records[0], expectedHeader) {
		t.Fatalf("header = %v", records[0])
	}

	if records[1][0] != "task" || records[1][1] != "1" || records[1][6] != "Write report" {
		t.Fatalf("unexpected task row %v", records[1])
	}
	if records[2][6] != `Reply to "Ops", then lunch` {
		t.Fatalf("task text mangled: %q", records[2][6])
	}

	work := records[5]
	if work[0] != "interval" || work[1] != "1" || work[2] != "work" {
		t.Fatalf("unexpected interval row %v", work)
	}
	if work[3] != "1500" || work[4] != "00:25:00" {
		t.Fatalf("duration columns = %q %q", work[3], work[4])
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := ToCSV(nil, nil, path); err != nil {
		t.Fatal(err)
	}
	if records := readCSV(t, path); len(records) != 1 {
		t.Fatalf("expected 1 row (header only), got %d", len(records))
	}
}

func TestToCSVBadPath(t *testing.T) {
	if err := ToCSV(nil, nil, "/nonexistent/dir/file.csv"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	tasks, intervals := sampleData()
	path := filepath.Join(t.TempDir(), "test.json")

	if err := ToJSON(tasks, intervals, path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if !reflect.DeepEqual(doc.Tasks, tasks) {
		t.Fatalf("tasks = %v", doc.Tasks)
	}
	if doc.Count != 2 || len(doc.Intervals) != 2 {
		t.Fatalf("expected 2 intervals, got %d/%d", doc.Count, len(doc.Intervals))
	}
	if doc.Intervals[0].Mode != "break" || doc.Intervals[0].Duration != "00:05:00" {
		t.Fatalf("unexpected interval %+v", doc.Intervals[0])
	}
	if _, err := time.Parse(time.RFC3339, doc.ExportedAt); err != nil {
		t.Fatalf("exported_at not RFC3339: %q", doc.ExportedAt)
	}
}

func TestToJSONEmptyUsesArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := ToJSON(nil, nil, path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := raw["tasks"].([]any); !ok {
		t.Fatalf("tasks should be an empty array, got %v", raw["tasks"])
	}
	if _, ok := raw["intervals"].([]any); !ok {
		t.Fatalf("intervals should be an empty array, got %v", raw["intervals"])
	}
}

func TestToJSONBadPath(t *testing.T) {
	if err := ToJSON(nil, nil, "/nonexistent/dir/file.json"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

// ============================================================
// YAML
// ============================================================

func TestToYAML(t *testing.T) {
	tasks, intervals := sampleData()
	path := filepath.Join(t.TempDir(), "test.yaml")

	if err := ToYAML(tasks, intervals, path); err != nil {
		t.Fatalf("ToYAML: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if !reflect.DeepEqual(doc.Tasks, tasks) {
		t.Fatalf("tasks = %v", doc.Tasks)
	}
	if len(doc.Intervals) != 2 || doc.Intervals[1].DurationSec != 1500 {
		t.Fatalf("unexpected intervals %+v", doc.Intervals)
	}
}

// ============================================================
// Helpers
// ============================================================

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "00:00:00"},
		{300, "00:05:00"},
		{1500, "00:25:00"},
		{3661, "01:01:01"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.secs); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestWriteDispatch(t *testing.T) {
	tasks, intervals := sampleData()
	dir := t.TempDir()
	for _, format := range append(Formats, "YML") {
		path := filepath.Join(dir, "out."+format)
		if err := Write(format, tasks, intervals, path); err != nil {
			t.Fatalf("Write(%s): %v", format, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Fatalf("Write(%s) produced no file", format)
		}
	}
	if err := Write("xml", tasks, intervals, filepath.Join(dir, "out.xml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	day := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

	path, err := DefaultPath("JSON", day)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "pomo-export-2026-05-04.json"); path != want {
		t.Fatalf("got %s, want %s", path, want)
	}
}
