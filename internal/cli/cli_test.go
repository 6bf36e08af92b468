package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sadopc/pomo/internal/config"
	"github.com/sadopc/pomo/internal/pomodoro"
	"github.com/sadopc/pomo/internal/store"
)

// testEnv points every command at a private database and config file.
type testEnv struct {
	dir    string
	db     string
	config string
}

func newTestEnv(t *testing.T) testEnv {
	// Cannot use t.Parallel() - commands set the global logger
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return testEnv{
		dir:    dir,
		db:     filepath.Join(dir, "pomo.db"),
		config: filepath.Join(dir, "config.yaml"),
	}
}

func (e testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--db", e.db, "--config", e.config}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("pomo %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func (e testEnv) openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(e.db)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStatusFresh(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "status")

	for _, want := range []string{"Work Time", "25:00", "work 25m, break 5m", "Tasks:     0"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}
}

func TestTasksAddListRemove(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "tasks", "add", "Write", "report")
	env.mustRun(t, "tasks", "add", "Review PR")
	env.mustRun(t, "tasks", "add", "Lunch")

	out := env.mustRun(t, "tasks", "list")
	if !strings.Contains(out, "1. Write report") || !strings.Contains(out, "3. Lunch") {
		t.Fatalf("unexpected list:\n%s", out)
	}

	out = env.mustRun(t, "tasks", "rm", "2")
	if !strings.Contains(out, "Review PR") {
		t.Fatalf("rm should name the removed task, got %q", out)
	}

	s := env.openStore(t)
	v, _ := s.Get(pomodoro.KeyTasks)
	if v != `["Write report","Lunch"]` {
		t.Fatalf("stored tasks = %s", v)
	}
}

func TestTasksRemoveOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "tasks", "add", "Only")

	for _, arg := range []string{"0", "2", "x"} {
		if _, err := env.run(t, "tasks", "rm", arg); err == nil {
			t.Errorf("tasks rm %s should fail", arg)
		}
	}
	if out := env.mustRun(t, "tasks", "list"); !strings.Contains(out, "Only") {
		t.Fatal("failed removals must not change the list")
	}
}

func TestTasksListEmpty(t *testing.T) {
	env := newTestEnv(t)
	if out := env.mustRun(t, "tasks", "list"); !strings.Contains(out, "No tasks") {
		t.Fatalf("got %q", out)
	}
}

func TestDurations(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "durations", "--work", "50", "--break", "10")
	if !strings.Contains(out, "work 50m, break 10m") {
		t.Fatalf("got %q", out)
	}

	// Only the named flag changes.
	out = env.mustRun(t, "durations", "--break", "15")
	if !strings.Contains(out, "work 50m, break 15m") {
		t.Fatalf("got %q", out)
	}

	if _, err := env.run(t, "durations", "--work", "0"); err == nil {
		t.Fatal("zero minutes should be rejected")
	}
}

func TestResetUsesNewDuration(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "durations", "--work", "50")

	// A changed duration applies on the next reset.
	if out := env.mustRun(t, "status"); !strings.Contains(out, "25:00") {
		t.Fatalf("remaining should be unchanged before reset:\n%s", out)
	}
	out := env.mustRun(t, "reset")
	if !strings.Contains(out, "50:00") {
		t.Fatalf("got %q", out)
	}
}

func TestExport(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "tasks", "add", "Write report")

	path := filepath.Join(env.dir, "out.json")
	out := env.mustRun(t, "export", "--format", "json", "--out", path)
	if !strings.Contains(out, path) {
		t.Fatalf("got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Write report") {
		t.Fatalf("export missing task:\n%s", data)
	}

	if _, err := env.run(t, "export", "--format", "xml", "--out", path); err == nil {
		t.Fatal("unknown format should fail")
	}
}

func TestExportDefaultPath(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "export", "--format", "yaml")
	if !strings.Contains(out, filepath.Join(env.dir, "pomo-export-")) {
		t.Fatalf("default export should land in HOME, got %q", out)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "config", "init")

	cfg, err := config.Load(env.config)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Sound.Enabled {
		t.Fatal("written config should carry defaults")
	}

	if _, err := env.run(t, "config", "init"); err == nil {
		t.Fatal("init should refuse to overwrite")
	}
	env.mustRun(t, "config", "init", "--force")

	out := env.mustRun(t, "config", "show")
	if !strings.Contains(out, "bell_fallback: true") {
		t.Fatalf("unexpected show output:\n%s", out)
	}
}

func TestConfigDatabasePath(t *testing.T) {
	env := newTestEnv(t)
	other := filepath.Join(env.dir, "from-config.db")
	cfg := config.DefaultConfig()
	cfg.Database.Path = other
	if err := config.Save(env.config, cfg); err != nil {
		t.Fatal(err)
	}

	// Without --db the config file decides.
	var out bytes.Buffer
	cmd := newRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", env.config, "tasks", "add", "From config"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(other); err != nil {
		t.Fatalf("database.path was not used: %v", err)
	}
}

func TestLogFile(t *testing.T) {
	env := newTestEnv(t)
	logPath := filepath.Join(env.dir, "pomo.log")
	cfg := config.DefaultConfig()
	cfg.Log.File = logPath
	if err := config.Save(env.config, cfg); err != nil {
		t.Fatal(err)
	}

	env.mustRun(t, "--verbose", "status")
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "opening database") {
		t.Fatalf("debug log missing:\n%s", data)
	}
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	if out := env.mustRun(t, "version"); out != "pomo test\n" {
		t.Fatalf("got %q", out)
	}
}
