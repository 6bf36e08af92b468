package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sadopc/pomo/internal/config"
	"github.com/sadopc/pomo/internal/pomodoro"
	"github.com/sadopc/pomo/internal/store"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	dbPath     string
	verbose    bool
}

func newRootCmd(version string) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "pomo",
		Short: "pomo - a pomodoro timer with a task list",
		Long: `pomo alternates work and break countdowns and keeps a short task list.

Run without arguments to open the terminal UI. The subcommands read and
change the same saved state.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/.config/pomo/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Database file (overrides database.path)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newResetCmd(opts))
	rootCmd.AddCommand(newTasksCmd(opts))
	rootCmd.AddCommand(newDurationsCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	if err := newRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// session is the state every command works on.
type session struct {
	cfg    *config.Config
	store  *store.Store
	widget *pomodoro.Widget
	close  func()
}

// loadConfig reads the config file and applies logging settings. fallback
// is where logs go when no log file is configured.
func (o *globalOptions) loadConfig(fallback io.Writer) (*config.Config, func(), error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	closeLog, err := setupLogging(cfg.Log, o.verbose, fallback)
	if err != nil {
		return nil, nil, err
	}
	return cfg, closeLog, nil
}

// open loads config and the database and restores the widget. Commands run
// without a scheduler or sound.
func (o *globalOptions) open(cmd *cobra.Command) (*session, error) {
	cfg, closeLog, err := o.loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	s, err := o.openStore(cfg)
	if err != nil {
		closeLog()
		return nil, err
	}
	return &session{
		cfg:    cfg,
		store:  s,
		widget: pomodoro.New(s, pomodoro.WithRecorder(s)),
		close: func() {
			s.Close()
			closeLog()
		},
	}, nil
}

func (o *globalOptions) openStore(cfg *config.Config) (*store.Store, error) {
	path := o.dbPath
	if path == "" {
		path = cfg.Database.Path
	}
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	log.Debug("opening database", "path", path)

	s, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return s, nil
}

func setupLogging(lc config.LogConfig, verbose bool, fallback io.Writer) (func(), error) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	if lc.File == "" {
		log.SetOutput(fallback)
		return func() {}, nil
	}

	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
