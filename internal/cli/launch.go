package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/sadopc/pomo/internal/sound"
	"github.com/sadopc/pomo/internal/tui"
	"github.com/spf13/cobra"
)

// runLaunch opens the full-screen UI. Logs are discarded unless log.file is
// set, since anything written to the terminal would tear the alt screen.
func runLaunch(cmd *cobra.Command, opts *globalOptions) error {
	cfg, closeLog, err := opts.loadConfig(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := opts.openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	notifier := sound.Open(sound.Options{
		Enabled:      cfg.Sound.Enabled,
		BellFallback: cfg.Sound.BellFallback,
		Volume:       cfg.Sound.Volume,
		BellOut:      os.Stderr,
	})
	log.Debug("notifier ready", "type", fmt.Sprintf("%T", notifier))

	app := tui.NewApp(s, notifier)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
