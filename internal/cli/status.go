package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/sadopc/pomo/internal/export"
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the saved timer and task count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			st := sess.widget.Timer()
			today, err := sess.store.GetTodayTotal()
			if err != nil {
				log.Warn("today total", "err", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Mode:      %s\n", st.Mode.Label())
			fmt.Fprintf(out, "Remaining: %s\n", sess.widget.Clock())
			fmt.Fprintf(out, "Durations: work %dm, break %dm\n", st.WorkMinutes, st.BreakMinutes)
			fmt.Fprintf(out, "Tasks:     %d\n", len(sess.widget.Tasks()))
			fmt.Fprintf(out, "Today:     %s focused\n", export.FormatDuration(today))
			return nil
		},
	}
}

func newResetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Rewind the current interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			sess.widget.Reset()
			st := sess.widget.Timer()
			fmt.Fprintf(cmd.OutOrStdout(), "%s reset to %s\n", st.Mode.Label(), sess.widget.Clock())
			return nil
		},
	}
}
