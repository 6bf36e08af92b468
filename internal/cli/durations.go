package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newDurationsCmd(opts *globalOptions) *cobra.Command {
	var work, brk int

	cmd := &cobra.Command{
		Use:   "durations",
		Short: "Show or set the work and break lengths in minutes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setWork := cmd.Flags().Changed("work")
			setBreak := cmd.Flags().Changed("break")
			if (setWork && work < 1) || (setBreak && brk < 1) {
				return errors.New("durations must be at least 1 minute")
			}

			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			if setWork {
				sess.widget.SetWorkMinutes(work)
			}
			if setBreak {
				sess.widget.SetBreakMinutes(brk)
			}

			st := sess.widget.Timer()
			fmt.Fprintf(cmd.OutOrStdout(), "work %dm, break %dm\n", st.WorkMinutes, st.BreakMinutes)
			return nil
		},
	}

	cmd.Flags().IntVar(&work, "work", 0, "Work length in minutes")
	cmd.Flags().IntVar(&brk, "break", 0, "Break length in minutes")
	return cmd
}
