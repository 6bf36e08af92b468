package cli

import (
	"fmt"
	"time"

	"github.com/sadopc/pomo/internal/export"
	"github.com/sadopc/pomo/internal/store"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write tasks and interval history to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			path := out
			if path == "" {
				path, err = export.DefaultPath(format, time.Now())
				if err != nil {
					return err
				}
			}

			intervals, err := sess.store.ListIntervals(store.IntervalFilter{})
			if err != nil {
				return err
			}
			if err := export.Write(format, sess.widget.Tasks(), intervals, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format: csv, json or yaml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default ~/pomo-export-DATE.<format>)")
	return cmd
}
