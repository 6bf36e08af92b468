package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newTasksCmd(opts *globalOptions) *cobra.Command {
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "List, add and remove tasks",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			tasks := sess.widget.Tasks()
			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks.")
				return nil
			}
			for i, task := range tasks {
				fmt.Fprintf(out, "%3d. %s\n", i+1, task)
			}
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Append a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			text := strings.Join(args, " ")
			if !sess.widget.AddTask(text) {
				return fmt.Errorf("task text is empty")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", len(sess.widget.Tasks()), text)
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:     "rm <number>",
		Aliases: []string{"remove"},
		Short:   "Remove a task by its number in `tasks list`",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task number %q", args[0])
			}

			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			tasks := sess.widget.Tasks()
			if !sess.widget.RemoveTask(n - 1) {
				return fmt.Errorf("no task number %d (have %d)", n, len(tasks))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %d: %s\n", n, tasks[n-1])
			return nil
		},
	}

	tasksCmd.AddCommand(listCmd, addCmd, rmCmd)
	return tasksCmd
}
