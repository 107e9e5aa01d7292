package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/flowstate/pkg/commands/options"
	"tableflip.dev/flowstate/pkg/runner/shutdown"
)

func addShutdown(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var tomorrow, monday bool

	cmd := &cobra.Command{
		Use:   "shutdown",
		Short: "End-of-day review of due and overdue tasks",
		Long: "List the open tasks that are due today or overdue. With " +
			"--tomorrow or --monday, reschedule all of them in one go.",
		Example: `
flowstate shutdown
flowstate shutdown --tomorrow
flowstate shutdown --monday
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := load(context.Background())
			if err != nil {
				return err
			}
			s := shutdown.Shutdown{
				ShowID:   io.ShowID,
				Tomorrow: tomorrow,
				Monday:   monday,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&tomorrow, "tomorrow", false, "Reschedule everything listed to tomorrow.")
	cmd.Flags().BoolVar(&monday, "monday", false, "Reschedule everything listed to next Monday.")
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
