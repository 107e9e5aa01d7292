package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	engine "tableflip.dev/flowstate/pkg/reset"
	"tableflip.dev/flowstate/pkg/runner/reset"
)

func addReset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Run the morning reset pass",
		Long: "Show the last-opened marker and roll forward stale daily " +
			"tasks. The pass also runs automatically at the start of every command.",
		Example: `
flowstate reset
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := load(context.Background())
			if err != nil {
				return err
			}
			s := reset.Reset{
				Marker:  &engine.FileMarker{Path: cfg.MarkerPath()},
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
