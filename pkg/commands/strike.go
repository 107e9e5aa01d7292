package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/flowstate/pkg/commands/options"
	"tableflip.dev/flowstate/pkg/runner/strike"
)

func addStrike(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var kind string
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"strike", "rm"},
		Short:   "Delete an item permanently",
		Long: "Delete an item by id. This is not archiving; the record is " +
			"gone. Asks for confirmation unless --yes is given.",
		Example: `
flowstate delete <task id>
flowstate delete --kind project <project id> --yes
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an item id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := load(context.Background())
			if err != nil {
				return err
			}
			s := strike.Strike{
				ID:      io.ID,
				Kind:    strike.Kind(kind),
				Yes:     yes,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "task", "What to delete: task, project, doc, whiteboard.")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
