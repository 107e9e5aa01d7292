package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/flowstate/pkg/commands/options"
	"tableflip.dev/flowstate/pkg/runner/archive"
)

func addArchive(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Archive a task",
		Long: "Archive a task by id. Archived tasks keep their record but " +
			"drop out of every listing; restore brings them back.",
		Example: `
flowstate archive <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
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
			s := archive.Archive{
				ID:      io.ID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)

	restore := &cobra.Command{
		Use:   "restore",
		Short: "Restore an archived task",
		Example: `
flowstate restore <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
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
			s := archive.Archive{
				ID:      io.ID,
				Restore: true,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(restore, output)
	topLevel.AddCommand(restore)
}
