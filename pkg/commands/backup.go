package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/flowstate/pkg/runner/export"
	importer "tableflip.dev/flowstate/pkg/runner/load"
)

func addBackup(topLevel *cobra.Command) {
	var path string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export everything to a backup file",
		Example: `
flowstate backup flowstate-backup.json
flowstate backup -
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a destination path, or - for stdout")
			}
			path = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := load(context.Background())
			if err != nil {
				return err
			}
			s := export.Export{
				Path:    path,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import a backup file",
		Long: "Import a backup file. Items overwrite stored records with " +
			"the same id and append otherwise; nothing is deleted.",
		Example: `
flowstate import flowstate-backup.json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a backup file path")
			}
			path = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := load(context.Background())
			if err != nil {
				return err
			}
			s := importer.Load{
				Path:    path,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(importCmd, output)
	topLevel.AddCommand(importCmd)
}
