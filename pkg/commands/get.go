package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/flowstate/pkg/commands/options"
	"tableflip.dev/flowstate/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:       "get [collection]",
		Short:     "List tasks, projects, docs or whiteboards",
		ValidArgs: []string{"tasks", "projects", "docs", "whiteboards", "focus", "triage"},
		Example: `
flowstate get
flowstate get tasks --focus
flowstate get tasks --project <project id>
flowstate get focus
flowstate get triage
flowstate get projects --show-id
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("too many collections set, confused")
			}
			if len(args) == 1 {
				co.Collection = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := load(context.Background())
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:     io.ShowID,
				Collection: co.Collection,
				Focus:      co.Focus,
				Project:    co.Project,
				Service:    svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFocusArg(cmd, co)
	options.AddProjectFilterArg(cmd, co)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
