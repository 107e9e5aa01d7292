package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "flowstate",
		Short: base.Wrap80("Local-first tasks, projects, docs and whiteboards on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addArchive(topLevel)
	addStrike(topLevel)
	addTouch(topLevel)
	addShutdown(topLevel)
	addReset(topLevel)
	addBackup(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}
