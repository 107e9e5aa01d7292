package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/flowstate/pkg/commands/options"
	"tableflip.dev/flowstate/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
flowstate add task water the plants --due 2024-06-10 --recurrence Weekly
flowstate add project "spring garden"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddTask(cmd)
	addAddProject(cmd)
	addAddDoc(cmd)
	addAddWhiteboard(cmd)

	topLevel.AddCommand(cmd)
}

func addAddTask(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	var title string

	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Add a task",
		Example: `
flowstate add task water the plants --due 2024-06-10 --recurrence Weekly --impact 3
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := load(context.Background())
			if err != nil {
				return err
			}
			s := add.Add{
				Kind:       add.Task,
				Title:      title,
				Due:        to.Due,
				Project:    to.Project,
				Recurrence: to.Recurrence,
				Impact:     to.Impact,
				Confidence: to.Confidence,
				Ease:       to.Ease,
				Service:    svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addAddProject(topLevel *cobra.Command) {
	var name string

	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects"},
		Short:   "Add a project",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a project name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := load(context.Background())
			if err != nil {
				return err
			}
			s := add.Add{
				Kind:    add.Project,
				Title:   name,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addAddDoc(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	var title string

	cmd := &cobra.Command{
		Use:     "doc",
		Aliases: []string{"docs"},
		Short:   "Add a doc",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a doc title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := load(context.Background())
			if err != nil {
				return err
			}
			s := add.Add{
				Kind:    add.Doc,
				Title:   title,
				Project: to.Project,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&to.Project, "project", "p", "", "Project id the doc belongs to.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addAddWhiteboard(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	var name string

	cmd := &cobra.Command{
		Use:     "whiteboard",
		Aliases: []string{"whiteboards", "board"},
		Short:   "Add a whiteboard",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a whiteboard name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := load(context.Background())
			if err != nil {
				return err
			}
			s := add.Add{
				Kind:    add.Whiteboard,
				Title:   name,
				Project: to.Project,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&to.Project, "project", "p", "", "Project id the whiteboard belongs to.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
