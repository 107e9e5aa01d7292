package options

import (
	"github.com/spf13/cobra"
)

// CollectionOptions
type CollectionOptions struct {
	Collection string
	Focus      bool
	Project    string
}

func AddFocusArg(cmd *cobra.Command, o *CollectionOptions) {
	cmd.Flags().BoolVar(&o.Focus, "focus", false,
		"Order open tasks by ICE score.")
}

func AddProjectFilterArg(cmd *cobra.Command, o *CollectionOptions) {
	cmd.Flags().StringVarP(&o.Project, "project", "p", "",
		"Limit tasks to one project id.")
}
