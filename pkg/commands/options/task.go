package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions
type TaskOptions struct {
	Due        string
	Project    string
	Recurrence string
	Impact     int
	Confidence int
	Ease       int
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Due, "due", "",
		"Due date, YYYY-MM-DD.")
	cmd.Flags().StringVarP(&o.Project, "project", "p", "",
		"Project id the task belongs to.")
	cmd.Flags().StringVarP(&o.Recurrence, "recurrence", "r", "",
		"Repeat cadence. One of Daily, Weekly, Bi-Weekly, Monthly.")
	cmd.Flags().IntVar(&o.Impact, "impact", 0,
		"ICE impact, 1-5.")
	cmd.Flags().IntVar(&o.Confidence, "confidence", 0,
		"ICE confidence, 1-5.")
	cmd.Flags().IntVar(&o.Ease, "ease", 0,
		"ICE ease, 1-5.")
}
