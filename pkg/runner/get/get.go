package get

import (
	"context"
	"errors"

	"tableflip.dev/flowstate/pkg/app"
	"tableflip.dev/flowstate/pkg/printers"
	"tableflip.dev/flowstate/pkg/remote"
	"tableflip.dev/flowstate/pkg/triage"
)

type Get struct {
	ShowID bool
	// Collection is one of tasks, projects, docs, whiteboards, or the two
	// task views focus and triage; empty means every collection.
	Collection string
	// Focus orders tasks by ICE score instead of store order.
	Focus bool
	// Project filters tasks to one project id.
	Project string

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	state := n.Service.Replica.State()

	show := func(c remote.Collection) {
		switch c {
		case remote.Tasks:
			tasks := state.Tasks
			if n.Focus {
				tasks = n.Service.Focus()
			}
			if n.Project != "" {
				tasks = n.Service.ProjectTasks(n.Project)
			}
			pp.TitleWithCount("Tasks", len(tasks))
			pp.Tasks(tasks...)
		case remote.Projects:
			pp.TitleWithCount("Projects", len(state.Projects))
			pp.Projects(state.Projects...)
		case remote.Docs:
			pp.TitleWithCount("Docs", len(state.Docs))
			pp.Docs(state.Docs...)
		case remote.Whiteboards:
			pp.TitleWithCount("Whiteboards", len(state.Whiteboards))
			pp.Whiteboards(state.Whiteboards...)
		}
	}

	switch n.Collection {
	case "":
		for _, c := range remote.Collections() {
			show(c)
		}
		return nil
	case "focus":
		tasks := n.Service.Focus()
		pp.TitleWithCount("Focus", len(tasks))
		pp.Tasks(tasks...)
		return nil
	case "triage":
		tasks := triage.Pending(state.Tasks, n.Service.Clock.Today())
		pp.TitleWithCount("Due or overdue", len(tasks))
		pp.Tasks(tasks...)
		return nil
	case "boards":
		show(remote.Whiteboards)
		return nil
	}

	c := remote.Collection(n.Collection)
	switch c {
	case remote.Tasks, remote.Projects, remote.Docs, remote.Whiteboards:
		show(c)
		return nil
	}
	return errors.New("unknown collection: " + n.Collection)
}
