package add

import (
	"context"
	"errors"

	"tableflip.dev/flowstate/pkg/app"
	"tableflip.dev/flowstate/pkg/dispatch"
	"tableflip.dev/flowstate/pkg/item"
	"tableflip.dev/flowstate/pkg/printers"
)

// Kind selects which collection the new item lands in.
type Kind string

const (
	Task       Kind = "task"
	Project    Kind = "project"
	Doc        Kind = "doc"
	Whiteboard Kind = "whiteboard"
)

type Add struct {
	Kind       Kind
	Title      string
	Due        string
	Project    string
	Recurrence string
	Impact     int
	Confidence int
	Ease       int

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.Title == "" {
		return errors.New("a title is required")
	}

	pp := printers.PrettyPrint{}

	switch n.Kind {
	case Task:
		t := item.Task{
			Title:      n.Title,
			DueDate:    n.Due,
			Project:    n.Project,
			Recurrence: item.Recurrence(n.Recurrence),
		}
		if n.Impact > 0 || n.Confidence > 0 || n.Ease > 0 {
			t.ICE = &item.ICE{Impact: n.Impact, Confidence: n.Confidence, Ease: n.Ease}
		}
		if err := n.Service.SaveTask(ctx, t); err != nil {
			return err
		}
		pp.Title("Added")
		pp.Tasks(t)
	case Project:
		p := item.Project{Name: n.Title, Status: item.ProjectOnTrack}
		if err := n.Service.SaveProject(ctx, p); err != nil {
			return err
		}
		pp.Title("Added")
		pp.Projects(p)
	case Doc:
		d := item.Doc{Title: n.Title, ProjectID: n.Project}
		if err := n.Service.Router.Dispatch(ctx, dispatch.NewAddDoc(d)); err != nil {
			return err
		}
		pp.Title("Added")
		pp.Docs(d)
	case Whiteboard:
		w := item.Whiteboard{Name: n.Title, ProjectID: n.Project}
		if err := n.Service.Router.Dispatch(ctx, dispatch.NewAddWhiteboard(w)); err != nil {
			return err
		}
		pp.Title("Added")
		pp.Whiteboards(w)
	default:
		return errors.New("unknown kind: " + string(n.Kind))
	}
	return nil
}
