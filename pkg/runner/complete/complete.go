package complete

import (
	"context"
	"errors"

	"tableflip.dev/flowstate/pkg/app"
	"tableflip.dev/flowstate/pkg/printers"
)

type Complete struct {
	ID string

	Service *app.Service
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}
	if err := n.Service.CompleteTask(ctx, n.ID); err != nil {
		return err
	}

	// A recurring task comes back recycled rather than done; refresh and
	// show the stored record so the user sees the next occurrence.
	if err := n.Service.Refresh(ctx); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	for _, t := range n.Service.Replica.State().Tasks {
		if t.ID == n.ID {
			pp.Title("Completed")
			pp.Tasks(t)
			break
		}
	}
	return nil
}
