package shutdown

import (
	"context"
	"errors"

	"tableflip.dev/flowstate/pkg/app"
	"tableflip.dev/flowstate/pkg/printers"
	"tableflip.dev/flowstate/pkg/triage"
)

// Shutdown runs the end-of-day review: list the due-or-overdue open tasks
// and optionally push them all to tomorrow or to next Monday.
type Shutdown struct {
	ShowID   bool
	Tomorrow bool
	Monday   bool

	Service *app.Service
}

func (n *Shutdown) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not run shutdown, no service")
	}
	if n.Tomorrow && n.Monday {
		return errors.New("pick one of --tomorrow or --monday")
	}

	today := n.Service.Clock.Today()
	pending := triage.Pending(n.Service.Replica.State().Tasks, today)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Shutdown review", len(pending))
	pp.Tasks(pending...)

	if len(pending) == 0 || (!n.Tomorrow && !n.Monday) {
		return nil
	}

	review := &triage.Review{Clock: n.Service.Clock, Dispatch: n.Service.Router.Dispatch}
	if n.Tomorrow {
		if err := review.RescheduleTomorrow(ctx, pending); err != nil {
			return err
		}
		pp.Title("Rescheduled to " + today.AddDays(1).String())
		return nil
	}
	if err := review.RescheduleNextMonday(ctx, pending); err != nil {
		return err
	}
	pp.Title("Rescheduled to " + today.NextMonday().String())
	return nil
}
