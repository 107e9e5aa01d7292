package reset

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/flowstate/pkg/app"
	engine "tableflip.dev/flowstate/pkg/reset"
)

// Reset reports the morning-reset state and can run the pass explicitly.
// The pass also runs on every boot; this command exists to inspect the
// marker and force a run after changing the clock or the data directory.
type Reset struct {
	Marker engine.Marker

	Service *app.Service
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reset, no service")
	}
	if n.Marker == nil {
		return errors.New("can not reset, no marker")
	}

	last, err := n.Marker.Last()
	if err != nil {
		return err
	}
	if last.IsZero() {
		fmt.Println("last opened: never")
	} else {
		fmt.Println("last opened:", last)
	}

	e := &engine.Engine{Clock: n.Service.Clock, Marker: n.Marker, Dispatch: n.Service.Router.Dispatch}
	bumped, err := e.Run(ctx, n.Service.Replica.State().Tasks)
	if err != nil {
		return err
	}
	switch bumped {
	case 0:
		fmt.Println("nothing to bump")
	case 1:
		fmt.Println("bumped 1 daily task to today")
	default:
		fmt.Printf("bumped %d daily tasks to today\n", bumped)
	}
	return nil
}
