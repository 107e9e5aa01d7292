package watch

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/flowstate/pkg/app"
	"tableflip.dev/flowstate/pkg/printers"
	"tableflip.dev/flowstate/pkg/remote"
)

// Watch attaches live subscriptions and reprints the task table every time
// the store changes, until the context is cancelled. It is the long-lived
// mode; every other command is one-shot.
type Watch struct {
	ShowID bool

	Service *app.Service
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not watch, no service")
	}
	user := n.Service.Replica.Identity()
	if user == "" {
		return errors.New("can not watch, no identity")
	}

	if err := n.Service.SignIn(ctx, user); err != nil {
		return err
	}
	defer n.Service.SignOut()

	snapshots, err := n.Service.Router.Store.Subscribe(ctx, user, remote.Tasks, remote.Query{ExcludeArchived: true})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("watching, ctrl-c to stop")
	for range snapshots {
		// The listener has already pushed the snapshot into the replica;
		// this channel is just the repaint signal.
		state := n.Service.Replica.State()
		pp.NewLine()
		pp.TitleWithCount("Tasks", len(state.Tasks))
		pp.Tasks(state.Tasks...)
	}
	return nil
}
