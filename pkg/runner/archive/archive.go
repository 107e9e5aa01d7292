package archive

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/flowstate/pkg/app"
)

type Archive struct {
	ID string
	// Restore brings an archived task back instead of archiving.
	Restore bool

	Service *app.Service
}

func (n *Archive) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not archive, no service")
	}
	if n.Restore {
		if err := n.Service.RestoreTask(ctx, n.ID); err != nil {
			return err
		}
		fmt.Printf("restored %s\n", n.ID)
		return nil
	}
	if err := n.Service.ArchiveTask(ctx, n.ID); err != nil {
		return err
	}
	fmt.Printf("archived %s\n", n.ID)
	return nil
}
