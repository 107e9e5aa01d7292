package touch

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/flowstate/pkg/app"
)

// Touch records that a project was opened, refreshing its
// last-interacted stamp without an edit.
type Touch struct {
	ID string

	Service *app.Service
}

func (n *Touch) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not touch, no service")
	}
	if err := n.Service.TouchProject(ctx, n.ID); err != nil {
		return err
	}
	fmt.Printf("touched %s\n", n.ID)
	return nil
}
