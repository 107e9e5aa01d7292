package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/flowstate/pkg/app"
	"tableflip.dev/flowstate/pkg/backup"
)

// Export writes a backup file of everything the replica holds. "-" writes
// to stdout.
type Export struct {
	Path string

	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	if n.Path == "" {
		return errors.New("a destination path is required")
	}

	f := backup.Snapshot(n.Service.Replica.State(), n.Service.Clock.Now())

	if n.Path == "-" {
		return backup.Write(os.Stdout, f)
	}
	out, err := os.Create(n.Path)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := backup.Write(out, f); err != nil {
		return err
	}
	fmt.Printf("exported %d tasks, %d projects, %d docs, %d whiteboards to %s\n",
		len(f.Tasks), len(f.Projects), len(f.Docs), len(f.Whiteboards), n.Path)
	return nil
}
