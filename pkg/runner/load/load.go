package load

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/flowstate/pkg/app"
	"tableflip.dev/flowstate/pkg/backup"
)

// Load imports a backup file. Items overwrite stored records with the same
// id and append otherwise; nothing is deleted.
type Load struct {
	Path string

	Service *app.Service
}

func (n *Load) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}
	if n.Path == "" {
		return errors.New("a backup file path is required")
	}

	in, err := os.Open(n.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	f, err := backup.Read(in)
	if err != nil {
		return err
	}
	if err := n.Service.Import(ctx, f.Bundle()); err != nil {
		return err
	}
	fmt.Printf("imported %d tasks, %d projects, %d docs, %d whiteboards from %s\n",
		len(f.Tasks), len(f.Projects), len(f.Docs), len(f.Whiteboards), n.Path)
	return nil
}
