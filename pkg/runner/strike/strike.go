package strike

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tableflip.dev/flowstate/pkg/app"
	"tableflip.dev/flowstate/pkg/dispatch"
)

// Kind selects which collection the delete targets.
type Kind string

const (
	Task       Kind = "task"
	Project    Kind = "project"
	Doc        Kind = "doc"
	Whiteboard Kind = "whiteboard"
)

// Strike removes an item permanently. Archiving is the reversible path;
// striking is not, so it asks first unless Yes is set.
type Strike struct {
	ID   string
	Kind Kind
	Yes  bool

	// In is the confirmation source, stdin when nil.
	In io.Reader

	Service *app.Service
}

func (n *Strike) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not strike, no service")
	}

	var in dispatch.Intent
	switch n.Kind {
	case Task, "":
		in = dispatch.NewDeleteTask(n.ID)
	case Project:
		in = dispatch.NewDeleteProject(n.ID)
	case Doc:
		in = dispatch.NewDeleteDoc(n.ID)
	case Whiteboard:
		in = dispatch.NewDeleteWhiteboard(n.ID)
	default:
		return errors.New("unknown kind: " + string(n.Kind))
	}

	if !n.Yes && !n.confirm() {
		fmt.Println("kept", n.ID)
		return nil
	}
	if err := n.Service.Router.Dispatch(ctx, in); err != nil {
		return err
	}
	fmt.Printf("struck %s\n", n.ID)
	return nil
}

func (n *Strike) confirm() bool {
	src := n.In
	if src == nil {
		src = os.Stdin
	}
	fmt.Printf("delete %s permanently? [y/N] ", n.ID)
	line, err := bufio.NewReader(src).ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
