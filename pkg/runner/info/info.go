package info

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/flowstate/pkg/app"
	"tableflip.dev/flowstate/pkg/config"
	"tableflip.dev/flowstate/pkg/remote"
)

type Info struct {
	Config  *config.Config
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {
	if override := os.Getenv("FLOWSTATE_CONFIG_PATH"); override != "" {
		fmt.Println("FLOWSTATE_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("FLOWSTATE_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = config.Load()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.Path)
	fmt.Println("Config.user: ", n.Config.User)
	fmt.Println("Config.license: ", orUnset(n.Config.License))
	fmt.Println("Reset marker:", n.Config.MarkerPath())

	if n.Service == nil {
		return errors.New("failed to create the service")
	}

	state := n.Service.Replica.State()
	fmt.Printf("Collections:\n")
	for _, c := range remote.Collections() {
		count := 0
		switch c {
		case remote.Tasks:
			count = len(state.Tasks)
		case remote.Projects:
			count = len(state.Projects)
		case remote.Docs:
			count = len(state.Docs)
		case remote.Whiteboards:
			count = len(state.Whiteboards)
		}
		fmt.Printf("  %s: %d\n", c, count)
	}
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
