package commands

import (
	"context"
	"errors"

	"tableflip.dev/flowstate/pkg/app"
	"tableflip.dev/flowstate/pkg/config"
	"tableflip.dev/flowstate/pkg/dates"
	"tableflip.dev/flowstate/pkg/dispatch"
	"tableflip.dev/flowstate/pkg/remote"
	"tableflip.dev/flowstate/pkg/replica"
	"tableflip.dev/flowstate/pkg/reset"
	"tableflip.dev/flowstate/pkg/syncer"
)

// load assembles the service over the configured data directory, fills the
// replica, and runs the once-per-day morning reset before the command's
// own work.
func load(ctx context.Context) (*app.Service, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cfg.User == "" {
		return nil, nil, errors.New(`no user configured: set "user" in .flowstate.yaml or FLOWSTATE_USER`)
	}

	store := remote.NewDisk(cfg.Path)
	rep := replica.New()
	rep.SetIdentity(cfg.User)
	clock := dates.System{}
	router := dispatch.NewRouter(store, rep, clock)
	svc := app.New(router, syncer.New(store, rep), rep, clock)

	if err := svc.Refresh(ctx); err != nil {
		return nil, nil, err
	}

	engine := &reset.Engine{
		Clock:    clock,
		Marker:   &reset.FileMarker{Path: cfg.MarkerPath()},
		Dispatch: router.Dispatch,
	}
	bumped, err := engine.Run(ctx, rep.State().Tasks)
	if err != nil {
		return nil, nil, err
	}
	if bumped > 0 {
		// Pick up the bumped due dates before the command renders.
		if err := svc.Refresh(ctx); err != nil {
			return nil, nil, err
		}
	}
	return svc, cfg, nil
}
