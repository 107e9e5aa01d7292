// Package app ties the core together: identity lifecycle, the save flows
// that stamp history and trigger recurrence recycling, and the debounced
// autosave used by long-lived editors.
package app

import (
	"context"
	"fmt"
	"sync"

	"tableflip.dev/flowstate/pkg/dates"
	"tableflip.dev/flowstate/pkg/dispatch"
	"tableflip.dev/flowstate/pkg/item"
	"tableflip.dev/flowstate/pkg/recur"
	"tableflip.dev/flowstate/pkg/remote"
	"tableflip.dev/flowstate/pkg/replica"
	"tableflip.dev/flowstate/pkg/syncer"
)

// Service is the application facade. One Service per process; safe for
// concurrent use.
type Service struct {
	Router   *dispatch.Router
	Listener *syncer.Listener
	Replica  *replica.Store
	Clock    dates.Clock

	mu     sync.Mutex
	handle *syncer.Handle
}

// New assembles a service over shared collaborators.
func New(router *dispatch.Router, listener *syncer.Listener, rep *replica.Store, clock dates.Clock) *Service {
	return &Service{Router: router, Listener: listener, Replica: rep, Clock: clock}
}

// SignIn switches to the given identity. Any previous identity's
// subscriptions are torn down first; the old teardown runs exactly once no
// matter how sign-in and sign-out interleave.
func (s *Service) SignIn(ctx context.Context, user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle != nil {
		s.handle.Stop()
		s.handle = nil
	}
	h, err := s.Listener.Begin(ctx, user)
	if err != nil {
		return fmt.Errorf("app: sign in %s: %w", user, err)
	}
	s.handle = h
	return nil
}

// SignOut tears down the subscriptions and clears the identity. Calling it
// while signed out is a no-op.
func (s *Service) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle != nil {
		s.handle.Stop()
		s.handle = nil
	}
	s.Replica.SetIdentity("")
}

// Refresh materializes every collection from the store once, outside any
// subscription. One-shot callers use it where a long-lived process would
// rely on the listener's echo.
func (s *Service) Refresh(ctx context.Context) error {
	user := s.Replica.Identity()
	if user == "" {
		return nil
	}
	for _, c := range remote.Collections() {
		q := remote.Query{}
		if c == remote.Tasks {
			q.ExcludeArchived = true
		}
		docs, err := s.Router.Store.List(ctx, user, c, q)
		if err != nil {
			return fmt.Errorf("app: refresh %s: %w", c, err)
		}
		if err := s.Replica.ReplaceCollection(c, docs); err != nil {
			return fmt.Errorf("app: refresh %s: %w", c, err)
		}
	}
	return nil
}

// SaveTask persists a task edit. The edit is diffed against the replica's
// copy to build the history entry, and a save that completes a repeating
// task is recycled to its next occurrence instead of being persisted Done.
func (s *Service) SaveTask(ctx context.Context, t item.Task) error {
	existing, found := s.findTask(t.ID)

	if found && existing.Status != item.StatusDone && t.Status == item.StatusDone {
		if _, err := recur.Recycle(&t); err != nil {
			return fmt.Errorf("app: save task: %w", err)
		}
	}

	now := s.Clock.Now()
	stamp := s.Clock.Today().String()
	if !found {
		t.LogChange(stamp, now.Format("15:04"), []string{"Task Created"})
		return s.Router.Dispatch(ctx, dispatch.NewAddTask(t))
	}
	t.LogChange(stamp, now.Format("15:04"), diffTask(existing, t))
	return s.Router.Dispatch(ctx, dispatch.NewUpdateTask(t))
}

// CompleteTask marks a task done by id through the same save flow, so a
// repeating task recycles rather than completing.
func (s *Service) CompleteTask(ctx context.Context, id string) error {
	t, found := s.findTask(id)
	if !found {
		return fmt.Errorf("app: complete task: no task %q", id)
	}
	t.Status = item.StatusDone
	return s.SaveTask(ctx, t)
}

// ArchiveTask flips the archived flag; the listener's filtered subscription
// drops the task from the replica on the echo.
func (s *Service) ArchiveTask(ctx context.Context, id string) error {
	return s.Router.Dispatch(ctx, dispatch.NewArchiveTask(id))
}

// RestoreTask brings an archived task back.
func (s *Service) RestoreTask(ctx context.Context, id string) error {
	return s.Router.Dispatch(ctx, dispatch.NewRestoreTask(id))
}

// DeleteTask removes a task for good.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	return s.Router.Dispatch(ctx, dispatch.NewDeleteTask(id))
}

// SaveProject persists a project edit, snapshotting the status into the
// project history whenever the status or its note changed.
func (s *Service) SaveProject(ctx context.Context, p item.Project) error {
	existing, found := s.findProject(p.ID)

	now := s.Clock.Now()
	stamp := s.Clock.Today().String()
	if !found {
		p.LogStatus(stamp, now.Format("15:04"), p.StatusNote)
		return s.Router.Dispatch(ctx, dispatch.NewAddProject(p))
	}
	if existing.Status != p.Status || existing.StatusNote != p.StatusNote {
		p.LogStatus(stamp, now.Format("15:04"), p.StatusNote)
	}
	return s.Router.Dispatch(ctx, dispatch.NewUpdateProject(p))
}

// TouchProject records that a project was opened.
func (s *Service) TouchProject(ctx context.Context, id string) error {
	return s.Router.Dispatch(ctx, dispatch.NewTouchProject(id))
}

// Import merges a bundle into the replica and the remote store.
func (s *Service) Import(ctx context.Context, b replica.Bundle) error {
	return s.Router.Dispatch(ctx, dispatch.NewImport(b))
}

func (s *Service) findTask(id string) (item.Task, bool) {
	if id == "" {
		return item.Task{}, false
	}
	for _, t := range s.Replica.State().Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return item.Task{}, false
}

func (s *Service) findProject(id string) (item.Project, bool) {
	if id == "" {
		return item.Project{}, false
	}
	for _, p := range s.Replica.State().Projects {
		if p.ID == id {
			return p, true
		}
	}
	return item.Project{}, false
}

// diffTask names the fields an edit changed, for the history log.
func diffTask(old, next item.Task) []string {
	var changes []string
	if old.Title != next.Title {
		changes = append(changes, fmt.Sprintf("Title: %q to %q", old.Title, next.Title))
	}
	if old.Status != next.Status {
		changes = append(changes, fmt.Sprintf("Status: %s to %s", old.Status, next.Status))
	}
	if old.DueDate != next.DueDate {
		changes = append(changes, fmt.Sprintf("Due: %s to %s", orNone(old.DueDate), orNone(next.DueDate)))
	}
	if old.Project != next.Project {
		changes = append(changes, "Project changed")
	}
	if old.Recurrence != next.Recurrence {
		changes = append(changes, fmt.Sprintf("Recurrence: %s to %s", orNone(string(old.Recurrence)), orNone(string(next.Recurrence))))
	}
	if old.StatusNote != next.StatusNote && next.StatusNote != "" {
		changes = append(changes, "Note: "+next.StatusNote)
	}
	if len(changes) == 0 {
		changes = append(changes, "Edited")
	}
	return changes
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
