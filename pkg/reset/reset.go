// Package reset is the morning reset engine: a boot-time pass that rolls
// stale daily-recurring tasks forward to today, at most once per calendar
// day. The day gate is a single persisted marker, so the pass is idempotent
// within a day but carries no protection against clock skew or a second
// concurrent instance on the same identity.
package reset

import (
	"context"
	"fmt"

	"tableflip.dev/flowstate/pkg/dates"
	"tableflip.dev/flowstate/pkg/dispatch"
	"tableflip.dev/flowstate/pkg/item"
)

const bumpNote = "Auto-bumped by Morning Reset"

// Engine runs the once-per-day pass. Updates go through the same dispatch
// path every other mutation takes.
type Engine struct {
	Clock    dates.Clock
	Marker   Marker
	Dispatch func(ctx context.Context, in dispatch.Intent) error
}

// Run scans the tasks and bumps every daily-recurring, not-done, overdue
// task's due date to today. It returns the number of tasks bumped. The pass
// is skipped entirely when the marker already names today, or when the task
// list is empty — an empty list usually means sync has not caught up yet,
// and acting on it would record the marker without ever seeing the tasks.
func (e *Engine) Run(ctx context.Context, tasks []item.Task) (int, error) {
	if len(tasks) == 0 {
		return 0, nil
	}
	today := e.Clock.Today()
	last, err := e.Marker.Last()
	if err != nil {
		return 0, fmt.Errorf("reset: read marker: %w", err)
	}
	if last.Equal(today) {
		return 0, nil
	}

	bumped := 0
	for _, t := range tasks {
		if !e.needsBump(t, today) {
			continue
		}
		t.DueDate = today.String()
		t.LogChange(today.String(), e.Clock.Now().Format("15:04"), []string{bumpNote})
		if err := e.Dispatch(ctx, dispatch.NewUpdateTask(t)); err != nil {
			return bumped, fmt.Errorf("reset: bump %s: %w", t.ID, err)
		}
		bumped++
	}

	// The marker advances even when nothing needed bumping, so a second
	// open today does no work at all.
	if err := e.Marker.Set(today); err != nil {
		return bumped, fmt.Errorf("reset: write marker: %w", err)
	}
	return bumped, nil
}

func (e *Engine) needsBump(t item.Task, today dates.Date) bool {
	if t.Recurrence != item.RecurrenceDaily || t.Status == item.StatusDone || t.Archived {
		return false
	}
	due, err := dates.Parse(t.DueDate)
	if err != nil {
		return false
	}
	return due.Before(today)
}
