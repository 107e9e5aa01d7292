// Package triage is the shutdown review: a read-side view over the replica
// that surfaces due-or-overdue open tasks at the end of the day, plus the
// two bulk reschedules the review offers. It holds no state of its own.
package triage

import (
	"context"
	"fmt"

	"tableflip.dev/flowstate/pkg/dates"
	"tableflip.dev/flowstate/pkg/dispatch"
	"tableflip.dev/flowstate/pkg/item"
)

// Pending filters tasks down to the shutdown list: not archived, not done,
// and due on or before today. Tasks with no due date or an unparseable one
// are never pending.
func Pending(tasks []item.Task, today dates.Date) []item.Task {
	var out []item.Task
	for _, t := range tasks {
		if t.Archived || t.Status == item.StatusDone || t.DueDate == "" {
			continue
		}
		due, err := dates.Parse(t.DueDate)
		if err != nil {
			continue
		}
		if !due.After(today) {
			out = append(out, t)
		}
	}
	return out
}

// Review issues the bulk reschedules. Dispatch is the same router path
// every other mutation takes, one update intent per task.
type Review struct {
	Clock    dates.Clock
	Dispatch func(ctx context.Context, in dispatch.Intent) error
}

// RescheduleTomorrow moves every task to tomorrow.
func (r *Review) RescheduleTomorrow(ctx context.Context, tasks []item.Task) error {
	return r.reschedule(ctx, tasks, r.Clock.Today().AddDays(1))
}

// RescheduleNextMonday moves every task to the next Monday, which is never
// today even when today is a Monday.
func (r *Review) RescheduleNextMonday(ctx context.Context, tasks []item.Task) error {
	return r.reschedule(ctx, tasks, r.Clock.Today().NextMonday())
}

func (r *Review) reschedule(ctx context.Context, tasks []item.Task, to dates.Date) error {
	for _, t := range tasks {
		t.DueDate = to.String()
		if err := r.Dispatch(ctx, dispatch.NewUpdateTask(t)); err != nil {
			return fmt.Errorf("triage: reschedule %s: %w", t.ID, err)
		}
	}
	return nil
}
