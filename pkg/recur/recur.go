// Package recur recycles repeating tasks: when a repeating task is
// completed it does not stay done, it comes back with the next due date on
// its cadence.
package recur

import (
	"fmt"

	"tableflip.dev/flowstate/pkg/dates"
	"tableflip.dev/flowstate/pkg/item"
)

// NextDate advances a due date by one cadence step. Daily is one day,
// Weekly seven, Bi-Weekly fourteen, and Monthly one calendar month with the
// day clamped to the target month's length.
func NextDate(d dates.Date, r item.Recurrence) (dates.Date, error) {
	switch r {
	case item.RecurrenceDaily:
		return d.AddDays(1), nil
	case item.RecurrenceWeekly:
		return d.AddDays(7), nil
	case item.RecurrenceBiWeekly:
		return d.AddDays(14), nil
	case item.RecurrenceMonthly:
		return d.AddMonths(1), nil
	}
	return dates.Date{}, fmt.Errorf("recur: %q does not repeat", r)
}

// Recycle resets a just-completed repeating task for its next occurrence:
// status back to Not Started, due date advanced one step from the previous
// due date, and a status note announcing the new date. Tasks without a
// repeating cadence or a parseable due date are left untouched.
func Recycle(t *item.Task) (bool, error) {
	if !t.Recurrence.Repeats() {
		return false, nil
	}
	due, err := dates.Parse(t.DueDate)
	if err != nil {
		return false, fmt.Errorf("recur: task %s: %w", t.ID, err)
	}
	next, err := NextDate(due, t.Recurrence)
	if err != nil {
		return false, err
	}
	t.Status = item.StatusNotStarted
	t.DueDate = next.String()
	t.StatusNote = "Recycled! Next due: " + next.String()
	return true, nil
}
