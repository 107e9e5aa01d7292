package dates

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// Date is a calendar date with no time-of-day or timezone attached. Date
// arithmetic anchors at midday so converting through time.Time can never
// roll the result across a day boundary.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Parse reads an ISO YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		return Date{}, fmt.Errorf("dates: parse %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// FromTime truncates a wall-clock time to its calendar date.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// String renders the fixed-width zero-padded ISO form. Because the form is
// fixed width, lexicographic comparison of rendered dates matches
// chronological order.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) Equal(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

// Weekday reports the day of week for the date.
func (d Date) Weekday() time.Weekday {
	return d.noon().Weekday()
}

// AddDays moves the date forward (or back, for negative n) by whole days.
func (d Date) AddDays(n int) Date {
	return FromTime(d.noon().AddDate(0, 0, n))
}

// AddMonths advances by calendar months, clamping the day to the last day
// of the target month when the source day does not exist there
// (Jan 31 + 1 month = Feb 28, or Feb 29 in a leap year).
func (d Date) AddMonths(n int) Date {
	months := int(d.Month) - 1 + n
	year := d.Year + months/12
	month := time.Month(months%12 + 1)
	if months < 0 {
		m := months%12 + 12
		year = d.Year + (months-11)/12
		month = time.Month(m%12 + 1)
	}
	day := d.Day
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return Date{Year: year, Month: month, Day: day}
}

// NextMonday returns the upcoming Monday strictly after the date. When the
// date is already a Monday the answer is the Monday a full week out, so the
// result never equals the receiver.
func (d Date) NextMonday() Date {
	ahead := (1 + 7 - int(d.Weekday())) % 7
	if ahead == 0 {
		ahead = 7
	}
	return d.AddDays(ahead)
}

// DaysIn reports the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

func (d Date) noon() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}
