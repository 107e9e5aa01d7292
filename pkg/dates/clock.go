package dates

import "time"

// Clock supplies the current calendar day. Engines take a Clock rather than
// reading the wall clock so tests can pin the day.
type Clock interface {
	Today() Date
	Now() time.Time
}

// System reads the local wall clock.
type System struct{}

func (System) Today() Date    { return FromTime(time.Now()) }
func (System) Now() time.Time { return time.Now() }

// Fixed is a Clock pinned to a single day, for tests.
type Fixed struct {
	Day Date
}

func (f Fixed) Today() Date { return f.Day }

func (f Fixed) Now() time.Time {
	return time.Date(f.Day.Year, f.Day.Month, f.Day.Day, 12, 0, 0, 0, time.UTC)
}
