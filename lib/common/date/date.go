package date

import "time"

// Date creates a new date at day granularity.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns today's date.
func Today() time.Time {
	now := time.Now().Local()
	return Date(now.Year(), now.Month(), now.Day())
}

// Day truncates the given time to day granularity.
func Day(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// EndOfMonth returns the last date of the month which contains
// the receiver.
func EndOfMonth(d time.Time) time.Time {
	return Date(d.Year(), d.Month(), 1).AddDate(0, 1, -1)
}

// Between returns the number of days between t0 and t1.
func Between(t0, t1 time.Time) int {
	return int(t1.Sub(t0).Hours() / 24)
}

// Period is an inclusive date range.
type Period struct {
	Start, End time.Time
}

// Month returns the period covering the given calendar month.
func Month(year int, month time.Month) Period {
	start := Date(year, month, 1)
	return Period{Start: start, End: EndOfMonth(start)}
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Days returns the number of days in the period, counting both ends.
func (p Period) Days() int {
	return Between(p.Start, p.End) + 1
}
