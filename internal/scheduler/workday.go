package scheduler

import "time"

// All calendar math in this package happens in a single fixed calendar (UTC).
// Callers convert user-local dates before handing them in; identical inputs
// produce identical outputs regardless of the process timezone.

// DateOnly truncates a timestamp to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)) / (24 * time.Hour))
}

// IsWeekend reports whether the date falls on a Saturday or Sunday in UTC.
func IsWeekend(d time.Time) bool {
	wd := DateOnly(d).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddWorkdaysInclusive returns the date reached by counting the given number
// of workdays starting at start, inclusively: workdays = 1 lands on start
// itself. A weekend start first snaps forward to the next workday, and that
// day counts as workday 1.
func AddWorkdaysInclusive(start time.Time, workdays int) time.Time {
	if workdays < 1 {
		workdays = 1
	}
	d := DateOnly(start)
	for IsWeekend(d) {
		d = d.AddDate(0, 0, 1)
	}
	remaining := workdays - 1
	for remaining > 0 {
		d = d.AddDate(0, 0, 1)
		if !IsWeekend(d) {
			remaining--
		}
	}
	return d
}
