package domain

import "time"

// DateLayout is the storage format for day-granularity dates.
const DateLayout = "2006-01-02"

// DateOnly truncates t to midnight UTC. All watering bookkeeping is
// day-granular; two timestamps on the same calendar day are the same date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// SameDay reports whether a and b fall on the same calendar day (UTC).
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
