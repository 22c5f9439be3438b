package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly_StripsClockAndZone(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// 23:30 in Berlin on June 14 is already June 14 21:30 UTC.
	ts := time.Date(2025, 6, 14, 23, 30, 0, 0, berlin)
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 6, 13, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(a, b), "clock times must not matter")
	assert.Equal(t, -3, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 6, 10, 0, 0, 1, 0, time.UTC)
	b := time.Date(2025, 6, 10, 23, 59, 59, 0, time.UTC)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, b.AddDate(0, 0, 1)))
}
