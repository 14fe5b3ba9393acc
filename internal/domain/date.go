package domain

import "time"

// DateLayout is the canonical day-granular date format used throughout
// the engine and storage layer.
const DateLayout = "2006-01-02"

// DayOf truncates t to UTC midnight. All allocation math operates on
// these day-granular values so that two timestamps on the same calendar
// day always compare equal.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey returns the canonical string key for the day containing t.
func DateKey(t time.Time) string {
	return DayOf(t).Format(DateLayout)
}

// NextDay returns UTC midnight of the day after t.
func NextDay(t time.Time) time.Time {
	return DayOf(t).AddDate(0, 0, 1)
}

// MaxDay returns the later of two day-granular dates.
func MaxDay(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}
