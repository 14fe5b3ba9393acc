package repository

import (
	"database/sql"
	"time"
)

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableStr converts an empty string to SQL NULL, leaving other
// values untouched. Used for optional foreign keys.
func nullableStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// weekdayMapToString packs a per-weekday boolean map into a 7-character
// 0/1 string indexed Sunday through Saturday. Returns SQL NULL for nil.
func weekdayMapToString(m map[time.Weekday]bool) interface{} {
	if m == nil {
		return nil
	}
	buf := make([]byte, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if m[d] {
			buf[d] = '1'
		} else {
			buf[d] = '0'
		}
	}
	return string(buf)
}

// parseWeekdayMap is the inverse of weekdayMapToString. Returns nil for
// NULL or malformed values.
func parseWeekdayMap(s sql.NullString) map[time.Weekday]bool {
	if !s.Valid || len(s.String) != 7 {
		return nil
	}
	m := make(map[time.Weekday]bool, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		m[d] = s.String[d] == '1'
	}
	return m
}
