package repository

import "time"

// dayValue formats a date as the calendar-day string stored in the records
// table. Time-of-day is deliberately discarded.
func dayValue(t time.Time) string {
	return t.Format(time.DateOnly)
}

// parseDay is the inverse of dayValue, yielding midnight UTC.
func parseDay(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
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

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
