package engine

import "time"

// DayStart truncates t to midnight in its own location.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// dayKey collapses a timestamp to its calendar day for use as a map key.
func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// keyDay is the inverse of dayKey, returning the day at midnight UTC.
// Keys only ever come from dayKey, so parse errors cannot occur.
func keyDay(key string) time.Time {
	t, _ := time.Parse(time.DateOnly, key)
	return t
}
