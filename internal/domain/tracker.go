package domain

import "time"

// Tracker is a user-defined habit or one-off event. Color and Emoji are
// opaque presentation attributes; the engines never interpret them.
type Tracker struct {
	ID       string
	Name     string
	Color    string
	Emoji    string
	Schedule Schedule
	Category string
	IsPinned bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRegular reports whether the tracker repeats on a weekly schedule.
// Non-regular trackers (empty schedule) are one-off events.
func (t Tracker) IsRegular() bool {
	return !t.Schedule.IsEmpty()
}
