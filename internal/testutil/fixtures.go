package testutil

import (
	"time"

	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/google/uuid"
)

// Tracker options
type TrackerOption func(*domain.Tracker)

func WithSchedule(days ...domain.Weekday) TrackerOption {
	return func(t *domain.Tracker) {
		t.Schedule = domain.Schedule(days)
	}
}

func WithCategory(title string) TrackerOption {
	return func(t *domain.Tracker) {
		t.Category = title
	}
}

func WithPinned() TrackerOption {
	return func(t *domain.Tracker) {
		t.IsPinned = true
	}
}

func WithEmoji(emoji string) TrackerOption {
	return func(t *domain.Tracker) {
		t.Emoji = emoji
	}
}

func WithColor(color string) TrackerOption {
	return func(t *domain.Tracker) {
		t.Color = color
	}
}

func NewTestTracker(name string, opts ...TrackerOption) *domain.Tracker {
	now := time.Now().UTC()
	t := &domain.Tracker{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     "#8ec07c",
		Emoji:     "✅",
		Category:  "General",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestRecord builds a completion record for the given tracker and day.
func NewTestRecord(trackerID string, date time.Time) *domain.TrackerRecord {
	return &domain.TrackerRecord{
		ID:        uuid.New().String(),
		TrackerID: trackerID,
		Date:      date,
	}
}
