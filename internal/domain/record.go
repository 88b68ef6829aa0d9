package domain

import "time"

// TrackerRecord states that a tracker was completed on a calendar day.
// Time-of-day on Date is irrelevant; all comparisons are by calendar day.
// The store keeps at most one record per (tracker, day); the engines still
// collapse duplicates defensively.
type TrackerRecord struct {
	ID        string
	TrackerID string
	Date      time.Time
}
