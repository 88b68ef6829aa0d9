// Package contract holds the request and response contracts exchanged between
// the CLI and the service layer.
package contract

import (
	"time"

	"github.com/alexanderramin/daymark/internal/domain"
)

// OverviewRequest asks for the day view of a single date.
type OverviewRequest struct {
	Date   time.Time
	Mode   domain.FilterMode
	Search string
}

// TrackerView is a tracker decorated with its display state for the viewed
// day.
type TrackerView struct {
	Tracker domain.Tracker
	// Completed reports a record on the viewed day.
	Completed bool
	// TotalCompletions counts the tracker's records across all days.
	TotalCompletions int
}

// GroupView is one rendered category group.
type GroupView struct {
	Title    string
	Trackers []TrackerView
}

// OverviewResponse is the filtered day view.
type OverviewResponse struct {
	Date    time.Time
	Weekday domain.Weekday
	Groups  []GroupView
}

// TrackerCount returns the number of trackers across all groups.
func (r *OverviewResponse) TrackerCount() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Trackers)
	}
	return n
}
