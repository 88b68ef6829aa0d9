// Package engine holds the pure day-view filtering and statistics
// computations. Both entry points are stateless and total: they read the
// snapshots they are handed, perform no I/O, and are safe to call
// concurrently.
package engine

import (
	"strings"
	"time"

	"github.com/alexanderramin/daymark/internal/domain"
)

// FilterInput is one day-view query: the full category snapshot plus the
// date, mode and search the user selected. Records is the full record list,
// not pre-filtered by date. Weekday must correspond to Date.
type FilterInput struct {
	Categories []domain.TrackerCategory
	Mode       domain.FilterMode
	Records    []domain.TrackerRecord
	Date       time.Time
	Search     string
	Weekday    domain.Weekday
}

// Filter returns the categories visible for the input day. A tracker is
// kept when its schedule covers the weekday (an empty schedule covers every
// day), its name matches the search, and its completion state on the viewed
// day satisfies the mode. Categories left empty are dropped, and pinned
// trackers are hoisted into a leading synthetic group.
func Filter(input FilterInput) []domain.TrackerCategory {
	completed := completedOn(input.Records, input.Date)
	search := strings.ToLower(input.Search)

	var visible []domain.TrackerCategory
	for _, cat := range input.Categories {
		var kept []domain.Tracker
		for _, tr := range cat.Trackers {
			if !tr.Schedule.IsEmpty() && !tr.Schedule.Contains(input.Weekday) {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(tr.Name), search) {
				continue
			}
			if !modeMatches(input.Mode, completed[tr.ID]) {
				continue
			}
			kept = append(kept, tr)
		}
		if len(kept) > 0 {
			visible = append(visible, domain.TrackerCategory{Title: cat.Title, Trackers: kept})
		}
	}

	return promotePinned(visible)
}

// completedOn collects the ids of trackers with a record on the same
// calendar day as date.
func completedOn(records []domain.TrackerRecord, date time.Time) map[string]bool {
	done := make(map[string]bool)
	for _, r := range records {
		if SameDay(r.Date, date) {
			done[r.TrackerID] = true
		}
	}
	return done
}

// modeMatches applies the completion-state restriction. FilterToday is
// presentation semantics only and restricts nothing; the caller is
// responsible for viewing today's date when it is active. The enumeration
// is closed — ParseFilterMode rejects anything else at the boundary.
func modeMatches(mode domain.FilterMode, completedToday bool) bool {
	switch mode {
	case domain.FilterAll, domain.FilterToday:
		return true
	case domain.FilterCompleted:
		return completedToday
	case domain.FilterUncompleted:
		return !completedToday
	}
	return false
}

// promotePinned extracts pinned trackers, in encounter order, into a
// synthetic leading group titled domain.PinnedCategoryTitle. Remaining
// trackers keep their original grouping and order; categories emptied by
// the extraction are dropped.
func promotePinned(categories []domain.TrackerCategory) []domain.TrackerCategory {
	var pinned []domain.Tracker
	var rest []domain.TrackerCategory

	for _, cat := range categories {
		var unpinned []domain.Tracker
		for _, tr := range cat.Trackers {
			if tr.IsPinned {
				pinned = append(pinned, tr)
			} else {
				unpinned = append(unpinned, tr)
			}
		}
		if len(unpinned) > 0 {
			rest = append(rest, domain.TrackerCategory{Title: cat.Title, Trackers: unpinned})
		}
	}

	if len(pinned) == 0 {
		return rest
	}
	out := make([]domain.TrackerCategory, 0, len(rest)+1)
	out = append(out, domain.TrackerCategory{Title: domain.PinnedCategoryTitle, Trackers: pinned})
	return append(out, rest...)
}
