package engine

import (
	"sort"
	"time"

	"github.com/alexanderramin/daymark/internal/domain"
)

// Calculate computes the aggregate statistics for the full tracker and
// record snapshots. Empty inputs yield the zero-valued struct; whether
// zeros mean "nothing to show" is the caller's policy, not applied here.
func Calculate(trackers []domain.Tracker, records []domain.TrackerRecord) domain.TrackerStatistics {
	return domain.TrackerStatistics{
		BestPeriod:     bestPeriod(records),
		IdealDays:      idealDays(trackers, records),
		TotalCompleted: len(records),
		AverageValue:   averageValue(records),
	}
}

// bestPeriod finds the longest run of consecutive calendar days with a
// completion for any single tracker. Streaks never span trackers, and
// duplicate records on one day collapse to a single day.
func bestPeriod(records []domain.TrackerRecord) int {
	byTracker := make(map[string]map[string]bool)
	for _, r := range records {
		days := byTracker[r.TrackerID]
		if days == nil {
			days = make(map[string]bool)
			byTracker[r.TrackerID] = days
		}
		days[dayKey(r.Date)] = true
	}

	best := 0
	for _, days := range byTracker {
		if run := longestRun(days); run > best {
			best = run
		}
	}
	return best
}

// longestRun walks a tracker's distinct days in ascending order, extending
// the current run whenever a day immediately follows the previous one.
// A single isolated day counts as a run of 1.
func longestRun(days map[string]bool) int {
	sorted := make([]time.Time, 0, len(days))
	for key := range days {
		sorted = append(sorted, keyDay(key))
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	best, run := 0, 0
	var prev time.Time
	for i, day := range sorted {
		if i > 0 && prev.AddDate(0, 0, 1).Equal(day) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = day
	}
	return best
}

// idealDays counts distinct days on which every regular tracker scheduled
// for that weekday was completed. Event trackers (empty schedule) are never
// part of the required set, even though the day view treats them as due
// every day — an intentional asymmetry. Days with nothing scheduled cannot
// be ideal.
func idealDays(trackers []domain.Tracker, records []domain.TrackerRecord) int {
	if len(trackers) == 0 || len(records) == 0 {
		return 0
	}

	completedByDay := make(map[string]map[string]bool)
	for _, r := range records {
		done := completedByDay[dayKey(r.Date)]
		if done == nil {
			done = make(map[string]bool)
			completedByDay[dayKey(r.Date)] = done
		}
		done[r.TrackerID] = true
	}

	count := 0
	for key, done := range completedByDay {
		weekday := domain.WeekdayOf(keyDay(key))
		scheduled := 0
		missed := false
		for _, tr := range trackers {
			if tr.Schedule.IsEmpty() || !tr.Schedule.Contains(weekday) {
				continue
			}
			scheduled++
			if !done[tr.ID] {
				missed = true
				break
			}
		}
		if scheduled > 0 && !missed {
			count++
		}
	}
	return count
}

// averageValue is the raw record count divided by the number of distinct
// active days, 0 when no records exist.
func averageValue(records []domain.TrackerRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	days := make(map[string]bool)
	for _, r := range records {
		days[dayKey(r.Date)] = true
	}
	if len(days) == 0 {
		return 0
	}
	return float64(len(records)) / float64(len(days))
}
