package domain

// TrackerStatistics aggregates the completion history.
type TrackerStatistics struct {
	// BestPeriod is the longest run of consecutive calendar days with a
	// completion for a single tracker.
	BestPeriod int
	// IdealDays counts distinct days on which every tracker scheduled for
	// that weekday was completed.
	IdealDays int
	// TotalCompleted is the raw record count.
	TotalCompleted int
	// AverageValue is TotalCompleted divided by the number of distinct
	// active days, 0 when there are no records.
	AverageValue float64
}
