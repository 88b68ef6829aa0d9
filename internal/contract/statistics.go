package contract

import "github.com/alexanderramin/daymark/internal/domain"

// StatisticsView wraps the computed statistics for presentation. HasRecords
// lets the UI decide whether to show a placeholder instead of zeros; the
// engine itself always computes real values.
type StatisticsView struct {
	Statistics domain.TrackerStatistics
	HasRecords bool
}
