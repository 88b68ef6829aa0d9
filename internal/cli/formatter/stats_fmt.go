package formatter

import (
	"fmt"

	"github.com/alexanderramin/daymark/internal/contract"
)

// FormatStatistics formats the aggregate completion statistics. When no
// records exist yet, a placeholder replaces the zero-valued table.
func FormatStatistics(view *contract.StatisticsView) string {
	if !view.HasRecords {
		return RenderBox("Statistics", Dim("Nothing to analyze yet. Check off a tracker first."))
	}

	stats := view.Statistics
	rows := [][]string{
		{Bold("Best period"), StyleGreen.Render(fmt.Sprintf("%d day(s)", stats.BestPeriod))},
		{Bold("Ideal days"), StyleYellow.Render(fmt.Sprintf("%d", stats.IdealDays))},
		{Bold("Trackers completed"), StyleBlue.Render(fmt.Sprintf("%d", stats.TotalCompleted))},
		{Bold("Average value"), StylePurple.Render(fmt.Sprintf("%.1f", stats.AverageValue))},
	}

	return RenderBox("Statistics", RenderTable([]string{"METRIC", "VALUE"}, rows))
}
