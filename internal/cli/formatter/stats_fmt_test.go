package formatter

import (
	"testing"

	"github.com/alexanderramin/daymark/internal/contract"
	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatStatistics(t *testing.T) {
	view := &contract.StatisticsView{
		Statistics: domain.TrackerStatistics{
			BestPeriod:     3,
			IdealDays:      2,
			TotalCompleted: 7,
			AverageValue:   1.75,
		},
		HasRecords: true,
	}

	out := FormatStatistics(view)

	assert.Contains(t, out, "Best period")
	assert.Contains(t, out, "3 day(s)")
	assert.Contains(t, out, "Ideal days")
	assert.Contains(t, out, "7")
	assert.Contains(t, out, "1.8") // %.1f rounding of 1.75
}

func TestFormatStatisticsNoRecords(t *testing.T) {
	out := FormatStatistics(&contract.StatisticsView{})
	assert.Contains(t, out, "Nothing to analyze yet")
	assert.NotContains(t, out, "Best period")
}
