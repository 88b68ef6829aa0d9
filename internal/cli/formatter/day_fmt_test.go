package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/daymark/internal/contract"
	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatOverview(t *testing.T) {
	resp := &contract.OverviewResponse{
		Date:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Weekday: domain.Monday,
		Groups: []contract.GroupView{
			{
				Title: domain.PinnedCategoryTitle,
				Trackers: []contract.TrackerView{
					{
						Tracker: domain.Tracker{
							Name:     "Meditate",
							Emoji:    "🧘",
							IsPinned: true,
							Schedule: domain.Schedule{domain.Monday},
						},
						Completed:        true,
						TotalCompletions: 4,
					},
				},
			},
			{
				Title: "Health",
				Trackers: []contract.TrackerView{
					{Tracker: domain.Tracker{Name: "Run", Color: "#8ec07c"}},
				},
			},
		},
	}

	out := FormatOverview(resp)

	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "PINNED")
	assert.Contains(t, out, "HEALTH")
	assert.Contains(t, out, "Meditate")
	assert.Contains(t, out, "🧘")
	assert.Contains(t, out, "4 times")
	assert.Contains(t, out, "Run")
	assert.Contains(t, out, "Every day")
	assert.Contains(t, out, "2 tracker(s)")
}

func TestFormatOverviewEmpty(t *testing.T) {
	resp := &contract.OverviewResponse{
		Date:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Weekday: domain.Monday,
	}

	out := FormatOverview(resp)
	assert.Contains(t, out, "Nothing to track")
}
