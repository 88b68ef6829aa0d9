package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatTrackerInspect(t *testing.T) {
	tr := &domain.Tracker{
		ID:        "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		Name:      "Run",
		Emoji:     "🏃",
		Category:  "Health",
		Schedule:  domain.Schedule{domain.Monday, domain.Wednesday},
		IsPinned:  true,
		CreatedAt: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	records := []domain.TrackerRecord{
		{TrackerID: tr.ID, Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{TrackerID: tr.ID, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	out := FormatTrackerInspect(tr, records)

	assert.Contains(t, out, "Run")
	assert.Contains(t, out, "🏃")
	assert.Contains(t, out, "⚑")
	assert.Contains(t, out, "Health")
	assert.Contains(t, out, "Mon, Wed")
	assert.Contains(t, out, "2 times")
	assert.Contains(t, out, "RECENT")
	assert.Contains(t, out, "Jan 3, 2024")
}

func TestFormatTrackerInspect_TruncatesHistory(t *testing.T) {
	tr := &domain.Tracker{ID: "id", Name: "Run", Category: "Health"}
	var records []domain.TrackerRecord
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		records = append(records, domain.TrackerRecord{TrackerID: "id", Date: day.AddDate(0, 0, i)})
	}

	out := FormatTrackerInspect(tr, records)
	assert.Contains(t, out, "and 4 more")
}

func TestFormatTrackerInspect_NoRecords(t *testing.T) {
	tr := &domain.Tracker{ID: "id", Name: "Run", Category: "Health"}

	out := FormatTrackerInspect(tr, nil)
	assert.Contains(t, out, "0 times")
	assert.NotContains(t, out, "RECENT")
}
