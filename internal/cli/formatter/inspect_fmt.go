package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/daymark/internal/domain"
)

const inspectHistoryLimit = 10

// FormatTrackerInspect formats a single tracker's details and its most
// recent completions. Records are expected newest first.
func FormatTrackerInspect(tr *domain.Tracker, records []domain.TrackerRecord) string {
	var b strings.Builder

	name := tr.Name
	if tr.Emoji != "" {
		name = tr.Emoji + " " + name
	}
	b.WriteString(Bold(name))
	if tr.IsPinned {
		b.WriteString(" " + PinBadge(true))
	}
	b.WriteString("\n\n")

	rows := [][]string{
		{Dim("ID"), TruncID(tr.ID)},
		{Dim("Category"), tr.Category},
		{Dim("Schedule"), FormatSchedule(tr.Schedule)},
		{Dim("Completions"), FormatCompletions(len(records))},
		{Dim("Created"), HumanDate(tr.CreatedAt)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n", row[0], row[1]))
	}

	if len(records) > 0 {
		b.WriteString("\n" + Header("Recent") + "\n")
		for i, rec := range records {
			if i == inspectHistoryLimit {
				b.WriteString(Dim(fmt.Sprintf("… and %d more", len(records)-i)) + "\n")
				break
			}
			b.WriteString(StyleGreen.Render("✓") + " " + HumanDate(rec.Date) + "\n")
		}
	}

	return RenderBox("Tracker", b.String())
}
