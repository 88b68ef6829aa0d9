package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/daymark/internal/contract"
	"github.com/charmbracelet/lipgloss"
)

// FormatOverview formats the day view as grouped tracker lists.
func FormatOverview(resp *contract.OverviewResponse) string {
	var b strings.Builder

	dateLine := fmt.Sprintf("%s  %s", Bold(HumanDate(resp.Date)), Dim(resp.Weekday.String()))
	b.WriteString(dateLine + "\n")

	if resp.TrackerCount() == 0 {
		b.WriteString("\n" + Dim("Nothing to track on this day.") + "\n")
		return RenderBox("Day", b.String())
	}

	for _, group := range resp.Groups {
		b.WriteString("\n" + Header(group.Title) + "\n")
		for _, view := range group.Trackers {
			b.WriteString(TrackerLine(view) + "\n")
		}
	}

	b.WriteString("\n" + Dim(fmt.Sprintf("%d tracker(s)", resp.TrackerCount())) + "\n")
	return RenderBox("Day", b.String())
}

// TrackerLine renders a single tracker row for the day view and the TUI.
func TrackerLine(view contract.TrackerView) string {
	tr := view.Tracker

	name := tr.Name
	if tr.Color != "" {
		name = lipgloss.NewStyle().Foreground(lipgloss.Color(tr.Color)).Render(name)
	} else {
		name = StyleFg.Render(name)
	}

	parts := []string{CheckGlyph(view.Completed)}
	if tr.Emoji != "" {
		parts = append(parts, tr.Emoji)
	}
	parts = append(parts, name)
	if badge := PinBadge(tr.IsPinned); badge != "" {
		parts = append(parts, badge)
	}
	parts = append(parts,
		Dim(FormatSchedule(tr.Schedule)),
		Dim(FormatCompletions(view.TotalCompletions)))

	return strings.Join(parts, " ")
}
