package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	tomorrow := now.AddDate(0, 0, 1)
	y4, m4, d4 := tomorrow.Date()
	if y2 == y4 && m2 == m4 && d2 == d4 {
		return "Tomorrow"
	}
	return t.Format("Jan 2, 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// CheckGlyph returns the completion indicator for a tracker row.
func CheckGlyph(done bool) string {
	if done {
		return StyleGreen.Render("✓")
	}
	return StyleDim.Render("○")
}

// PinBadge returns a flag marker for pinned trackers, empty otherwise.
func PinBadge(pinned bool) string {
	if pinned {
		return StyleYellow.Render("⚑")
	}
	return ""
}

// FormatSchedule renders a schedule as short weekday names. An empty
// schedule belongs to a one-off event tracker, shown as "Every day".
func FormatSchedule(s domain.Schedule) string {
	if s.IsEmpty() {
		return "Every day"
	}
	norm := s.Normalized()
	parts := make([]string, len(norm))
	for i, d := range norm {
		parts[i] = d.Short()
	}
	return strings.Join(parts, ", ")
}

// FormatCompletions renders a total completion count such as "3 times".
func FormatCompletions(n int) string {
	if n == 1 {
		return "1 time"
	}
	return fmt.Sprintf("%d times", n)
}
