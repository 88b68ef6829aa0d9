package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/daymark/internal/domain"
)

// resolveTrackerID accepts a tracker name, a full ID, or an ID prefix.
func resolveTrackerID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("tracker name or ID is required")
	}

	categories, err := app.Trackers.ListCategories(ctx)
	if err != nil {
		return "", err
	}
	var trackers []domain.Tracker
	for _, cat := range categories {
		trackers = append(trackers, cat.Trackers...)
	}

	// 1. Exact name match (case-insensitive)
	for _, tr := range trackers {
		if strings.EqualFold(tr.Name, input) {
			return tr.ID, nil
		}
	}

	// 2. Exact ID match
	for _, tr := range trackers {
		if tr.ID == input {
			return tr.ID, nil
		}
	}

	// 3. ID prefix match
	var matches []string
	for _, tr := range trackers {
		if strings.HasPrefix(tr.ID, input) {
			matches = append(matches, tr.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("tracker not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("tracker ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseDateFlag parses a YYYY-MM-DD flag value, defaulting to now when empty.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return t, nil
}

// parseScheduleFlag converts repeated --on values ("mon", "monday") into a
// schedule. No values at all means a one-off event tracker.
func parseScheduleFlag(values []string) (domain.Schedule, error) {
	var out domain.Schedule
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			d, err := domain.ParseWeekday(part)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
	}
	return out.Normalized(), nil
}
