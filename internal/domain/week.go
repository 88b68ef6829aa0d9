package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Weekday numbers days Monday=1 through Sunday=7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

func (d Weekday) String() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", int(d))
}

// Short returns the three-letter abbreviation ("Mon".."Sun").
func (d Weekday) Short() string {
	s := d.String()
	if len(s) > 3 {
		return s[:3]
	}
	return s
}

// WeekdayFromCalendarIndex converts a calendar-style weekday index
// (Sunday=1 .. Saturday=7) into a Weekday. Indices outside 1..7 map to
// Monday, a defensive default kept on purpose rather than an error.
func WeekdayFromCalendarIndex(i int) Weekday {
	switch i {
	case 1:
		return Sunday
	case 2:
		return Monday
	case 3:
		return Tuesday
	case 4:
		return Wednesday
	case 5:
		return Thursday
	case 6:
		return Friday
	case 7:
		return Saturday
	}
	return Monday
}

// WeekdayOf returns the Weekday of t. Go's time package numbers Sunday=0,
// so the calendar index is time.Weekday+1.
func WeekdayOf(t time.Time) Weekday {
	return WeekdayFromCalendarIndex(int(t.Weekday()) + 1)
}

// ParseWeekday accepts full names and three-letter abbreviations,
// case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for d := Monday; d <= Sunday; d++ {
		if normalized == strings.ToLower(d.String()) || normalized == strings.ToLower(d.Short()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// Schedule is the set of weekdays a tracker is due. An empty schedule marks
// a non-regular event tracker, which is due on every date examined.
type Schedule []Weekday

func (s Schedule) IsEmpty() bool {
	return len(s) == 0
}

func (s Schedule) Contains(d Weekday) bool {
	for _, v := range s {
		if v == d {
			return true
		}
	}
	return false
}

// Normalized returns a sorted copy with duplicates removed.
func (s Schedule) Normalized() Schedule {
	seen := make(map[Weekday]bool, len(s))
	var out Schedule
	for _, d := range s {
		if d < Monday || d > Sunday || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Encode serializes the schedule as comma-separated Monday=1..Sunday=7
// digits for storage ("1,3,5"). An empty schedule encodes as "".
func (s Schedule) Encode() string {
	norm := s.Normalized()
	parts := make([]string, len(norm))
	for i, d := range norm {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

// ParseSchedule is the inverse of Encode.
func ParseSchedule(s string) (Schedule, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out Schedule
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parsing schedule entry %q: %w", part, err)
		}
		d := Weekday(n)
		if d < Monday || d > Sunday {
			return nil, fmt.Errorf("schedule entry %d out of range 1..7", n)
		}
		out = append(out, d)
	}
	return out.Normalized(), nil
}
