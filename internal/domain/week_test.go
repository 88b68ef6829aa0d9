package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayFromCalendarIndex_Table(t *testing.T) {
	// Calendar-style numbering: Sunday=1 .. Saturday=7.
	cases := map[int]Weekday{
		1: Sunday,
		2: Monday,
		3: Tuesday,
		4: Wednesday,
		5: Thursday,
		6: Friday,
		7: Saturday,
	}
	for index, want := range cases {
		assert.Equal(t, want, WeekdayFromCalendarIndex(index), "index %d", index)
	}
}

func TestWeekdayFromCalendarIndex_OutOfRangeDefaultsToMonday(t *testing.T) {
	for _, index := range []int{0, -1, 8, 42} {
		assert.Equal(t, Monday, WeekdayFromCalendarIndex(index), "index %d", index)
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2024-01-01 was a Monday, 2024-01-07 a Sunday.
	assert.Equal(t, Monday, WeekdayOf(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, Sunday, WeekdayOf(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Saturday, WeekdayOf(time.Date(2024, 1, 6, 23, 59, 0, 0, time.UTC)))
}

func TestParseWeekday(t *testing.T) {
	for _, s := range []string{"Monday", "monday", "MON", " mon "} {
		got, err := ParseWeekday(s)
		require.NoError(t, err, s)
		assert.Equal(t, Monday, got)
	}

	_, err := ParseWeekday("someday")
	assert.Error(t, err)
}

func TestScheduleContains(t *testing.T) {
	s := Schedule{Monday, Wednesday, Friday}
	assert.True(t, s.Contains(Wednesday))
	assert.False(t, s.Contains(Sunday))
	assert.False(t, Schedule(nil).Contains(Monday))
	assert.True(t, Schedule(nil).IsEmpty())
}

func TestScheduleEncodeParseRoundTrip(t *testing.T) {
	s := Schedule{Friday, Monday, Friday, Wednesday}

	encoded := s.Encode()
	assert.Equal(t, "1,3,5", encoded, "sorted, de-duplicated digits")

	parsed, err := ParseSchedule(encoded)
	require.NoError(t, err)
	assert.Equal(t, Schedule{Monday, Wednesday, Friday}, parsed)
}

func TestParseSchedule_Empty(t *testing.T) {
	parsed, err := ParseSchedule("")
	require.NoError(t, err)
	assert.True(t, parsed.IsEmpty())
}

func TestParseSchedule_Invalid(t *testing.T) {
	_, err := ParseSchedule("1,8")
	assert.Error(t, err)

	_, err = ParseSchedule("one,two")
	assert.Error(t, err)
}

func TestParseFilterMode(t *testing.T) {
	for _, mode := range AllFilterModes {
		got, err := ParseFilterMode(string(mode))
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	_, err := ParseFilterMode("finished")
	assert.Error(t, err)
}
