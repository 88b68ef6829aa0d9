package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/alexanderramin/daymark/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateFlag(t *testing.T) {
	got, err := parseDateFlag("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	// Empty defaults to now.
	got, err = parseDateFlag("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got, time.Minute)

	_, err = parseDateFlag("15.01.2024")
	assert.Error(t, err)
}

func TestParseScheduleFlag(t *testing.T) {
	got, err := parseScheduleFlag([]string{"mon,wed", "Friday"})
	require.NoError(t, err)
	assert.Equal(t, domain.Schedule{domain.Monday, domain.Wednesday, domain.Friday}, got)

	got, err = parseScheduleFlag(nil)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())

	_, err = parseScheduleFlag([]string{"workday"})
	assert.Error(t, err)
}

func TestResolveTrackerID(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	run := testutil.NewTestTracker("Run")
	read := testutil.NewTestTracker("Read")
	require.NoError(t, app.Trackers.Create(ctx, run))
	require.NoError(t, app.Trackers.Create(ctx, read))

	// Name match is case-insensitive.
	id, err := resolveTrackerID(ctx, app, "run")
	require.NoError(t, err)
	assert.Equal(t, run.ID, id)

	// Full ID match.
	id, err = resolveTrackerID(ctx, app, read.ID)
	require.NoError(t, err)
	assert.Equal(t, read.ID, id)

	// ID prefix match.
	id, err = resolveTrackerID(ctx, app, run.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, run.ID, id)

	_, err = resolveTrackerID(ctx, app, "missing")
	assert.Error(t, err)

	_, err = resolveTrackerID(ctx, app, "")
	assert.Error(t, err)
}
