package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/alexanderramin/daymark/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics_EmptyDatabase(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	view, err := svc.Stats.Statistics(ctx)
	require.NoError(t, err)
	assert.False(t, view.HasRecords)
	assert.Equal(t, domain.TrackerStatistics{}, view.Statistics)
}

func TestStatistics_EndToEnd(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	// One tracker due Monday and Tuesday, completed on both days in a row.
	run := testutil.NewTestTracker("Run",
		testutil.WithCategory("Health"),
		testutil.WithSchedule(domain.Monday, domain.Tuesday))
	require.NoError(t, svc.Trackers.Create(ctx, run))

	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	require.NoError(t, svc.Records.Check(ctx, run.ID, monday))
	require.NoError(t, svc.Records.Check(ctx, run.ID, tuesday))

	view, err := svc.Stats.Statistics(ctx)
	require.NoError(t, err)

	assert.True(t, view.HasRecords)
	assert.Equal(t, 2, view.Statistics.BestPeriod)
	assert.Equal(t, 2, view.Statistics.IdealDays)
	assert.Equal(t, 2, view.Statistics.TotalCompleted)
	assert.InDelta(t, 1.0, view.Statistics.AverageValue, 1e-9)
}

func TestStatistics_UncheckShrinksTotals(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	run := testutil.NewTestTracker("Run")
	require.NoError(t, svc.Trackers.Create(ctx, run))

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Records.Check(ctx, run.ID, day))
	require.NoError(t, svc.Records.Uncheck(ctx, run.ID, day))

	view, err := svc.Stats.Statistics(ctx)
	require.NoError(t, err)
	assert.False(t, view.HasRecords)
	assert.Equal(t, 0, view.Statistics.TotalCompleted)
}
