package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/daymark/internal/repository"
	"github.com/alexanderramin/daymark/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordService_CheckAndUncheck(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	tracker := testutil.NewTestTracker("Run")
	require.NoError(t, svc.Trackers.Create(ctx, tracker))

	day := time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC)
	require.NoError(t, svc.Records.Check(ctx, tracker.ID, day))

	done, err := svc.Records.IsCompleted(ctx, tracker.ID, day)
	require.NoError(t, err)
	assert.True(t, done)

	require.NoError(t, svc.Records.Uncheck(ctx, tracker.ID, day))
	done, err = svc.Records.IsCompleted(ctx, tracker.ID, day)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestRecordService_CheckIdempotentPerDay(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	tracker := testutil.NewTestTracker("Run")
	require.NoError(t, svc.Trackers.Create(ctx, tracker))

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Records.Check(ctx, tracker.ID, day))
	require.NoError(t, svc.Records.Check(ctx, tracker.ID, day.Add(10*time.Hour)))

	records, err := svc.Records.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRecordService_CheckUnknownTracker(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	err := svc.Records.Check(ctx, "missing", time.Now())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRecordService_RecordsGoneAfterTrackerDelete(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	tracker := testutil.NewTestTracker("Run")
	require.NoError(t, svc.Trackers.Create(ctx, tracker))
	require.NoError(t, svc.Records.Check(ctx, tracker.ID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, svc.Trackers.Delete(ctx, tracker.ID))

	records, err := svc.Records.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}
