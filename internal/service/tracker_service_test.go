package service_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/alexanderramin/daymark/internal/repository"
	"github.com/alexanderramin/daymark/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerService_CreateEnsuresCategory(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	tracker := testutil.NewTestTracker("Run", testutil.WithCategory("Health"))
	require.NoError(t, svc.Trackers.Create(ctx, tracker))
	assert.NotEmpty(t, tracker.ID)

	categories, err := svc.Trackers.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Health", categories[0].Title)
	require.Len(t, categories[0].Trackers, 1)
	assert.Equal(t, "Run", categories[0].Trackers[0].Name)
}

func TestTrackerService_CreateRejectsBlankName(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	err := svc.Trackers.Create(ctx, testutil.NewTestTracker("   "))
	assert.Error(t, err)

	categories, listErr := svc.Trackers.ListCategories(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, categories)
}

func TestTrackerService_CreateRejectsReservedCategory(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	err := svc.Trackers.Create(ctx, testutil.NewTestTracker("Run", testutil.WithCategory(domain.PinnedCategoryTitle)))
	assert.Error(t, err)
}

func TestTrackerService_CategoriesKeepCreationOrder(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	require.NoError(t, svc.Trackers.Create(ctx, testutil.NewTestTracker("Run", testutil.WithCategory("Health"))))
	require.NoError(t, svc.Trackers.Create(ctx, testutil.NewTestTracker("Read", testutil.WithCategory("Mind"))))
	require.NoError(t, svc.Trackers.Create(ctx, testutil.NewTestTracker("Stretch", testutil.WithCategory("Health"))))

	categories, err := svc.Trackers.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Health", categories[0].Title)
	assert.Equal(t, "Mind", categories[1].Title)
	assert.Len(t, categories[0].Trackers, 2)
}

func TestTrackerService_SetPinnedRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	tracker := testutil.NewTestTracker("Run")
	require.NoError(t, svc.Trackers.Create(ctx, tracker))

	require.NoError(t, svc.Trackers.SetPinned(ctx, tracker.ID, true))
	got, err := svc.Trackers.GetByID(ctx, tracker.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPinned)
}

func TestTrackerService_DeleteDropsEmptyCategory(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	keep := testutil.NewTestTracker("Run", testutil.WithCategory("Health"))
	gone := testutil.NewTestTracker("Read", testutil.WithCategory("Mind"))
	require.NoError(t, svc.Trackers.Create(ctx, keep))
	require.NoError(t, svc.Trackers.Create(ctx, gone))

	require.NoError(t, svc.Trackers.Delete(ctx, gone.ID))

	categories, err := svc.Trackers.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Health", categories[0].Title)

	_, err = svc.Trackers.GetByID(ctx, gone.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTrackerService_RenameCategory(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	tracker := testutil.NewTestTracker("Run", testutil.WithCategory("Helth"))
	require.NoError(t, svc.Trackers.Create(ctx, tracker))

	require.NoError(t, svc.Trackers.RenameCategory(ctx, "Helth", "Health"))

	got, err := svc.Trackers.GetByID(ctx, tracker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Health", got.Category)
}

func TestTrackerService_RenameCategoryMergesIntoExisting(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	require.NoError(t, svc.Trackers.Create(ctx, testutil.NewTestTracker("Run", testutil.WithCategory("Sport"))))
	require.NoError(t, svc.Trackers.Create(ctx, testutil.NewTestTracker("Stretch", testutil.WithCategory("Health"))))

	require.NoError(t, svc.Trackers.RenameCategory(ctx, "Sport", "Health"))

	categories, err := svc.Trackers.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Health", categories[0].Title)
	assert.Len(t, categories[0].Trackers, 2)
}
