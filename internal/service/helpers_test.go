package service_test

import (
	"testing"

	"github.com/alexanderramin/daymark/internal/repository"
	"github.com/alexanderramin/daymark/internal/service"
	"github.com/alexanderramin/daymark/internal/testutil"
)

// services bundles a fully wired service stack over one in-memory database.
type services struct {
	Trackers service.TrackerService
	Records  service.RecordService
	Overview service.OverviewService
	Stats    service.StatisticsService
}

func newServices(t *testing.T) services {
	t.Helper()
	database := testutil.NewTestDB(t)
	trackerRepo := repository.NewSQLiteTrackerRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	recordRepo := repository.NewSQLiteRecordRepo(database)
	uow := testutil.NewTestUoW(database)

	trackers := service.NewTrackerService(trackerRepo, categoryRepo, uow)
	return services{
		Trackers: trackers,
		Records:  service.NewRecordService(recordRepo, trackerRepo),
		Overview: service.NewOverviewService(trackers, recordRepo),
		Stats:    service.NewStatisticsService(trackerRepo, recordRepo),
	}
}
