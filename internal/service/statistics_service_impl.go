package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/daymark/internal/contract"
	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/alexanderramin/daymark/internal/engine"
	"github.com/alexanderramin/daymark/internal/repository"
)

type statisticsService struct {
	trackers repository.TrackerRepo
	records  repository.RecordRepo
}

func NewStatisticsService(trackers repository.TrackerRepo, records repository.RecordRepo) StatisticsService {
	return &statisticsService{trackers: trackers, records: records}
}

func (s *statisticsService) Statistics(ctx context.Context) (*contract.StatisticsView, error) {
	trackerPtrs, err := s.trackers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tracker snapshot: %w", err)
	}
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading record snapshot: %w", err)
	}

	trackers := make([]domain.Tracker, 0, len(trackerPtrs))
	for _, tr := range trackerPtrs {
		trackers = append(trackers, *tr)
	}

	return &contract.StatisticsView{
		Statistics: engine.Calculate(trackers, records),
		HasRecords: len(records) > 0,
	}, nil
}
