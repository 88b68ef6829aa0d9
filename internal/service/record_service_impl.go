package service

import (
	"context"
	"time"

	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/alexanderramin/daymark/internal/repository"
	"github.com/google/uuid"
)

type recordService struct {
	records  repository.RecordRepo
	trackers repository.TrackerRepo
}

func NewRecordService(records repository.RecordRepo, trackers repository.TrackerRepo) RecordService {
	return &recordService{records: records, trackers: trackers}
}

func (s *recordService) Check(ctx context.Context, trackerID string, date time.Time) error {
	// Verify the tracker exists so a typo'd id fails loudly instead of
	// being rejected by the foreign key.
	if _, err := s.trackers.GetByID(ctx, trackerID); err != nil {
		return err
	}
	return s.records.Create(ctx, &domain.TrackerRecord{
		ID:        uuid.New().String(),
		TrackerID: trackerID,
		Date:      date,
	})
}

func (s *recordService) Uncheck(ctx context.Context, trackerID string, date time.Time) error {
	return s.records.Delete(ctx, trackerID, date)
}

func (s *recordService) IsCompleted(ctx context.Context, trackerID string, date time.Time) (bool, error) {
	return s.records.IsCompleted(ctx, trackerID, date)
}

func (s *recordService) ListAll(ctx context.Context) ([]domain.TrackerRecord, error) {
	return s.records.ListAll(ctx)
}

func (s *recordService) ListByTracker(ctx context.Context, trackerID string) ([]domain.TrackerRecord, error) {
	return s.records.ListByTracker(ctx, trackerID)
}
