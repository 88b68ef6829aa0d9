package service

import (
	"context"
	"time"

	"github.com/alexanderramin/daymark/internal/contract"
	"github.com/alexanderramin/daymark/internal/domain"
)

type TrackerService interface {
	Create(ctx context.Context, t *domain.Tracker) error
	GetByID(ctx context.Context, id string) (*domain.Tracker, error)
	Update(ctx context.Context, t *domain.Tracker) error
	SetPinned(ctx context.Context, id string, pinned bool) error
	Delete(ctx context.Context, id string) error
	// ListCategories returns the full grouped snapshot in display order,
	// the filter engine's source of truth.
	ListCategories(ctx context.Context) ([]domain.TrackerCategory, error)
	RenameCategory(ctx context.Context, from, to string) error
}

type RecordService interface {
	// Check marks the tracker complete for the date's calendar day.
	// Checking an already-checked day is a no-op.
	Check(ctx context.Context, trackerID string, date time.Time) error
	// Uncheck removes the completion for the date's calendar day.
	Uncheck(ctx context.Context, trackerID string, date time.Time) error
	IsCompleted(ctx context.Context, trackerID string, date time.Time) (bool, error)
	ListAll(ctx context.Context) ([]domain.TrackerRecord, error)
	ListByTracker(ctx context.Context, trackerID string) ([]domain.TrackerRecord, error)
}

type OverviewService interface {
	Overview(ctx context.Context, req contract.OverviewRequest) (*contract.OverviewResponse, error)
}

type StatisticsService interface {
	Statistics(ctx context.Context) (*contract.StatisticsView, error)
}
