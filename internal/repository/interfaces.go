package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/daymark/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

type CategoryRepo interface {
	// Ensure creates the category if it does not exist yet.
	Ensure(ctx context.Context, title string) error
	// List returns category titles in display order.
	List(ctx context.Context) ([]string, error)
	Rename(ctx context.Context, from, to string) error
	// Delete removes an empty category. Deleting a category that still has
	// trackers is the caller's responsibility to prevent.
	Delete(ctx context.Context, title string) error
}

type TrackerRepo interface {
	Create(ctx context.Context, t *domain.Tracker) error
	GetByID(ctx context.Context, id string) (*domain.Tracker, error)
	List(ctx context.Context) ([]*domain.Tracker, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Tracker, error)
	Update(ctx context.Context, t *domain.Tracker) error
	SetPinned(ctx context.Context, id string, pinned bool) error
	SetCategory(ctx context.Context, from, to string) error
	Delete(ctx context.Context, id string) error
}

type RecordRepo interface {
	// Create inserts a completion record. Inserting a second record for the
	// same tracker and day is a no-op.
	Create(ctx context.Context, r *domain.TrackerRecord) error
	Delete(ctx context.Context, trackerID string, day time.Time) error
	// ListAll returns the full record snapshot the engines consume.
	ListAll(ctx context.Context) ([]domain.TrackerRecord, error)
	// ListByTracker returns one tracker's records, newest day first.
	ListByTracker(ctx context.Context, trackerID string) ([]domain.TrackerRecord, error)
	IsCompleted(ctx context.Context, trackerID string, day time.Time) (bool, error)
}
