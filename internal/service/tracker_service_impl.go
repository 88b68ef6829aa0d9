package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/daymark/internal/db"
	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/alexanderramin/daymark/internal/repository"
	"github.com/google/uuid"
)

type trackerService struct {
	trackers   repository.TrackerRepo
	categories repository.CategoryRepo
	uow        db.UnitOfWork
}

func NewTrackerService(trackers repository.TrackerRepo, categories repository.CategoryRepo, uow db.UnitOfWork) TrackerService {
	return &trackerService{trackers: trackers, categories: categories, uow: uow}
}

func (s *trackerService) Create(ctx context.Context, t *domain.Tracker) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return fmt.Errorf("tracker name must not be empty")
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("tracker category must not be empty")
	}
	if t.Category == domain.PinnedCategoryTitle {
		return fmt.Errorf("%q is a reserved category title", domain.PinnedCategoryTitle)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.Schedule = t.Schedule.Normalized()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	// Category row and tracker land together or not at all.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCategories := repository.NewSQLiteCategoryRepo(tx)
		txTrackers := repository.NewSQLiteTrackerRepo(tx)

		if err := txCategories.Ensure(ctx, t.Category); err != nil {
			return err
		}
		return txTrackers.Create(ctx, t)
	})
}

func (s *trackerService) GetByID(ctx context.Context, id string) (*domain.Tracker, error) {
	return s.trackers.GetByID(ctx, id)
}

func (s *trackerService) Update(ctx context.Context, t *domain.Tracker) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("tracker name must not be empty")
	}
	t.Schedule = t.Schedule.Normalized()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCategories := repository.NewSQLiteCategoryRepo(tx)
		txTrackers := repository.NewSQLiteTrackerRepo(tx)

		if err := txCategories.Ensure(ctx, t.Category); err != nil {
			return err
		}
		return txTrackers.Update(ctx, t)
	})
}

func (s *trackerService) SetPinned(ctx context.Context, id string, pinned bool) error {
	return s.trackers.SetPinned(ctx, id, pinned)
}

func (s *trackerService) Delete(ctx context.Context, id string) error {
	tracker, err := s.trackers.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Drop the category row too when the last tracker leaves it.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCategories := repository.NewSQLiteCategoryRepo(tx)
		txTrackers := repository.NewSQLiteTrackerRepo(tx)

		if err := txTrackers.Delete(ctx, id); err != nil {
			return err
		}
		remaining, err := txTrackers.ListByCategory(ctx, tracker.Category)
		if err != nil {
			return err
		}
		if len(remaining) == 0 {
			return txCategories.Delete(ctx, tracker.Category)
		}
		return nil
	})
}

func (s *trackerService) ListCategories(ctx context.Context) ([]domain.TrackerCategory, error) {
	titles, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	var out []domain.TrackerCategory
	for _, title := range titles {
		trackers, err := s.trackers.ListByCategory(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("loading trackers for %q: %w", title, err)
		}
		if len(trackers) == 0 {
			continue
		}
		cat := domain.TrackerCategory{Title: title, Trackers: make([]domain.Tracker, 0, len(trackers))}
		for _, tr := range trackers {
			cat.Trackers = append(cat.Trackers, *tr)
		}
		out = append(out, cat)
	}
	return out, nil
}

func (s *trackerService) RenameCategory(ctx context.Context, from, to string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return fmt.Errorf("category title must not be empty")
	}
	if to == domain.PinnedCategoryTitle {
		return fmt.Errorf("%q is a reserved category title", domain.PinnedCategoryTitle)
	}
	if from == to {
		return nil
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCategories := repository.NewSQLiteCategoryRepo(tx)
		txTrackers := repository.NewSQLiteTrackerRepo(tx)

		titles, err := txCategories.List(ctx)
		if err != nil {
			return err
		}
		targetExists := false
		for _, title := range titles {
			if title == to {
				targetExists = true
				break
			}
		}

		if !targetExists {
			// Plain rename; the tracker FK follows via ON UPDATE CASCADE.
			return txCategories.Rename(ctx, from, to)
		}

		// Merging into an existing category: move the trackers, drop the
		// now-empty source group.
		if err := txTrackers.SetCategory(ctx, from, to); err != nil {
			return err
		}
		return txCategories.Delete(ctx, from)
	})
}
