package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/daymark/internal/contract"
	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/alexanderramin/daymark/internal/engine"
	"github.com/alexanderramin/daymark/internal/repository"
)

type overviewService struct {
	trackers TrackerService
	records  repository.RecordRepo
}

func NewOverviewService(trackers TrackerService, records repository.RecordRepo) OverviewService {
	return &overviewService{trackers: trackers, records: records}
}

// Overview loads the full snapshots, runs the filter engine for the
// requested day, and decorates the result with per-tracker completion
// state derived from the same record snapshot.
func (s *overviewService) Overview(ctx context.Context, req contract.OverviewRequest) (*contract.OverviewResponse, error) {
	categories, err := s.trackers.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading category snapshot: %w", err)
	}
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading record snapshot: %w", err)
	}

	weekday := domain.WeekdayOf(req.Date)
	visible := engine.Filter(engine.FilterInput{
		Categories: categories,
		Mode:       req.Mode,
		Records:    records,
		Date:       req.Date,
		Search:     req.Search,
		Weekday:    weekday,
	})

	completedToday := make(map[string]bool)
	totals := make(map[string]int)
	for _, rec := range records {
		totals[rec.TrackerID]++
		if engine.SameDay(rec.Date, req.Date) {
			completedToday[rec.TrackerID] = true
		}
	}

	resp := &contract.OverviewResponse{Date: req.Date, Weekday: weekday}
	for _, cat := range visible {
		group := contract.GroupView{Title: cat.Title, Trackers: make([]contract.TrackerView, 0, len(cat.Trackers))}
		for _, tr := range cat.Trackers {
			group.Trackers = append(group.Trackers, contract.TrackerView{
				Tracker:          tr,
				Completed:        completedToday[tr.ID],
				TotalCompletions: totals[tr.ID],
			})
		}
		resp.Groups = append(resp.Groups, group)
	}
	return resp, nil
}
