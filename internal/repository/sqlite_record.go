package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/daymark/internal/db"
	"github.com/alexanderramin/daymark/internal/domain"
)

// SQLiteRecordRepo implements RecordRepo over a SQLite DBTX.
type SQLiteRecordRepo struct {
	db db.DBTX
}

func NewSQLiteRecordRepo(db db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: db}
}

func (r *SQLiteRecordRepo) Create(ctx context.Context, rec *domain.TrackerRecord) error {
	// The unique (tracker_id, day) index makes re-checking a day a no-op.
	query := `INSERT OR IGNORE INTO tracker_records (id, tracker_id, day, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.TrackerID, dayValue(rec.Date), nowUTC())
	if err != nil {
		return fmt.Errorf("inserting tracker record: %w", err)
	}
	return nil
}

func (r *SQLiteRecordRepo) Delete(ctx context.Context, trackerID string, day time.Time) error {
	query := `DELETE FROM tracker_records WHERE tracker_id = ? AND day = ?`
	if _, err := r.db.ExecContext(ctx, query, trackerID, dayValue(day)); err != nil {
		return fmt.Errorf("deleting tracker record: %w", err)
	}
	return nil
}

func (r *SQLiteRecordRepo) ListAll(ctx context.Context) ([]domain.TrackerRecord, error) {
	query := `SELECT id, tracker_id, day FROM tracker_records ORDER BY day, tracker_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tracker records: %w", err)
	}
	defer rows.Close()

	var records []domain.TrackerRecord
	for rows.Next() {
		var rec domain.TrackerRecord
		var dayStr string
		if err := rows.Scan(&rec.ID, &rec.TrackerID, &dayStr); err != nil {
			return nil, fmt.Errorf("scanning record row: %w", err)
		}
		rec.Date, err = parseDay(dayStr)
		if err != nil {
			return nil, fmt.Errorf("parsing record day: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

func (r *SQLiteRecordRepo) ListByTracker(ctx context.Context, trackerID string) ([]domain.TrackerRecord, error) {
	query := `SELECT id, tracker_id, day FROM tracker_records WHERE tracker_id = ? ORDER BY day DESC`
	rows, err := r.db.QueryContext(ctx, query, trackerID)
	if err != nil {
		return nil, fmt.Errorf("listing records for tracker: %w", err)
	}
	defer rows.Close()

	var records []domain.TrackerRecord
	for rows.Next() {
		var rec domain.TrackerRecord
		var dayStr string
		if err := rows.Scan(&rec.ID, &rec.TrackerID, &dayStr); err != nil {
			return nil, fmt.Errorf("scanning record row: %w", err)
		}
		rec.Date, err = parseDay(dayStr)
		if err != nil {
			return nil, fmt.Errorf("parsing record day: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

func (r *SQLiteRecordRepo) IsCompleted(ctx context.Context, trackerID string, day time.Time) (bool, error) {
	query := `SELECT COUNT(*) FROM tracker_records WHERE tracker_id = ? AND day = ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, trackerID, dayValue(day)).Scan(&count); err != nil {
		return false, fmt.Errorf("checking completion: %w", err)
	}
	return count > 0, nil
}
