package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/daymark/internal/db"
	"github.com/alexanderramin/daymark/internal/domain"
)

// SQLiteTrackerRepo implements TrackerRepo over a SQLite DBTX.
type SQLiteTrackerRepo struct {
	db db.DBTX
}

func NewSQLiteTrackerRepo(db db.DBTX) *SQLiteTrackerRepo {
	return &SQLiteTrackerRepo{db: db}
}

const trackerColumns = `id, name, color, emoji, schedule, category_title, pinned, created_at, updated_at`

func (r *SQLiteTrackerRepo) Create(ctx context.Context, t *domain.Tracker) error {
	query := `INSERT INTO trackers (` + trackerColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Color,
		t.Emoji,
		t.Schedule.Encode(),
		t.Category,
		boolToInt(t.IsPinned),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting tracker: %w", err)
	}
	return nil
}

func (r *SQLiteTrackerRepo) GetByID(ctx context.Context, id string) (*domain.Tracker, error) {
	query := `SELECT ` + trackerColumns + ` FROM trackers WHERE id = ?`
	return r.scanTracker(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTrackerRepo) List(ctx context.Context) ([]*domain.Tracker, error) {
	query := `SELECT ` + trackerColumns + ` FROM trackers ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing trackers: %w", err)
	}
	defer rows.Close()
	return r.scanTrackers(rows)
}

func (r *SQLiteTrackerRepo) ListByCategory(ctx context.Context, category string) ([]*domain.Tracker, error) {
	query := `SELECT ` + trackerColumns + ` FROM trackers WHERE category_title = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("listing trackers by category: %w", err)
	}
	defer rows.Close()
	return r.scanTrackers(rows)
}

func (r *SQLiteTrackerRepo) Update(ctx context.Context, t *domain.Tracker) error {
	query := `UPDATE trackers
		SET name = ?, color = ?, emoji = ?, schedule = ?, category_title = ?, pinned = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.Color,
		t.Emoji,
		t.Schedule.Encode(),
		t.Category,
		boolToInt(t.IsPinned),
		nowUTC(),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating tracker: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating tracker: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("tracker %q: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTrackerRepo) SetPinned(ctx context.Context, id string, pinned bool) error {
	query := `UPDATE trackers SET pinned = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(pinned), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("setting tracker pin: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("setting tracker pin: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("tracker %q: %w", id, ErrNotFound)
	}
	return nil
}

// SetCategory moves every tracker in category from into category to.
func (r *SQLiteTrackerRepo) SetCategory(ctx context.Context, from, to string) error {
	query := `UPDATE trackers SET category_title = ?, updated_at = ? WHERE category_title = ?`
	if _, err := r.db.ExecContext(ctx, query, to, nowUTC(), from); err != nil {
		return fmt.Errorf("moving trackers between categories: %w", err)
	}
	return nil
}

func (r *SQLiteTrackerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trackers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting tracker: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting tracker: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("tracker %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTrackerRepo) scanTracker(row *sql.Row) (*domain.Tracker, error) {
	var t domain.Tracker
	var scheduleStr, createdAtStr, updatedAtStr string
	var pinned int

	err := row.Scan(&t.ID, &t.Name, &t.Color, &t.Emoji, &scheduleStr, &t.Category, &pinned, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("tracker: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning tracker: %w", err)
	}

	return r.populateTracker(&t, scheduleStr, pinned, createdAtStr, updatedAtStr)
}

func (r *SQLiteTrackerRepo) scanTrackers(rows *sql.Rows) ([]*domain.Tracker, error) {
	var trackers []*domain.Tracker
	for rows.Next() {
		var t domain.Tracker
		var scheduleStr, createdAtStr, updatedAtStr string
		var pinned int

		err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Emoji, &scheduleStr, &t.Category, &pinned, &createdAtStr, &updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning tracker row: %w", err)
		}

		tracker, err := r.populateTracker(&t, scheduleStr, pinned, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		trackers = append(trackers, tracker)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trackers: %w", err)
	}
	return trackers, nil
}

func (r *SQLiteTrackerRepo) populateTracker(t *domain.Tracker, scheduleStr string, pinned int, createdAtStr, updatedAtStr string) (*domain.Tracker, error) {
	var err error
	t.Schedule, err = domain.ParseSchedule(scheduleStr)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule: %w", err)
	}
	t.IsPinned = intToBool(pinned)
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, nil
}
