package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/daymark/internal/db"
)

// SQLiteCategoryRepo implements CategoryRepo over a SQLite DBTX.
type SQLiteCategoryRepo struct {
	db db.DBTX
}

func NewSQLiteCategoryRepo(db db.DBTX) *SQLiteCategoryRepo {
	return &SQLiteCategoryRepo{db: db}
}

func (r *SQLiteCategoryRepo) Ensure(ctx context.Context, title string) error {
	// New categories append to the end of the display order.
	query := `INSERT INTO categories (title, position, created_at)
		SELECT ?, COALESCE(MAX(position), -1) + 1, ? FROM categories
		WHERE NOT EXISTS (SELECT 1 FROM categories WHERE title = ?)`
	if _, err := r.db.ExecContext(ctx, query, title, nowUTC(), title); err != nil {
		return fmt.Errorf("ensuring category: %w", err)
	}
	return nil
}

func (r *SQLiteCategoryRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT title FROM categories ORDER BY position, title`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return titles, nil
}

func (r *SQLiteCategoryRepo) Rename(ctx context.Context, from, to string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE categories SET title = ? WHERE title = ?`, to, from)
	if err != nil {
		return fmt.Errorf("renaming category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("renaming category: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category %q: %w", from, ErrNotFound)
	}
	return nil
}

func (r *SQLiteCategoryRepo) Delete(ctx context.Context, title string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE title = ?`, title)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category %q: %w", title, ErrNotFound)
	}
	return nil
}
