package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on every open. Statements are written to
// be re-runnable (IF NOT EXISTS) so a fresh binary can open an old database.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		title      TEXT PRIMARY KEY,
		position   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS trackers (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		color          TEXT NOT NULL DEFAULT '',
		emoji          TEXT NOT NULL DEFAULT '',
		schedule       TEXT NOT NULL DEFAULT '',
		category_title TEXT NOT NULL REFERENCES categories(title) ON UPDATE CASCADE ON DELETE CASCADE,
		pinned         INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_trackers_category ON trackers(category_title)`,

	`CREATE TABLE IF NOT EXISTS tracker_records (
		id         TEXT PRIMARY KEY,
		tracker_id TEXT NOT NULL REFERENCES trackers(id) ON DELETE CASCADE,
		day        TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	// One record per (tracker, day). The engines still collapse duplicates
	// defensively, but the store refuses to create them.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_records_tracker_day ON tracker_records(tracker_id, day)`,

	`CREATE INDEX IF NOT EXISTS idx_records_day ON tracker_records(day)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
