package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id                 TEXT PRIMARY KEY,
		short_id           TEXT NOT NULL DEFAULT '',
		name               TEXT NOT NULL,
		start_date         TEXT NOT NULL,
		end_date           TEXT,
		continuous         INTEGER NOT NULL DEFAULT 0,
		estimated_hours    REAL NOT NULL DEFAULT 0,
		auto_estimate_days TEXT,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_short_id ON projects(short_id) WHERE short_id != ''`,

	`CREATE TABLE IF NOT EXISTS phases (
		id                    TEXT PRIMARY KEY,
		project_id            TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name                  TEXT NOT NULL,
		start_date            TEXT,
		end_date              TEXT NOT NULL,
		allocation_hours      REAL NOT NULL DEFAULT 0,
		recur_type            TEXT
		                      CHECK(recur_type IS NULL OR recur_type IN ('daily','weekly','monthly')),
		recur_interval        INTEGER NOT NULL DEFAULT 1,
		recur_weekday         INTEGER NOT NULL DEFAULT 0,
		recur_monthly_pattern TEXT NOT NULL DEFAULT '',
		recur_day_of_month    INTEGER NOT NULL DEFAULT 0,
		recur_week_of_month   INTEGER NOT NULL DEFAULT 0,
		recur_monthly_weekday INTEGER NOT NULL DEFAULT 0,
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_phases_project ON phases(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_phases_end_date ON phases(end_date)`,

	`CREATE TABLE IF NOT EXISTS holidays (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_slots (
		id         TEXT PRIMARY KEY,
		weekday    INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_weekday ON schedule_slots(weekday)`,

	`CREATE TABLE IF NOT EXISTS events (
		id         TEXT PRIMARY KEY,
		project_id TEXT REFERENCES projects(id) ON DELETE CASCADE,
		title      TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_project ON events(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_events_start ON events(start_time)`,
}
