package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the whole
// list re-runs on every startup.
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
	`CREATE TABLE IF NOT EXISTS learning_plans (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		progress   INTEGER NOT NULL DEFAULT 0
		           CHECK(progress >= 0 AND progress <= 100),
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id               TEXT PRIMARY KEY,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		due_date         TEXT,
		priority         TEXT NOT NULL DEFAULT 'medium'
		                 CHECK(priority IN ('high','medium','low')),
		status           TEXT NOT NULL DEFAULT 'pending'
		                 CHECK(status IN ('pending','in-progress','completed')),
		estimated_time   INTEGER NOT NULL DEFAULT 0,
		parent_task_id   TEXT REFERENCES tasks(id) ON DELETE CASCADE,
		completed        INTEGER NOT NULL DEFAULT 0,
		last_attempt_at  TEXT,
		learning_plan_id TEXT REFERENCES learning_plans(id) ON DELETE SET NULL,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_parent ON tasks(parent_task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_plan ON tasks(learning_plan_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,

	`CREATE TABLE IF NOT EXISTS task_results (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		task_id          TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		completed        INTEGER NOT NULL DEFAULT 0,
		exercise_results TEXT NOT NULL DEFAULT '[]',
		notes            TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_results_task ON task_results(task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_task_results_user ON task_results(user_id)`,
}
