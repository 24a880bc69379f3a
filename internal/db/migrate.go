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
	`CREATE TABLE IF NOT EXISTS goals (
		id                  TEXT PRIMARY KEY,
		title               TEXT NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		status              TEXT NOT NULL DEFAULT 'active'
		                    CHECK(status IN ('active','paused','done','archived')),
		weekly_budget_hours REAL NOT NULL DEFAULT 10,
		target_date         TEXT,
		version             INTEGER NOT NULL DEFAULT 0,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id          TEXT PRIMARY KEY,
		goal_id     TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_milestones_goal ON milestones(goal_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id             TEXT PRIMARY KEY,
		goal_id        TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		milestone_id   TEXT REFERENCES milestones(id) ON DELETE SET NULL,
		title          TEXT NOT NULL,
		start_date     TEXT,
		end_date       TEXT,
		duration_hours REAL,
		is_anchored    INTEGER NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'pending'
		               CHECK(status IN ('pending','completed')),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_goal ON tasks(goal_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_milestone ON tasks(milestone_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_anchor ON tasks(goal_id, COALESCE(start_date, created_at))`,
}
