package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jcollado/lodestar/internal/db"
	"github.com/jcollado/lodestar/internal/domain"
)

const goalColumns = `id, title, description, status, weekly_budget_hours, target_date,
		version, created_at, updated_at`

// SQLiteGoalRepo implements GoalRepo over a DBTX, so the same implementation
// serves both direct reads and tx-scoped writes.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(db db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: db}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (id, title, description, status, weekly_budget_hours, target_date,
		version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Title,
		g.Description,
		string(g.Status),
		g.WeeklyBudgetHours,
		nullableTimeToString(g.TargetDate, dateLayout),
		g.Version,
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = ?`
	return r.scanGoal(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteGoalRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals ORDER BY created_at`
	if !includeArchived {
		query = `SELECT ` + goalColumns + ` FROM goals WHERE status != 'archived' ORDER BY created_at`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoalRow(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET title = ?, description = ?, status = ?, weekly_budget_hours = ?,
		target_date = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		g.Title,
		g.Description,
		string(g.Status),
		g.WeeklyBudgetHours,
		nullableTimeToString(g.TargetDate, dateLayout),
		g.UpdatedAt.Format(time.RFC3339),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) Archive(ctx context.Context, id string) error {
	query := `UPDATE goals SET status = 'archived', updated_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, nowUTC(), id); err != nil {
		return fmt.Errorf("archiving goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) IncrementVersion(ctx context.Context, id string, expected int64) error {
	query := `UPDATE goals SET version = version + 1, updated_at = ? WHERE id = ? AND version = ?`
	res, err := r.db.ExecContext(ctx, query, nowUTC(), id, expected)
	if err != nil {
		return fmt.Errorf("incrementing goal version: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking version update: %w", err)
	}
	if n == 0 {
		// Distinguish a missing goal from a lost race.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("goal %s: %w", id, ErrStaleVersion)
	}
	return nil
}

func (r *SQLiteGoalRepo) scanGoal(row *sql.Row) (*domain.Goal, error) {
	var g domain.Goal
	var statusStr string
	var targetDateStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&g.ID, &g.Title, &g.Description, &statusStr, &g.WeeklyBudgetHours,
		&targetDateStr, &g.Version, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}
	return populateGoal(&g, statusStr, targetDateStr, createdAtStr, updatedAtStr)
}

func scanGoalRow(rows *sql.Rows) (*domain.Goal, error) {
	var g domain.Goal
	var statusStr string
	var targetDateStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := rows.Scan(
		&g.ID, &g.Title, &g.Description, &statusStr, &g.WeeklyBudgetHours,
		&targetDateStr, &g.Version, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning goal row: %w", err)
	}
	return populateGoal(&g, statusStr, targetDateStr, createdAtStr, updatedAtStr)
}

func populateGoal(g *domain.Goal, statusStr string, targetDateStr sql.NullString, createdAtStr, updatedAtStr string) (*domain.Goal, error) {
	g.Status = domain.GoalStatus(statusStr)
	g.TargetDate = parseNullableTime(targetDateStr, dateLayout)

	var parseErr error
	g.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	g.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return g, nil
}
