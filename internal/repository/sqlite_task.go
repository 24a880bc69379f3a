package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jcollado/lodestar/internal/db"
	"github.com/jcollado/lodestar/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, goal_id, milestone_id, title, start_date, end_date,
		duration_hours, is_anchored, status, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo over a DBTX.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.GoalID,
		nullableStrToValue(t.MilestoneID),
		t.Title,
		nullableTimeToString(t.StartDate, dateLayout),
		nullableTimeToString(t.EndDate, dateLayout),
		nullableFloatToValue(t.DurationHours),
		boolToInt(t.IsAnchored),
		string(t.Status),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return t, nil
}

// ListByGoal returns the goal's full timeline ordered by effective anchor
// date: explicit start date where present, creation time otherwise, with
// creation time breaking ties. Rescheduling never crosses goal boundaries,
// so the goal filter is part of the contract, not an optimization.
func (r *SQLiteTaskRepo) ListByGoal(ctx context.Context, goalID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE goal_id = ?
		ORDER BY COALESCE(start_date, created_at), created_at`
	rows, err := r.db.QueryContext(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by goal: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET milestone_id = ?, title = ?, start_date = ?, end_date = ?,
		duration_hours = ?, is_anchored = ?, status = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableStrToValue(t.MilestoneID),
		t.Title,
		nullableTimeToString(t.StartDate, dateLayout),
		nullableTimeToString(t.EndDate, dateLayout),
		nullableFloatToValue(t.DurationHours),
		boolToInt(t.IsAnchored),
		string(t.Status),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) UpdateDates(ctx context.Context, id string, start, end time.Time) error {
	query := `UPDATE tasks SET start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		start.Format(dateLayout),
		end.Format(dateLayout),
		nowUTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating task dates: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking task date update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) SetAnchored(ctx context.Context, id string, anchored bool) error {
	query := `UPDATE tasks SET is_anchored = ?, updated_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, boolToInt(anchored), nowUTC(), id); err != nil {
		return fmt.Errorf("setting task anchor: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) MarkCompleted(ctx context.Context, id string) error {
	query := `UPDATE tasks SET status = 'completed', updated_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, nowUTC(), id); err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	var milestoneID sql.NullString
	var startDateStr, endDateStr sql.NullString
	var durationHours sql.NullFloat64
	var anchoredInt int
	var statusStr string
	var createdAtStr, updatedAtStr string

	err := scan(
		&t.ID, &t.GoalID, &milestoneID, &t.Title, &startDateStr, &endDateStr,
		&durationHours, &anchoredInt, &statusStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	if milestoneID.Valid {
		t.MilestoneID = &milestoneID.String
	}
	t.StartDate = parseNullableTime(startDateStr, dateLayout)
	t.EndDate = parseNullableTime(endDateStr, dateLayout)
	if durationHours.Valid {
		t.DurationHours = &durationHours.Float64
	}
	t.IsAnchored = intToBool(anchoredInt)
	t.Status = domain.TaskStatus(statusStr)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &t, nil
}
