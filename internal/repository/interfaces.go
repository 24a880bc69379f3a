package repository

import (
	"context"
	"time"

	"github.com/jcollado/lodestar/internal/domain"
)

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	// IncrementVersion bumps the goal's version counter only if the stored
	// value still equals expected; ErrStaleVersion otherwise. Run inside the
	// commit transaction, this rejects batches computed against an outdated
	// timeline snapshot.
	IncrementVersion(ctx context.Context, id string, expected int64) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// ListByGoal is the timeline snapshot: every task of the goal ordered by
	// effective anchor date (start date, or creation time when no start was
	// set) with creation order breaking ties. The propagator depends on this
	// ordering contract.
	ListByGoal(ctx context.Context, goalID string) ([]domain.Task, error)

	Update(ctx context.Context, t *domain.Task) error

	// UpdateDates assigns absolute new start/end dates to one task.
	UpdateDates(ctx context.Context, id string, start, end time.Time) error

	SetAnchored(ctx context.Context, id string, anchored bool) error
	MarkCompleted(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
