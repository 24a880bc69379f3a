package service

import (
	"context"

	"github.com/jcollado/lodestar/internal/contract"
	"github.com/jcollado/lodestar/internal/domain"
)

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
	Status(ctx context.Context, req contract.StatusRequest) (*contract.GoalStatus, error)
}

type MilestoneService interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByGoal(ctx context.Context, goalID string) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	SetAnchored(ctx context.Context, id string, anchored bool) error
	MarkCompleted(ctx context.Context, id string) error
}

// RescheduleService computes timeline mutations without applying them. Both
// operations return a complete batch of absolute new dates plus any conflict;
// persisting the batch is CommitService's job, so a conflicted plan can be
// shown to the user and abandoned without touching storage.
type RescheduleService interface {
	Reschedule(ctx context.Context, req contract.RescheduleRequest) (*contract.RescheduleResponse, error)
	DeleteAndRefactor(ctx context.Context, req contract.DeleteRefactorRequest) (*contract.DeleteRefactorResponse, error)
}

// CommitService applies a computed batch atomically: every update and the
// optional deletion land together or not at all. The goal version carried in
// the request must still match storage; a stale batch is rejected whole.
type CommitService interface {
	Commit(ctx context.Context, req contract.CommitRequest) error
}
