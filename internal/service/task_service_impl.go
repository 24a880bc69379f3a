package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jcollado/lodestar/internal/contract"
	"github.com/jcollado/lodestar/internal/domain"
	"github.com/jcollado/lodestar/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
	goals repository.GoalRepo
}

func NewTaskService(tasks repository.TaskRepo, goals repository.GoalRepo) TaskService {
	return &taskService{tasks: tasks, goals: goals}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.Title == "" {
		return &contract.PlanError{Code: contract.ErrValidation, Message: "task title is required"}
	}
	if t.DurationHours != nil && *t.DurationHours < 0 {
		return &contract.PlanError{Code: contract.ErrValidation, Message: "duration hours must not be negative"}
	}
	if _, err := s.goals.GetByID(ctx, t.GoalID); err != nil {
		return err
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = domain.TaskPending
	}

	// A dated task with an estimate but no end gets its end derived up front,
	// so the stored timeline is always internally consistent.
	if t.StartDate != nil && t.EndDate == nil && t.DurationDays() > 0 {
		end := t.DerivedEnd(*t.StartDate)
		t.EndDate = &end
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByGoal(ctx context.Context, goalID string) ([]domain.Task, error) {
	return s.tasks.ListByGoal(ctx, goalID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if t.StartDate != nil && t.EndDate != nil && t.EndDate.Before(*t.StartDate) {
		return &contract.PlanError{Code: contract.ErrValidation, Message: "end date must not precede start date"}
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) SetAnchored(ctx context.Context, id string, anchored bool) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// Anchoring an undated task would pin it to its creation timestamp,
	// which is never what the user meant.
	if anchored && t.StartDate == nil {
		return &contract.PlanError{
			Code:    contract.ErrValidation,
			Message: fmt.Sprintf("task %q has no start date; set dates before anchoring", t.Title),
		}
	}
	return s.tasks.SetAnchored(ctx, id, anchored)
}

func (s *taskService) MarkCompleted(ctx context.Context, id string) error {
	return s.tasks.MarkCompleted(ctx, id)
}
