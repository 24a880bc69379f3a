package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jcollado/lodestar/internal/contract"
	"github.com/jcollado/lodestar/internal/domain"
	"github.com/jcollado/lodestar/internal/repository"
	"github.com/jcollado/lodestar/internal/scheduler"
)

// workdaysPerWeek spreads a weekly budget over Monday through Friday when
// projecting a finish date.
const workdaysPerWeek = 5

type goalService struct {
	goals repository.GoalRepo
	tasks repository.TaskRepo

	// defaultWeeklyBudget seeds goals created without a budget.
	defaultWeeklyBudget float64
}

func NewGoalService(goals repository.GoalRepo, tasks repository.TaskRepo, defaultWeeklyBudget float64) GoalService {
	return &goalService{goals: goals, tasks: tasks, defaultWeeklyBudget: defaultWeeklyBudget}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	if g.Status == "" {
		g.Status = domain.GoalActive
	}
	if g.WeeklyBudgetHours <= 0 {
		g.WeeklyBudgetHours = s.defaultWeeklyBudget
	}
	return s.goals.Create(ctx, g)
}

func (s *goalService) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *goalService) List(ctx context.Context, includeArchived bool) ([]*domain.Goal, error) {
	return s.goals.List(ctx, includeArchived)
}

func (s *goalService) Update(ctx context.Context, g *domain.Goal) error {
	g.UpdatedAt = time.Now().UTC()
	return s.goals.Update(ctx, g)
}

func (s *goalService) Archive(ctx context.Context, id string) error {
	return s.goals.Archive(ctx, id)
}

func (s *goalService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		g, err := s.goals.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if g.Status != domain.GoalArchived {
			return fmt.Errorf("goal must be archived before deletion (use --force to override)")
		}
	}
	return s.goals.Delete(ctx, id)
}

// Status projects the goal's landing date from its remaining hour estimates
// and weekly budget. The projection walks the workday calendar, so weekends
// never count toward the remaining effort.
func (s *goalService) Status(ctx context.Context, req contract.StatusRequest) (*contract.GoalStatus, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	goal, err := s.goals.GetByID(ctx, req.GoalID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByGoal(ctx, req.GoalID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	status := &contract.GoalStatus{Goal: *goal, TotalTasks: len(tasks)}
	for _, t := range tasks {
		if t.IsAnchored {
			status.AnchoredTasks++
		}
		if t.Status == domain.TaskCompleted {
			status.CompletedTasks++
			continue
		}
		if t.DurationHours != nil && *t.DurationHours > 0 {
			status.RemainingHours += *t.DurationHours
		}
	}

	if status.RemainingHours > 0 && goal.WeeklyBudgetHours > 0 {
		dailyPace := goal.WeeklyBudgetHours / workdaysPerWeek
		status.RemainingWorkdays = int(math.Ceil(status.RemainingHours / dailyPace))
		finish := scheduler.AddWorkdaysInclusive(now, status.RemainingWorkdays)
		status.ProjectedFinish = &finish

		if goal.TargetDate != nil && finish.After(scheduler.DateOnly(*goal.TargetDate)) {
			status.BehindTarget = true
		}
	}
	return status, nil
}
