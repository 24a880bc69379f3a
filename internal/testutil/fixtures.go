package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcollado/lodestar/internal/domain"
)

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalStatus(s domain.GoalStatus) GoalOption {
	return func(g *domain.Goal) {
		g.Status = s
	}
}

func WithTargetDate(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.TargetDate = &d
	}
}

func WithWeeklyBudget(hours float64) GoalOption {
	return func(g *domain.Goal) {
		g.WeeklyBudgetHours = hours
	}
}

func NewTestGoal(title string, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC()
	g := &domain.Goal{
		ID:                uuid.New().String(),
		Title:             title,
		Status:            domain.GoalActive,
		WeeklyBudgetHours: 10,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Milestone options
type MilestoneOption func(*domain.Milestone)

func WithOrderIndex(i int) MilestoneOption {
	return func(m *domain.Milestone) {
		m.OrderIndex = i
	}
}

func NewTestMilestone(goalID, title string, opts ...MilestoneOption) *domain.Milestone {
	now := time.Now().UTC()
	m := &domain.Milestone{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Task options
type TaskOption func(*domain.Task)

func WithStartDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = &d
	}
}

func WithEndDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.EndDate = &d
	}
}

func WithDurationHours(h float64) TaskOption {
	return func(t *domain.Task) {
		t.DurationHours = &h
	}
}

func Anchored() TaskOption {
	return func(t *domain.Task) {
		t.IsAnchored = true
	}
}

func Completed() TaskOption {
	return func(t *domain.Task) {
		t.Status = domain.TaskCompleted
	}
}

func WithCreatedAt(ts time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = ts
		t.UpdatedAt = ts
	}
}

func WithMilestoneID(id string) TaskOption {
	return func(t *domain.Task) {
		t.MilestoneID = &id
	}
}

func NewTestTask(goalID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		Title:     title,
		Status:    domain.TaskPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
