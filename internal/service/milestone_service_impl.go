package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcollado/lodestar/internal/domain"
	"github.com/jcollado/lodestar/internal/repository"
)

type milestoneService struct {
	milestones repository.MilestoneRepo
	goals      repository.GoalRepo
}

func NewMilestoneService(milestones repository.MilestoneRepo, goals repository.GoalRepo) MilestoneService {
	return &milestoneService{milestones: milestones, goals: goals}
}

func (s *milestoneService) Create(ctx context.Context, m *domain.Milestone) error {
	// Surface a missing goal before the FK does.
	if _, err := s.goals.GetByID(ctx, m.GoalID); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	return s.milestones.Create(ctx, m)
}

func (s *milestoneService) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	return s.milestones.GetByID(ctx, id)
}

func (s *milestoneService) ListByGoal(ctx context.Context, goalID string) ([]*domain.Milestone, error) {
	return s.milestones.ListByGoal(ctx, goalID)
}

func (s *milestoneService) Update(ctx context.Context, m *domain.Milestone) error {
	m.UpdatedAt = time.Now().UTC()
	return s.milestones.Update(ctx, m)
}

func (s *milestoneService) Delete(ctx context.Context, id string) error {
	return s.milestones.Delete(ctx, id)
}
