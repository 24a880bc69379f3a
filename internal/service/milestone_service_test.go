package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcollado/lodestar/internal/domain"
	"github.com/jcollado/lodestar/internal/repository"
	"github.com/jcollado/lodestar/internal/testutil"
)

func TestMilestoneCreate_RequiresExistingGoal(t *testing.T) {
	database := testutil.NewTestDB(t)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	msRepo := repository.NewSQLiteMilestoneRepo(database)
	svc := NewMilestoneService(msRepo, goalRepo)
	ctx := context.Background()

	err := svc.Create(ctx, &domain.Milestone{GoalID: "no-such-goal", Title: "Phase 1"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	g := testutil.NewTestGoal("Goal")
	require.NoError(t, goalRepo.Create(ctx, g))

	m := &domain.Milestone{GoalID: g.ID, Title: "Phase 1", OrderIndex: 1}
	require.NoError(t, svc.Create(ctx, m))
	assert.NotEmpty(t, m.ID)

	listed, err := svc.ListByGoal(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Phase 1", listed[0].Title)
}
