package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcollado/lodestar/internal/testutil"
)

func TestMilestoneRepo_CRUD(t *testing.T) {
	db := testutil.NewTestDB(t)
	goalRepo := NewSQLiteGoalRepo(db)
	repo := NewSQLiteMilestoneRepo(db)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Goal")
	require.NoError(t, goalRepo.Create(ctx, goal))

	ms := testutil.NewTestMilestone(goal.ID, "Phase 1", testutil.WithOrderIndex(1))
	require.NoError(t, repo.Create(ctx, ms))

	fetched, err := repo.GetByID(ctx, ms.ID)
	require.NoError(t, err)
	assert.Equal(t, "Phase 1", fetched.Title)
	assert.Equal(t, 1, fetched.OrderIndex)

	ms.Title = "Phase 1 (revised)"
	require.NoError(t, repo.Update(ctx, ms))
	fetched, err = repo.GetByID(ctx, ms.ID)
	require.NoError(t, err)
	assert.Equal(t, "Phase 1 (revised)", fetched.Title)

	require.NoError(t, repo.Delete(ctx, ms.ID))
	_, err = repo.GetByID(ctx, ms.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMilestoneRepo_ListByGoal_OrdersByIndex(t *testing.T) {
	db := testutil.NewTestDB(t)
	goalRepo := NewSQLiteGoalRepo(db)
	repo := NewSQLiteMilestoneRepo(db)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Goal")
	require.NoError(t, goalRepo.Create(ctx, goal))

	second := testutil.NewTestMilestone(goal.ID, "Second", testutil.WithOrderIndex(2))
	first := testutil.NewTestMilestone(goal.ID, "First", testutil.WithOrderIndex(1))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	listed, err := repo.ListByGoal(ctx, goal.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "First", listed[0].Title)
	assert.Equal(t, "Second", listed[1].Title)
}
