package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDeletion_PullsDownstreamForward(t *testing.T) {
	// Deleting a 3-day task pulls both downstream tasks exactly 3 days earlier.
	tasks := timeline(
		tl("gone", date(2024, time.March, 4), hours(24)),
		tl("t2", date(2024, time.March, 7), hours(8)),
		tl("t3", date(2024, time.March, 8), hours(8)),
	)

	plan, err := PlanDeletion(tasks, "gone")
	require.NoError(t, err)

	assert.Equal(t, 3, plan.TimeSavedDays)
	require.Len(t, plan.Shifts, 2)
	assert.Equal(t, date(2024, time.March, 4), plan.Shifts[0].NewStart)
	assert.Equal(t, date(2024, time.March, 5), plan.Shifts[1].NewStart)
	assert.Empty(t, plan.DependencyIssues)
}

func TestPlanDeletion_ExplicitSpanWinsOverEstimate(t *testing.T) {
	tasks := timeline(
		tl("gone", date(2024, time.March, 4), hours(8), endsOn(date(2024, time.March, 6))),
		tl("t2", date(2024, time.March, 7), hours(8)),
	)

	plan, err := PlanDeletion(tasks, "gone")
	require.NoError(t, err)

	// Start Mar 4, end Mar 6: a two-day pull, not the 8h estimate's one day.
	assert.Equal(t, 2, plan.TimeSavedDays)
	assert.Equal(t, date(2024, time.March, 5), plan.Shifts[0].NewStart)
}

func TestPlanDeletion_WallBlocksPullForward(t *testing.T) {
	tasks := timeline(
		tl("gone", date(2024, time.March, 4), hours(24)),
		tl("wall", date(2024, time.March, 7), hours(8), anchored()),
		tl("t3", date(2024, time.March, 8), hours(8)),
	)

	plan, err := PlanDeletion(tasks, "gone")
	require.NoError(t, err)

	assert.Empty(t, plan.Shifts, "everything downstream is at or behind the wall")
	assert.Equal(t, 0, plan.TimeSavedDays, "freed days before a wall are absorbed, not saved")
	require.Len(t, plan.DependencyIssues, 1)
	assert.Contains(t, plan.DependencyIssues[0], "wall")
}

func TestPlanDeletion_PartialWaveBeforeWall(t *testing.T) {
	tasks := timeline(
		tl("gone", date(2024, time.March, 4), hours(16)),
		tl("t2", date(2024, time.March, 6), hours(8)),
		tl("wall", date(2024, time.March, 12), hours(8), anchored()),
	)

	plan, err := PlanDeletion(tasks, "gone")
	require.NoError(t, err)

	require.Len(t, plan.Shifts, 1)
	assert.Equal(t, "t2", plan.Shifts[0].TaskID)
	assert.Equal(t, date(2024, time.March, 4), plan.Shifts[0].NewStart)
	assert.Equal(t, 2, plan.TimeSavedDays)
}

func TestPlanDeletion_AnchoredTaskWarns(t *testing.T) {
	tasks := timeline(
		tl("gone", date(2024, time.March, 4), hours(8), anchored()),
		tl("t2", date(2024, time.March, 5), hours(8)),
	)

	plan, err := PlanDeletion(tasks, "gone")
	require.NoError(t, err)

	require.NotEmpty(t, plan.DependencyIssues)
	assert.Contains(t, plan.DependencyIssues[0], "anchored")
}

func TestPlanDeletion_ZeroSpanTaskMovesNothing(t *testing.T) {
	tasks := timeline(
		tl("gone", date(2024, time.March, 4)),
		tl("t2", date(2024, time.March, 5), hours(8)),
	)

	plan, err := PlanDeletion(tasks, "gone")
	require.NoError(t, err)

	assert.Equal(t, 0, plan.TimeSavedDays)
	require.Len(t, plan.Shifts, 1)
	assert.Equal(t, date(2024, time.March, 5), plan.Shifts[0].NewStart, "zero-day pull leaves dates in place")
}

func TestPlanDeletion_NotFound(t *testing.T) {
	tasks := timeline(tl("t1", date(2024, time.March, 4)))

	plan, err := PlanDeletion(tasks, "missing")
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrTriggerNotFound)
}
