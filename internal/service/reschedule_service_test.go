package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcollado/lodestar/internal/contract"
	"github.com/jcollado/lodestar/internal/domain"
	"github.com/jcollado/lodestar/internal/repository"
	"github.com/jcollado/lodestar/internal/testutil"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// seedTimeline creates a goal with the canonical three-task shape used across
// the planning tests: a movable estimated task, an anchored meeting well
// downstream, and a movable task behind the meeting.
func seedTimeline(t *testing.T, goals repository.GoalRepo, tasks repository.TaskRepo) (goal *domain.Goal, t1, t2, t3 *domain.Task) {
	t.Helper()
	ctx := context.Background()

	goal = testutil.NewTestGoal("Learn sailing")
	require.NoError(t, goals.Create(ctx, goal))

	t1 = testutil.NewTestTask(goal.ID, "Read theory",
		testutil.WithStartDate(date(t, "2024-01-01")),
		testutil.WithEndDate(date(t, "2024-01-02")),
		testutil.WithDurationHours(8))
	t2 = testutil.NewTestTask(goal.ID, "Certification exam",
		testutil.WithStartDate(date(t, "2024-01-10")),
		testutil.WithEndDate(date(t, "2024-01-10")),
		testutil.Anchored())
	t3 = testutil.NewTestTask(goal.ID, "First solo trip",
		testutil.WithStartDate(date(t, "2024-01-15")),
		testutil.WithEndDate(date(t, "2024-01-16")))
	for _, task := range []*domain.Task{t1, t2, t3} {
		require.NoError(t, tasks.Create(ctx, task))
	}
	return goal, t1, t2, t3
}

func TestReschedule_WaveStopsAtAnchoredTask(t *testing.T) {
	database := testutil.NewTestDB(t)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	goal, t1, _, _ := seedTimeline(t, goalRepo, taskRepo)
	svc := NewRescheduleService(goalRepo, taskRepo)

	resp, err := svc.Reschedule(ctx, contract.RescheduleRequest{
		TaskID:       t1.ID,
		NewStartDate: date(t, "2024-01-05"),
	})
	require.NoError(t, err)

	assert.Equal(t, contract.StatusSuccess, resp.Status)
	assert.Equal(t, goal.ID, resp.GoalID)
	assert.Equal(t, goal.Version, resp.GoalVersion)
	assert.Equal(t, 4, resp.TimeShiftInDays)
	assert.Nil(t, resp.ConflictInfo)

	// The anchored exam and everything behind it stay out of the batch.
	require.Len(t, resp.UpdatedTasks, 1)
	assert.Equal(t, t1.ID, resp.UpdatedTasks[0].TaskID)
	assert.Equal(t, date(t, "2024-01-05"), resp.UpdatedTasks[0].NewStartDate)
	assert.Equal(t, date(t, "2024-01-06"), resp.UpdatedTasks[0].NewEndDate)
}

func TestReschedule_PropagatesToMovableDownstream(t *testing.T) {
	database := testutil.NewTestDB(t)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Write a book")
	require.NoError(t, goalRepo.Create(ctx, goal))

	draft := testutil.NewTestTask(goal.ID, "Draft",
		testutil.WithStartDate(date(t, "2024-03-01")),
		testutil.WithDurationHours(16))
	edit := testutil.NewTestTask(goal.ID, "Edit",
		testutil.WithStartDate(date(t, "2024-03-10")),
		testutil.WithEndDate(date(t, "2024-03-12")))
	require.NoError(t, taskRepo.Create(ctx, draft))
	require.NoError(t, taskRepo.Create(ctx, edit))

	svc := NewRescheduleService(goalRepo, taskRepo)
	resp, err := svc.Reschedule(ctx, contract.RescheduleRequest{
		TaskID:       draft.ID,
		NewStartDate: date(t, "2024-03-04"),
	})
	require.NoError(t, err)

	assert.Equal(t, contract.StatusSuccess, resp.Status)
	assert.Equal(t, 3, resp.TimeShiftInDays)
	require.Len(t, resp.UpdatedTasks, 2)

	assert.Equal(t, draft.ID, resp.UpdatedTasks[0].TaskID)
	assert.Equal(t, date(t, "2024-03-04"), resp.UpdatedTasks[0].NewStartDate)
	assert.Equal(t, date(t, "2024-03-06"), resp.UpdatedTasks[0].NewEndDate)

	assert.Equal(t, edit.ID, resp.UpdatedTasks[1].TaskID)
	assert.Equal(t, date(t, "2024-03-13"), resp.UpdatedTasks[1].NewStartDate)
	assert.Equal(t, date(t, "2024-03-15"), resp.UpdatedTasks[1].NewEndDate)
}

func TestReschedule_ConflictWithWall(t *testing.T) {
	database := testutil.NewTestDB(t)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Exam prep")
	require.NoError(t, goalRepo.Create(ctx, goal))

	study := testutil.NewTestTask(goal.ID, "Study",
		testutil.WithStartDate(date(t, "2024-01-01")),
		testutil.WithDurationHours(8))
	practice := testutil.NewTestTask(goal.ID, "Practice questions",
		testutil.WithStartDate(date(t, "2024-01-03")),
		testutil.WithEndDate(date(t, "2024-01-03")))
	exam := testutil.NewTestTask(goal.ID, "Exam",
		testutil.WithStartDate(date(t, "2024-01-05")),
		testutil.WithEndDate(date(t, "2024-01-05")),
		testutil.Anchored())
	for _, task := range []*domain.Task{study, practice, exam} {
		require.NoError(t, taskRepo.Create(ctx, task))
	}

	svc := NewRescheduleService(goalRepo, taskRepo)
	resp, err := svc.Reschedule(ctx, contract.RescheduleRequest{
		TaskID:       study.ID,
		NewStartDate: date(t, "2024-01-04"),
	})
	require.NoError(t, err)

	assert.Equal(t, contract.StatusRescheduleConflict, resp.Status)
	require.NotNil(t, resp.ConflictInfo)
	assert.Equal(t, exam.ID, resp.ConflictInfo.AnchoredTaskID)
	assert.Equal(t, "Exam", resp.ConflictInfo.AnchoredTaskTitle)
	// Practice is pushed to Jan 6, one day past the Jan 5 wall plus the touch.
	assert.Equal(t, 2, resp.ConflictInfo.CompressionNeeded)

	// The batch is still fully computed; committing it is the caller's call.
	require.Len(t, resp.UpdatedTasks, 2)
}

func TestReschedule_TriggerMovedPastWallIsNotAConflict(t *testing.T) {
	database := testutil.NewTestDB(t)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Crash course")
	require.NoError(t, goalRepo.Create(ctx, goal))

	t1 := testutil.NewTestTask(goal.ID, "Intro module",
		testutil.WithStartDate(date(t, "2024-01-01")),
		testutil.WithDurationHours(8))
	t2 := testutil.NewTestTask(goal.ID, "Live workshop",
		testutil.WithStartDate(date(t, "2024-01-02")),
		testutil.WithDurationHours(8),
		testutil.Anchored())
	t3 := testutil.NewTestTask(goal.ID, "Recap",
		testutil.WithStartDate(date(t, "2024-01-03")),
		testutil.WithDurationHours(8))
	for _, task := range []*domain.Task{t1, t2, t3} {
		require.NoError(t, taskRepo.Create(ctx, task))
	}

	// Dragging the trigger itself onto the far side of the wall is a choice,
	// not a collision: nothing was pushed into the workshop.
	svc := NewRescheduleService(goalRepo, taskRepo)
	resp, err := svc.Reschedule(ctx, contract.RescheduleRequest{
		TaskID:       t1.ID,
		NewStartDate: date(t, "2024-01-05"),
	})
	require.NoError(t, err)

	assert.Equal(t, contract.StatusSuccess, resp.Status)
	assert.Nil(t, resp.ConflictInfo)
	require.Len(t, resp.UpdatedTasks, 1)
	assert.Equal(t, t1.ID, resp.UpdatedTasks[0].TaskID)
	assert.Equal(t, date(t, "2024-01-05"), resp.UpdatedTasks[0].NewStartDate)
	assert.Equal(t, date(t, "2024-01-06"), resp.UpdatedTasks[0].NewEndDate)
}

func TestReschedule_TaskNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	svc := NewRescheduleService(goalRepo, taskRepo)
	_, err := svc.Reschedule(context.Background(), contract.RescheduleRequest{
		TaskID:       "no-such-task",
		NewStartDate: date(t, "2024-01-05"),
	})

	var pe *contract.PlanError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, contract.ErrNotFound, pe.Code)
}

func TestReschedule_Validation(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewRescheduleService(
		repository.NewSQLiteGoalRepo(database),
		repository.NewSQLiteTaskRepo(database))

	_, err := svc.Reschedule(context.Background(), contract.RescheduleRequest{NewStartDate: date(t, "2024-01-05")})
	var pe *contract.PlanError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, contract.ErrValidation, pe.Code)

	_, err = svc.Reschedule(context.Background(), contract.RescheduleRequest{TaskID: "t"})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, contract.ErrValidation, pe.Code)
}

func TestDeleteAndRefactor_PullsTimelineForward(t *testing.T) {
	database := testutil.NewTestDB(t)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Move house")
	require.NoError(t, goalRepo.Create(ctx, goal))

	pack := testutil.NewTestTask(goal.ID, "Pack",
		testutil.WithStartDate(date(t, "2024-02-01")),
		testutil.WithDurationHours(24))
	haul := testutil.NewTestTask(goal.ID, "Haul",
		testutil.WithStartDate(date(t, "2024-02-10")),
		testutil.WithEndDate(date(t, "2024-02-11")))
	unpack := testutil.NewTestTask(goal.ID, "Unpack",
		testutil.WithStartDate(date(t, "2024-02-15")),
		testutil.WithEndDate(date(t, "2024-02-17")))
	for _, task := range []*domain.Task{pack, haul, unpack} {
		require.NoError(t, taskRepo.Create(ctx, task))
	}

	svc := NewRescheduleService(goalRepo, taskRepo)
	resp, err := svc.DeleteAndRefactor(ctx, contract.DeleteRefactorRequest{TaskIDToDelete: pack.ID})
	require.NoError(t, err)

	assert.Equal(t, contract.StatusSuccess, resp.Status)
	assert.Equal(t, pack.ID, resp.TaskIDToDelete)
	assert.Equal(t, 3, resp.TimeSavedInDays, "24h at 8h/day spans 3 days")
	assert.Empty(t, resp.DependencyIssues)

	require.Len(t, resp.UpdatedTasks, 2)
	assert.Equal(t, date(t, "2024-02-07"), resp.UpdatedTasks[0].NewStartDate)
	assert.Equal(t, date(t, "2024-02-08"), resp.UpdatedTasks[0].NewEndDate)
	assert.Equal(t, date(t, "2024-02-12"), resp.UpdatedTasks[1].NewStartDate)
	assert.Equal(t, date(t, "2024-02-14"), resp.UpdatedTasks[1].NewEndDate)
}

func TestDeleteAndRefactor_WallBlocksSavings(t *testing.T) {
	database := testutil.NewTestDB(t)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	goal, t1, t2, _ := seedTimeline(t, goalRepo, taskRepo)
	_ = goal

	svc := NewRescheduleService(goalRepo, taskRepo)
	resp, err := svc.DeleteAndRefactor(ctx, contract.DeleteRefactorRequest{TaskIDToDelete: t1.ID})
	require.NoError(t, err)

	// The anchored exam is the first downstream task, so nothing moves and
	// no days are actually saved.
	assert.Equal(t, contract.StatusDependencyConflict, resp.Status)
	assert.Equal(t, 0, resp.TimeSavedInDays)
	assert.Empty(t, resp.UpdatedTasks)
	require.NotEmpty(t, resp.DependencyIssues)
	assert.Contains(t, resp.DependencyIssues[0], t2.Title)
}

func TestDeleteAndRefactor_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewRescheduleService(
		repository.NewSQLiteGoalRepo(database),
		repository.NewSQLiteTaskRepo(database))

	_, err := svc.DeleteAndRefactor(context.Background(), contract.DeleteRefactorRequest{TaskIDToDelete: "ghost"})
	var pe *contract.PlanError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, contract.ErrNotFound, pe.Code)
}
