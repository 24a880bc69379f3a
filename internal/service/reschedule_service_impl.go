package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jcollado/lodestar/internal/contract"
	"github.com/jcollado/lodestar/internal/domain"
	"github.com/jcollado/lodestar/internal/repository"
	"github.com/jcollado/lodestar/internal/scheduler"
)

type rescheduleService struct {
	goals    repository.GoalRepo
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewRescheduleService(goals repository.GoalRepo, tasks repository.TaskRepo, observers ...UseCaseObserver) RescheduleService {
	return &rescheduleService{
		goals:    goals,
		tasks:    tasks,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Reschedule computes the propagation wave caused by moving one task to a new
// start date. Nothing is persisted; the response carries the full batch of
// new dates, the goal version it was computed against, and the conflict, if
// the wave ran into an anchored task.
func (s *rescheduleService) Reschedule(ctx context.Context, req contract.RescheduleRequest) (*contract.RescheduleResponse, error) {
	started := time.Now()

	resp, err := s.reschedule(ctx, req)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "reschedule",
		Duration: time.Since(started),
		Success:  err == nil,
		Err:      err,
		Fields:   map[string]any{"task_id": req.TaskID},
	})
	return resp, err
}

func (s *rescheduleService) reschedule(ctx context.Context, req contract.RescheduleRequest) (*contract.RescheduleResponse, error) {
	if req.TaskID == "" {
		return nil, &contract.PlanError{Code: contract.ErrValidation, Message: "task id is required"}
	}
	if req.NewStartDate.IsZero() {
		return nil, &contract.PlanError{Code: contract.ErrValidation, Message: "new start date is required"}
	}

	goal, timeline, err := s.loadTimeline(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}

	wave, err := scheduler.PlanReschedule(timeline, req.TaskID, req.NewStartDate)
	if err != nil {
		if errors.Is(err, scheduler.ErrTriggerNotFound) {
			return nil, &contract.PlanError{Code: contract.ErrNotFound, Message: "task not found: " + req.TaskID}
		}
		return nil, fmt.Errorf("planning reschedule: %w", err)
	}

	resp := &contract.RescheduleResponse{
		Status:          contract.StatusSuccess,
		GoalID:          goal.ID,
		GoalVersion:     goal.Version,
		UpdatedTasks:    toTaskUpdates(wave.Shifts),
		TimeShiftInDays: wave.ShiftDays,
		Message: fmt.Sprintf("moving %q shifts %d task(s) by %d day(s)",
			wave.Trigger.Title, len(wave.Shifts), wave.ShiftDays),
	}

	if c := scheduler.DetectConflict(wave.MovableShifts(), wave.Partition.Wall); c != nil {
		resp.Status = contract.StatusRescheduleConflict
		resp.ConflictInfo = &contract.ConflictInfo{
			CompressionNeeded: c.CompressionDays,
			AnchoredTaskID:    c.AnchoredTaskID,
			AnchoredTaskTitle: c.AnchoredTaskTitle,
		}
		resp.Message = fmt.Sprintf("plan collides with anchored task %q; %d day(s) of compression needed",
			c.AnchoredTaskTitle, c.CompressionDays)
	}
	return resp, nil
}

// DeleteAndRefactor computes the pull-forward wave that deleting a task
// frees up. As with Reschedule, the batch is returned for confirmation, not
// applied.
func (s *rescheduleService) DeleteAndRefactor(ctx context.Context, req contract.DeleteRefactorRequest) (*contract.DeleteRefactorResponse, error) {
	started := time.Now()

	resp, err := s.deleteAndRefactor(ctx, req)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "delete_refactor",
		Duration: time.Since(started),
		Success:  err == nil,
		Err:      err,
		Fields:   map[string]any{"task_id": req.TaskIDToDelete},
	})
	return resp, err
}

func (s *rescheduleService) deleteAndRefactor(ctx context.Context, req contract.DeleteRefactorRequest) (*contract.DeleteRefactorResponse, error) {
	if req.TaskIDToDelete == "" {
		return nil, &contract.PlanError{Code: contract.ErrValidation, Message: "task id is required"}
	}

	goal, timeline, err := s.loadTimeline(ctx, req.TaskIDToDelete)
	if err != nil {
		return nil, err
	}

	plan, err := scheduler.PlanDeletion(timeline, req.TaskIDToDelete)
	if err != nil {
		if errors.Is(err, scheduler.ErrTriggerNotFound) {
			return nil, &contract.PlanError{Code: contract.ErrNotFound, Message: "task not found: " + req.TaskIDToDelete}
		}
		return nil, fmt.Errorf("planning deletion: %w", err)
	}

	status := contract.StatusSuccess
	if len(plan.DependencyIssues) > 0 {
		status = contract.StatusDependencyConflict
	}

	msg := fmt.Sprintf("deleting frees %d day(s); %d task(s) pull forward",
		plan.TimeSavedDays, len(plan.Shifts))
	if len(plan.Shifts) == 0 {
		msg = "deleting frees no time; no downstream tasks move"
	}

	return &contract.DeleteRefactorResponse{
		Status:           status,
		GoalID:           goal.ID,
		GoalVersion:      goal.Version,
		TaskIDToDelete:   plan.TaskID,
		UpdatedTasks:     toTaskUpdates(plan.Shifts),
		TimeSavedInDays:  plan.TimeSavedDays,
		DependencyIssues: plan.DependencyIssues,
		Message:          msg,
	}, nil
}

// loadTimeline resolves the task's goal and takes the full ordered timeline
// snapshot the propagation math runs against. The goal's version rides along
// so the eventual commit can detect interleaved mutations.
func (s *rescheduleService) loadTimeline(ctx context.Context, taskID string) (*domain.Goal, []domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, &contract.PlanError{Code: contract.ErrNotFound, Message: "task not found: " + taskID}
		}
		return nil, nil, fmt.Errorf("loading task: %w", err)
	}

	goal, err := s.goals.GetByID(ctx, task.GoalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, &contract.PlanError{Code: contract.ErrNotFound, Message: "goal not found: " + task.GoalID}
		}
		return nil, nil, fmt.Errorf("loading goal: %w", err)
	}

	timeline, err := s.tasks.ListByGoal(ctx, goal.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading timeline: %w", err)
	}
	return goal, timeline, nil
}

func toTaskUpdates(shifts []scheduler.TaskShift) []contract.TaskUpdate {
	updates := make([]contract.TaskUpdate, 0, len(shifts))
	for _, sh := range shifts {
		updates = append(updates, contract.TaskUpdate{
			TaskID:       sh.TaskID,
			NewStartDate: sh.NewStart,
			NewEndDate:   sh.NewEnd,
		})
	}
	return updates
}
