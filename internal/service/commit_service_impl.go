package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jcollado/lodestar/internal/contract"
	"github.com/jcollado/lodestar/internal/db"
	"github.com/jcollado/lodestar/internal/filelock"
	"github.com/jcollado/lodestar/internal/repository"
)

type commitService struct {
	uow      db.UnitOfWork
	lockDir  string
	observer UseCaseObserver
}

// NewCommitService builds the gateway that persists computed batches.
// lockDir holds the per-goal lock files; an empty lockDir disables
// cross-process locking, which is what the in-memory test databases want.
func NewCommitService(uow db.UnitOfWork, lockDir string, observers ...UseCaseObserver) CommitService {
	return &commitService{
		uow:      uow,
		lockDir:  lockDir,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Commit applies a batch inside one transaction: bump the goal's version
// (rejecting the whole batch when it was computed against a stale snapshot),
// write every new date, then perform the optional deletion. Any failure rolls
// everything back. Conflicts are not re-checked here; a caller that commits
// an unresolved conflict gets exactly the dates it asked for.
func (s *commitService) Commit(ctx context.Context, req contract.CommitRequest) error {
	started := time.Now()

	err := s.commit(ctx, req)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "commit",
		Duration: time.Since(started),
		Success:  err == nil,
		Err:      err,
		Fields: map[string]any{
			"goal_id": req.GoalID,
			"updates": len(req.TasksToUpdate),
			"deletes": req.TaskIDToDelete != "",
		},
	})
	return err
}

func (s *commitService) commit(ctx context.Context, req contract.CommitRequest) error {
	if req.GoalID == "" {
		return &contract.PlanError{Code: contract.ErrValidation, Message: "goal id is required"}
	}
	if len(req.TasksToUpdate) == 0 && req.TaskIDToDelete == "" {
		return &contract.PlanError{Code: contract.ErrValidation, Message: "batch is empty"}
	}

	if s.lockDir != "" {
		lock, err := filelock.NewGoalLock(s.lockDir, req.GoalID)
		if err != nil {
			return &contract.PlanError{Code: contract.ErrStorage, Message: err.Error()}
		}
		if err := lock.Lock(ctx); err != nil {
			return &contract.PlanError{Code: contract.ErrStorage, Message: err.Error()}
		}
		defer lock.Unlock()
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGoals := repository.NewSQLiteGoalRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		if err := txGoals.IncrementVersion(ctx, req.GoalID, req.GoalVersion); err != nil {
			return err
		}

		for _, u := range req.TasksToUpdate {
			if err := txTasks.UpdateDates(ctx, u.TaskID, u.NewStartDate, u.NewEndDate); err != nil {
				return fmt.Errorf("updating task %s: %w", u.TaskID, err)
			}
		}

		if req.TaskIDToDelete != "" {
			if err := txTasks.Delete(ctx, req.TaskIDToDelete); err != nil {
				return fmt.Errorf("deleting task %s: %w", req.TaskIDToDelete, err)
			}
		}
		return nil
	})
	if err != nil {
		return asPlanError(err)
	}
	return nil
}

// asPlanError translates storage sentinels into the gateway's error contract.
func asPlanError(err error) error {
	var planErr *contract.PlanError
	if errors.As(err, &planErr) {
		return planErr
	}
	switch {
	case errors.Is(err, repository.ErrStaleVersion):
		return &contract.PlanError{
			Code:    contract.ErrStaleBatch,
			Message: "timeline changed since the batch was computed; recompute and retry",
		}
	case errors.Is(err, repository.ErrNotFound):
		return &contract.PlanError{Code: contract.ErrNotFound, Message: err.Error()}
	}
	return &contract.PlanError{Code: contract.ErrStorage, Message: err.Error()}
}
