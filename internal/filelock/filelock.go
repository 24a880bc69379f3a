// Package filelock serializes timeline commits across processes with
// per-goal advisory lock files.
package filelock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// retryDelay is the polling interval while waiting on a held lock.
const retryDelay = 25 * time.Millisecond

// GoalLock is an exclusive cross-process lock scoped to one goal. Two
// processes committing batches against the same goal take turns; commits
// against different goals do not contend.
type GoalLock struct {
	flock *flock.Flock
	path  string
}

// NewGoalLock creates the lock for the given goal. The lock file lives under
// dir, which is created on first use.
func NewGoalLock(dir, goalID string) (*GoalLock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating lock directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, goalID+".lock")
	return &GoalLock{flock: flock.New(path), path: path}, nil
}

// Lock acquires the lock, polling until it is free or ctx is done.
func (l *GoalLock) Lock(ctx context.Context) error {
	acquired, err := l.flock.TryLockContext(ctx, retryDelay)
	if err != nil {
		return fmt.Errorf("acquiring lock %s: %w", l.path, err)
	}
	if !acquired {
		return fmt.Errorf("lock %s not acquired", l.path)
	}
	return nil
}

// TryLock attempts the lock without blocking. False means another process
// holds it.
func (l *GoalLock) TryLock() (bool, error) {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("trying lock %s: %w", l.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock. Unlocking a lock that is not held is a no-op.
func (l *GoalLock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("releasing lock %s: %w", l.path, err)
	}
	return nil
}
