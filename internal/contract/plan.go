package contract

import "time"

// Status classifies the outcome of a reschedule or delete-and-refactor
// computation. Conflicts are successful computations that need a user
// decision, not errors.
type Status string

const (
	StatusSuccess            Status = "success"
	StatusRescheduleConflict Status = "reschedule_conflict"
	StatusDependencyConflict Status = "dependency_conflict"
	StatusError              Status = "error"
)

// TaskUpdate is one absolute date assignment in a computed batch.
type TaskUpdate struct {
	TaskID       string
	NewStartDate time.Time
	NewEndDate   time.Time
}

// ConflictInfo reports a propagation colliding with an anchored task.
type ConflictInfo struct {
	CompressionNeeded int
	AnchoredTaskID    string
	AnchoredTaskTitle string
}

type RescheduleRequest struct {
	TaskID       string
	NewStartDate time.Time
}

type RescheduleResponse struct {
	Status          Status
	GoalID          string
	GoalVersion     int64 // snapshot version; hand back to Commit
	UpdatedTasks    []TaskUpdate
	TimeShiftInDays int
	ConflictInfo    *ConflictInfo
	Message         string
}

type DeleteRefactorRequest struct {
	TaskIDToDelete string
}

type DeleteRefactorResponse struct {
	Status           Status
	GoalID           string
	GoalVersion      int64
	TaskIDToDelete   string
	UpdatedTasks     []TaskUpdate
	TimeSavedInDays  int
	DependencyIssues []string
	Message          string
}

// CommitRequest is the exact batch shape the commit gateway applies: any
// number of updates plus at most one deletion, all-or-nothing. The gateway
// performs no conflict re-validation; callers resolve conflicts first.
type CommitRequest struct {
	GoalID         string
	GoalVersion    int64
	TasksToUpdate  []TaskUpdate
	TaskIDToDelete string // empty for none
}
