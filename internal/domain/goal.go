package domain

import "time"

type Goal struct {
	ID          string
	Title       string
	Description string
	Status      GoalStatus

	// Weekly time budget the user committed to this goal.
	WeeklyBudgetHours float64
	TargetDate        *time.Time

	// Version is bumped on every committed timeline mutation. Commits carry
	// the version they were computed against; a mismatch rejects the batch.
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
