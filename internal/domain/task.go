package domain

import (
	"math"
	"time"
)

// DailyCapacityHours is the fixed daily capacity used to derive an end date
// from an hour estimate. End-date derivation counts plain calendar days; the
// workday calendar in the scheduler package is a separate utility and the two
// never mix within one computation.
const DailyCapacityHours = 8

type Task struct {
	ID          string
	GoalID      string
	MilestoneID *string
	Title       string

	StartDate     *time.Time
	EndDate       *time.Time
	DurationHours *float64

	// An anchored task is user-fixed: propagation never moves it and treats
	// it as a wall that incoming shifts cannot cross.
	IsAnchored bool
	Status     TaskStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveAnchorDate returns the date that positions the task on its goal's
// timeline: the explicit start date, or the creation timestamp when no start
// was ever set. All timeline ordering goes through this accessor.
func (t *Task) EffectiveAnchorDate() time.Time {
	if t.StartDate != nil {
		return *t.StartDate
	}
	return t.CreatedAt
}

// DurationDays converts the hour estimate to whole calendar days at the fixed
// daily capacity, rounding up. Returns 0 when no estimate is set, which makes
// a derived end date collapse onto the start date.
func (t *Task) DurationDays() int {
	if t.DurationHours == nil || *t.DurationHours <= 0 {
		return 0
	}
	return int(math.Ceil(*t.DurationHours / DailyCapacityHours))
}

// DerivedEnd computes the end date implied by the hour estimate when the task
// were to start on the given day.
func (t *Task) DerivedEnd(start time.Time) time.Time {
	return start.AddDate(0, 0, t.DurationDays())
}

// Movable reports whether automatic propagation may assign the task new dates.
// Anchored tasks are walls and completed tasks are history; neither moves.
func (t *Task) Movable() bool {
	return !t.IsAnchored && t.Status != TaskCompleted
}
