package contract

import (
	"time"

	"github.com/jcollado/lodestar/internal/domain"
)

// StatusRequest asks for one goal's progress summary. Now pins the
// projection's reference day; nil means the current day.
type StatusRequest struct {
	GoalID string
	Now    *time.Time
}

// GoalStatus summarizes a goal's remaining work and its projected finish
// under the user's weekly time budget.
type GoalStatus struct {
	Goal           domain.Goal
	TotalTasks     int
	CompletedTasks int
	AnchoredTasks  int
	RemainingHours float64

	// RemainingWorkdays is the remaining effort divided by the daily pace
	// implied by the weekly budget (budget / 5 workdays).
	RemainingWorkdays int

	// ProjectedFinish is the workday-calendar landing date of the remaining
	// effort, counted inclusively from today. Nil when nothing remains.
	ProjectedFinish *time.Time

	// BehindTarget is set when a target date exists and the projection
	// overshoots it.
	BehindTarget bool
}
