package scheduler

import (
	"errors"
	"time"

	"github.com/jcollado/lodestar/internal/domain"
)

// ErrTriggerNotFound is returned when the task named by a reschedule or
// deletion request is not present in the supplied timeline.
var ErrTriggerNotFound = errors.New("trigger task not found in timeline")

// TaskShift is one computed date assignment. Starts and ends are absolute
// dates, not deltas, so replaying a batch is safe.
type TaskShift struct {
	TaskID   string
	NewStart time.Time
	NewEnd   time.Time
}

// Partition splits the downstream set of a propagation into its three roles.
// Movable tasks sit strictly before the wall in timeline order and receive
// new dates. The wall is the first anchored task at or after the trigger's
// original slot; it and everything behind it (Blocked) are never touched.
// At most one wall governs a propagation.
type Partition struct {
	Movable []domain.Task
	Wall    *domain.Task
	Blocked []domain.Task
}

// Wave is the full result of planning one reschedule: the uniform shift and
// the absolute date assignment for the trigger plus every movable task.
type Wave struct {
	Trigger   domain.Task
	ShiftDays int
	Shifts    []TaskShift // trigger first, then movables in timeline order
	Partition Partition
}

// PartitionDownstream selects the tidal wave for the given trigger task:
// every pending sibling whose effective anchor date is at or after the
// trigger's original slot, split into movable / wall / blocked. Completed
// tasks are history and never participate, not even as walls. The input
// slice must be the goal's full timeline in effective-anchor-date order.
func PartitionDownstream(tasks []domain.Task, triggerID string) (domain.Task, Partition, error) {
	var trigger *domain.Task
	for i := range tasks {
		if tasks[i].ID == triggerID {
			trigger = &tasks[i]
			break
		}
	}
	if trigger == nil {
		return domain.Task{}, Partition{}, ErrTriggerNotFound
	}

	origin := DateOnly(trigger.EffectiveAnchorDate())

	var downstream []domain.Task
	for _, t := range tasks {
		if t.ID == trigger.ID || t.Status == domain.TaskCompleted {
			continue
		}
		if !DateOnly(t.EffectiveAnchorDate()).Before(origin) {
			downstream = append(downstream, t)
		}
	}

	p := Partition{}
	wallIdx := -1
	for i, t := range downstream {
		if t.IsAnchored {
			wallIdx = i
			break
		}
	}
	if wallIdx < 0 {
		p.Movable = downstream
	} else {
		p.Movable = downstream[:wallIdx:wallIdx]
		wall := downstream[wallIdx]
		p.Wall = &wall
		p.Blocked = downstream[wallIdx:]
	}
	return *trigger, p, nil
}

// PlanReschedule computes the new dates caused by moving one task to a new
// start date. The trigger's end is re-derived from its hour estimate; every
// movable downstream task slides by the same whole-day shift, keeping an
// explicit end date's span or re-deriving the end when none was ever set.
// The wall and everything behind it stay untouched; whether the shifted wave
// now collides with the wall is the conflict detector's question.
func PlanReschedule(tasks []domain.Task, triggerID string, newStart time.Time) (*Wave, error) {
	trigger, part, err := PartitionDownstream(tasks, triggerID)
	if err != nil {
		return nil, err
	}

	start := DateOnly(newStart)
	shift := DaysBetween(trigger.EffectiveAnchorDate(), start)

	shifts := make([]TaskShift, 0, len(part.Movable)+1)
	shifts = append(shifts, TaskShift{
		TaskID:   trigger.ID,
		NewStart: start,
		NewEnd:   triggerEnd(trigger, start, shift),
	})
	for _, t := range part.Movable {
		ns := DateOnly(t.EffectiveAnchorDate()).AddDate(0, 0, shift)
		shifts = append(shifts, TaskShift{
			TaskID:   t.ID,
			NewStart: ns,
			NewEnd:   shiftedEnd(t, ns, shift),
		})
	}

	return &Wave{
		Trigger:   trigger,
		ShiftDays: shift,
		Shifts:    shifts,
		Partition: part,
	}, nil
}

// MovableShifts is the pushed part of the wave, without the trigger's own
// shift. Conflict detection runs over this set only: where the user
// deliberately dropped the trigger is not the wall's business.
func (w *Wave) MovableShifts() []TaskShift {
	return w.Shifts[1:]
}

// shiftedEnd computes a movable task's new end date once its new start is
// known. An explicit end date keeps its span; the hour estimate is only the
// fallback; with neither, the task collapses to a single day.
func shiftedEnd(t domain.Task, newStart time.Time, shift int) time.Time {
	if t.EndDate != nil {
		return DateOnly(*t.EndDate).AddDate(0, 0, shift)
	}
	if t.DurationHours != nil && *t.DurationHours > 0 {
		return t.DerivedEnd(newStart)
	}
	return newStart
}

// triggerEnd re-derives the moved task's own end from its hour estimate; an
// explicit end date only contributes its span when no estimate exists.
func triggerEnd(t domain.Task, newStart time.Time, shift int) time.Time {
	if t.DurationHours != nil && *t.DurationHours > 0 {
		return t.DerivedEnd(newStart)
	}
	if t.EndDate != nil {
		return DateOnly(*t.EndDate).AddDate(0, 0, shift)
	}
	return newStart
}

// spanDays is the number of calendar days a task occupies on the timeline,
// used as the pull-forward distance when the task is deleted. An explicit
// start/end span wins over the hour estimate.
func spanDays(t domain.Task) int {
	if t.StartDate != nil && t.EndDate != nil {
		if d := DaysBetween(*t.StartDate, *t.EndDate); d > 0 {
			return d
		}
	}
	return t.DurationDays()
}
