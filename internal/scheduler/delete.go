package scheduler

import (
	"fmt"

	"github.com/jcollado/lodestar/internal/domain"
)

// DeletionPlan is the computed outcome of removing one task and pulling the
// rest of the timeline forward to close the gap.
type DeletionPlan struct {
	TaskID           string
	Shifts           []TaskShift // movable tasks only; the deleted task gets no new dates
	TimeSavedDays    int
	DependencyIssues []string
	Partition        Partition
}

// PlanDeletion computes the pull-forward wave for deleting a task: every
// movable downstream task slides earlier by the deleted task's span. The wall
// and everything behind it keep their dates, so days freed immediately before
// a wall are absorbed rather than saved. DependencyIssues are advisory
// warnings about anchored structure the deletion touches; they never block
// the plan on their own.
func PlanDeletion(tasks []domain.Task, taskID string) (*DeletionPlan, error) {
	trigger, part, err := PartitionDownstream(tasks, taskID)
	if err != nil {
		return nil, err
	}

	pull := spanDays(trigger)
	shift := -pull

	var shifts []TaskShift
	for _, t := range part.Movable {
		ns := DateOnly(t.EffectiveAnchorDate()).AddDate(0, 0, shift)
		shifts = append(shifts, TaskShift{
			TaskID:   t.ID,
			NewStart: ns,
			NewEnd:   shiftedEnd(t, ns, shift),
		})
	}

	saved := 0
	if len(shifts) > 0 {
		saved = pull
	}

	var issues []string
	if trigger.IsAnchored {
		issues = append(issues, fmt.Sprintf(
			"%q is anchored; deleting it removes a fixed commitment from the timeline", trigger.Title))
	}
	if part.Wall != nil {
		issues = append(issues, fmt.Sprintf(
			"anchored task %q does not move; tasks scheduled at or after it keep their dates", part.Wall.Title))
	}

	return &DeletionPlan{
		TaskID:           trigger.ID,
		Shifts:           shifts,
		TimeSavedDays:    saved,
		DependencyIssues: issues,
		Partition:        part,
	}, nil
}
