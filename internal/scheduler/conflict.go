package scheduler

import "github.com/jcollado/lodestar/internal/domain"

// WallTouchConflicts pins the boundary convention: a moved task whose new end
// lands exactly on the wall's start date is a conflict, not valid adjacency.
// Tests assert this convention; flipping it is a product decision.
const WallTouchConflicts = true

// Conflict describes a propagated wave colliding with its wall.
// CompressionDays is the number of whole days the wave would have to give up
// for the last moved task to end strictly before the wall starts; a wave that
// exactly touches the wall therefore reports 1.
type Conflict struct {
	AnchoredTaskID    string
	AnchoredTaskTitle string
	CompressionDays   int
}

// DetectConflict checks a wave's movable shifts against the unmoved wall.
// Returns nil when there is no wall or the wave stays clear of it. The
// trigger's own shift stays out of the input set: its new dates are the
// user's explicit placement, not a pushed consequence.
func DetectConflict(shifts []TaskShift, wall *domain.Task) *Conflict {
	if wall == nil || len(shifts) == 0 {
		return nil
	}

	wallStart := DateOnly(wall.EffectiveAnchorDate())

	lastEnd := shifts[0].NewEnd
	for _, s := range shifts[1:] {
		if s.NewEnd.After(lastEnd) {
			lastEnd = s.NewEnd
		}
	}

	if lastEnd.Before(wallStart) {
		return nil
	}
	if !WallTouchConflicts && lastEnd.Equal(wallStart) {
		return nil
	}
	return &Conflict{
		AnchoredTaskID:    wall.ID,
		AnchoredTaskTitle: wall.Title,
		CompressionDays:   DaysBetween(wallStart, lastEnd) + 1,
	}
}
