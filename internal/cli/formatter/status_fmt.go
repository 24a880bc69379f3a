package formatter

import (
	"fmt"
	"strings"

	"github.com/jcollado/lodestar/internal/contract"
)

// FormatGoalStatus renders a goal's progress summary and projected finish.
func FormatGoalStatus(s *contract.GoalStatus) string {
	var b strings.Builder
	b.WriteString(Header(s.Goal.Title))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Status:     %s\n", GoalStatusBadge(s.Goal.Status)))
	b.WriteString(fmt.Sprintf("Tasks:      %d total, %d done, %d anchored\n",
		s.TotalTasks, s.CompletedTasks, s.AnchoredTasks))
	b.WriteString(fmt.Sprintf("Remaining:  %.0fh at %.0fh/week\n",
		s.RemainingHours, s.Goal.WeeklyBudgetHours))

	if s.ProjectedFinish == nil {
		b.WriteString(Dim("No projection: nothing left with an hour estimate.") + "\n")
		return b.String()
	}

	finish := s.ProjectedFinish.Format(dateLayout)
	b.WriteString(fmt.Sprintf("Projected:  %s (%d workday(s))\n", Bold(finish), s.RemainingWorkdays))

	if s.Goal.TargetDate != nil {
		target := s.Goal.TargetDate.Format(dateLayout)
		if s.BehindTarget {
			b.WriteString(StyleRed.Render(fmt.Sprintf("⚠ Behind target %s", target)) + "\n")
		} else {
			b.WriteString(StyleGreen.Render(fmt.Sprintf("On track for target %s", target)) + "\n")
		}
	}
	return b.String()
}
