package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/jcollado/lodestar/internal/domain"
)

const dateLayout = "2006-01-02"

// FormatDate renders a nullable date, dimming the placeholder for unset ones.
func FormatDate(d *time.Time) string {
	if d == nil {
		return Dim("—")
	}
	return d.Format(dateLayout)
}

// FormatTimeline renders a goal's tasks as a dated list in timeline order.
func FormatTimeline(goal *domain.Goal, tasks []domain.Task) string {
	var b strings.Builder
	b.WriteString(Header(goal.Title))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(Dim("No tasks yet.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		hours := Dim("—")
		if t.DurationHours != nil {
			hours = fmt.Sprintf("%.0fh", *t.DurationHours)
		}
		rows = append(rows, []string{
			TaskMarker(t),
			shortID(t.ID),
			t.Title,
			FormatDate(t.StartDate),
			FormatDate(t.EndDate),
			hours,
		})
	}
	b.WriteString(RenderTable(
		[]string{"", "ID", "TASK", "START", "END", "EST"},
		rows,
	))
	return b.String()
}

// FormatGoalList renders the goal overview table.
func FormatGoalList(goals []*domain.Goal) string {
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		target := Dim("—")
		if g.TargetDate != nil {
			target = g.TargetDate.Format(dateLayout)
		}
		rows = append(rows, []string{
			shortID(g.ID),
			g.Title,
			GoalStatusBadge(g.Status),
			fmt.Sprintf("%.0fh/wk", g.WeeklyBudgetHours),
			target,
		})
	}
	return RenderTable([]string{"ID", "GOAL", "STATUS", "BUDGET", "TARGET"}, rows)
}

// shortID keeps list output readable; full IDs still resolve everywhere.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
