package formatter

import (
	"fmt"
	"strings"

	"github.com/jcollado/lodestar/internal/contract"
	"github.com/jcollado/lodestar/internal/domain"
)

// FormatReschedulePreview renders a computed reschedule as an old-to-new date
// diff, with a conflict banner when the wave ran into an anchored task.
// current maps task IDs to their stored state.
func FormatReschedulePreview(resp *contract.RescheduleResponse, current map[string]domain.Task) string {
	var b strings.Builder
	b.WriteString(Header("proposed plan"))
	b.WriteString("\n")
	b.WriteString(planDiffTable(resp.UpdatedTasks, current))

	if resp.TimeShiftInDays != 0 {
		b.WriteString(fmt.Sprintf("\nShift: %s\n", Bold(fmt.Sprintf("%+d day(s)", resp.TimeShiftInDays))))
	}
	if resp.ConflictInfo != nil {
		b.WriteString("\n" + StyleRed.Render(fmt.Sprintf(
			"⚠ Conflict: collides with anchored task %q (needs %d day(s) of compression)",
			resp.ConflictInfo.AnchoredTaskTitle, resp.ConflictInfo.CompressionNeeded)) + "\n")
	}
	return b.String()
}

// FormatDeletePreview renders a delete-and-refactor plan: the doomed task,
// the tasks pulling forward, and any structural warnings.
func FormatDeletePreview(resp *contract.DeleteRefactorResponse, current map[string]domain.Task) string {
	var b strings.Builder
	b.WriteString(Header("delete and refactor"))
	b.WriteString("\n")

	if doomed, ok := current[resp.TaskIDToDelete]; ok {
		b.WriteString(fmt.Sprintf("Delete: %s\n", StyleRed.Render(doomed.Title)))
	}
	if len(resp.UpdatedTasks) > 0 {
		b.WriteString("\n")
		b.WriteString(planDiffTable(resp.UpdatedTasks, current))
	}
	b.WriteString(fmt.Sprintf("\nTime saved: %s\n", Bold(fmt.Sprintf("%d day(s)", resp.TimeSavedInDays))))

	for _, issue := range resp.DependencyIssues {
		b.WriteString(StyleYellow.Render("⚠ "+issue) + "\n")
	}
	return b.String()
}

func planDiffTable(updates []contract.TaskUpdate, current map[string]domain.Task) string {
	rows := make([][]string, 0, len(updates))
	for _, u := range updates {
		title := shortID(u.TaskID)
		oldStart, oldEnd := Dim("—"), Dim("—")
		if t, ok := current[u.TaskID]; ok {
			title = t.Title
			oldStart = FormatDate(t.StartDate)
			oldEnd = FormatDate(t.EndDate)
		}
		rows = append(rows, []string{
			title,
			fmt.Sprintf("%s → %s", oldStart, StyleGreen.Render(u.NewStartDate.Format(dateLayout))),
			fmt.Sprintf("%s → %s", oldEnd, StyleGreen.Render(u.NewEndDate.Format(dateLayout))),
		})
	}
	return RenderTable([]string{"TASK", "START", "END"}, rows)
}
