package cli

import (
	"github.com/spf13/cobra"

	"github.com/jcollado/lodestar/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Goals      service.GoalService
	Milestones service.MilestoneService
	Tasks      service.TaskService
	Planner    service.RescheduleService
	Commits    service.CommitService

	// IsInteractive gates confirmation prompts; non-interactive runs need
	// --yes to apply plans.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "lodestar" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lodestar",
		Short: "Goal planner with a self-rescheduling timeline",
	}

	root.AddCommand(
		newGoalCmd(app),
		newMilestoneCmd(app),
		newTaskCmd(app),
		newTimelineCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
