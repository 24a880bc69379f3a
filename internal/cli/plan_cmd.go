package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcollado/lodestar/internal/cli/formatter"
	"github.com/jcollado/lodestar/internal/contract"
)

func newTaskMoveCmd(app *App) *cobra.Command {
	var goal string
	var yes bool

	cmd := &cobra.Command{
		Use:   "move ID DATE",
		Short: "Move a task and ripple the change through the timeline",
		Long: `Move a task to a new start date. Downstream tasks shift by the same
number of days until the first anchored task; anchored tasks never move.
The computed plan is previewed and only applied on confirmation.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			newStart, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[1], err)
			}
			taskID, err := resolveTaskInGoal(ctx, app, goal, args[0])
			if err != nil {
				return err
			}

			resp, err := app.Planner.Reschedule(ctx, contract.RescheduleRequest{
				TaskID:       taskID,
				NewStartDate: newStart,
			})
			if err != nil {
				return err
			}

			current, err := currentTaskMap(ctx, app, resp.GoalID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatReschedulePreview(resp, current))

			prompt := "Apply this plan?"
			if resp.ConflictInfo != nil {
				prompt = fmt.Sprintf("Apply anyway? The wave collides with %q.",
					resp.ConflictInfo.AnchoredTaskTitle)
			}
			apply, err := confirmApply(app, yes, prompt)
			if err != nil || !apply {
				return err
			}

			if err := app.Commits.Commit(ctx, contract.CommitRequest{
				GoalID:        resp.GoalID,
				GoalVersion:   resp.GoalVersion,
				TasksToUpdate: resp.UpdatedTasks,
			}); err != nil {
				return err
			}
			fmt.Printf("Applied: %d task(s) rescheduled.\n", len(resp.UpdatedTasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Goal ID or title")
	cmd.Flags().BoolVar(&yes, "yes", false, "Apply without prompting")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var goal string
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task and pull the timeline forward",
		Long: `Delete a task and close the gap it leaves: movable downstream tasks
pull forward by the deleted task's span. Anchored tasks keep their dates, so
days freed right before an anchor are absorbed, not saved. The computed plan
is previewed and only applied on confirmation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			taskID, err := resolveTaskInGoal(ctx, app, goal, args[0])
			if err != nil {
				return err
			}

			resp, err := app.Planner.DeleteAndRefactor(ctx, contract.DeleteRefactorRequest{
				TaskIDToDelete: taskID,
			})
			if err != nil {
				return err
			}

			current, err := currentTaskMap(ctx, app, resp.GoalID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatDeletePreview(resp, current))

			apply, err := confirmApply(app, yes, "Delete and refactor?")
			if err != nil || !apply {
				return err
			}

			if err := app.Commits.Commit(ctx, contract.CommitRequest{
				GoalID:         resp.GoalID,
				GoalVersion:    resp.GoalVersion,
				TasksToUpdate:  resp.UpdatedTasks,
				TaskIDToDelete: resp.TaskIDToDelete,
			}); err != nil {
				return err
			}
			fmt.Printf("Deleted. %d day(s) saved, %d task(s) pulled forward.\n",
				resp.TimeSavedInDays, len(resp.UpdatedTasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Goal ID or title")
	cmd.Flags().BoolVar(&yes, "yes", false, "Apply without prompting")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}
