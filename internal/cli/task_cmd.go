package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcollado/lodestar/internal/cli/formatter"
	"github.com/jcollado/lodestar/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskAnchorCmd(app),
		newTaskUnanchorCmd(app),
		newTaskMoveCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var goal, title, milestone, start string
	var hours float64
	var anchored bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, goal)
			if err != nil {
				return err
			}

			t := &domain.Task{GoalID: goalID, Title: title, IsAnchored: anchored}
			if start != "" {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				t.StartDate = &startDate
			}
			if cmd.Flags().Changed("hours") {
				t.DurationHours = &hours
			}
			if milestone != "" {
				t.MilestoneID = &milestone
			}

			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}
			fmt.Printf("Created task %s (%s)\n", t.Title, t.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Goal ID or title")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated effort in hours")
	cmd.Flags().StringVar(&milestone, "milestone", "", "Milestone ID")
	cmd.Flags().BoolVar(&anchored, "anchor", false, "Pin the task to its dates")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var goal string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a goal's tasks in timeline order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, goal)
			if err != nil {
				return err
			}
			g, err := app.Goals.GetByID(ctx, goalID)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByGoal(ctx, goalID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatTimeline(g, tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Goal ID or title")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	var goal string

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskInGoal(ctx, app, goal, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.MarkCompleted(ctx, taskID); err != nil {
				return err
			}
			fmt.Printf("Completed task %s\n", taskID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Goal ID or title")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func newTaskAnchorCmd(app *App) *cobra.Command {
	var goal string

	cmd := &cobra.Command{
		Use:   "anchor ID",
		Short: "Pin a task so rescheduling never moves it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskInGoal(ctx, app, goal, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.SetAnchored(ctx, taskID, true); err != nil {
				return err
			}
			fmt.Printf("Anchored task %s\n", taskID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Goal ID or title")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func newTaskUnanchorCmd(app *App) *cobra.Command {
	var goal string

	cmd := &cobra.Command{
		Use:   "unanchor ID",
		Short: "Release a pinned task back to the movable timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskInGoal(ctx, app, goal, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.SetAnchored(ctx, taskID, false); err != nil {
				return err
			}
			fmt.Printf("Unanchored task %s\n", taskID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Goal ID or title")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func resolveTaskInGoal(ctx context.Context, app *App, goal, task string) (string, error) {
	goalID, err := resolveGoalID(ctx, app, goal)
	if err != nil {
		return "", err
	}
	return resolveTaskID(ctx, app, goalID, task)
}

// currentTaskMap snapshots a goal's tasks by ID for plan previews.
func currentTaskMap(ctx context.Context, app *App, goalID string) (map[string]domain.Task, error) {
	tasks, err := app.Tasks.ListByGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	m := make(map[string]domain.Task, len(tasks))
	for _, t := range tasks {
		m[t.ID] = t
	}
	return m, nil
}

// confirmApply decides whether a previewed plan gets committed: --yes always
// applies, interactive terminals prompt, and everything else leaves the plan
// unapplied with a hint.
func confirmApply(app *App, yes bool, prompt string) (bool, error) {
	if yes {
		return true, nil
	}
	if !app.interactive() {
		fmt.Println(formatter.Dim("Plan not applied. Re-run with --yes to apply."))
		return false, nil
	}
	var apply bool
	if err := confirmForm(prompt, &apply).Run(); err != nil {
		return false, err
	}
	return apply, nil
}
