package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcollado/lodestar/internal/cli/formatter"
	"github.com/jcollado/lodestar/internal/domain"
)

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Manage milestones",
	}

	cmd.AddCommand(
		newMilestoneAddCmd(app),
		newMilestoneListCmd(app),
		newMilestoneRemoveCmd(app),
	)

	return cmd
}

func newMilestoneAddCmd(app *App) *cobra.Command {
	var goal, title string
	var order int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a milestone to a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, goal)
			if err != nil {
				return err
			}

			m := &domain.Milestone{GoalID: goalID, Title: title, OrderIndex: order}
			if err := app.Milestones.Create(ctx, m); err != nil {
				return err
			}
			fmt.Printf("Created milestone %s (%s)\n", m.Title, m.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Goal ID or title")
	cmd.Flags().StringVar(&title, "title", "", "Milestone title")
	cmd.Flags().IntVar(&order, "order", 0, "Ordering index within the goal")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newMilestoneListCmd(app *App) *cobra.Command {
	var goal string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a goal's milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, goal)
			if err != nil {
				return err
			}
			milestones, err := app.Milestones.ListByGoal(ctx, goalID)
			if err != nil {
				return err
			}
			if len(milestones) == 0 {
				fmt.Println("No milestones found.")
				return nil
			}

			rows := make([][]string, 0, len(milestones))
			for _, m := range milestones {
				rows = append(rows, []string{m.ID[:8], fmt.Sprintf("%d", m.OrderIndex), m.Title})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"ID", "ORDER", "MILESTONE"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Goal ID or title")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func newMilestoneRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a milestone (its tasks stay on the timeline)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Milestones.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed milestone %s\n", args[0])
			return nil
		},
	}
}
