package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcollado/lodestar/internal/cli/formatter"
	"github.com/jcollado/lodestar/internal/contract"
	"github.com/jcollado/lodestar/internal/domain"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalShowCmd(app),
		newGoalStatusCmd(app),
		newGoalUpdateCmd(app),
		newGoalArchiveCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var title, description, target string
	var budget float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := &domain.Goal{
				Title:             title,
				Description:       description,
				WeeklyBudgetHours: budget,
			}
			if target != "" {
				targetDate, err := time.Parse("2006-01-02", target)
				if err != nil {
					return fmt.Errorf("invalid target date %q: %w", target, err)
				}
				g.TargetDate = &targetDate
			}

			if err := app.Goals.Create(context.Background(), g); err != nil {
				return err
			}
			fmt.Printf("Created goal %s (%s)\n", g.Title, g.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&description, "desc", "", "Goal description")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Weekly time budget in hours")
	cmd.Flags().StringVar(&target, "target", "", "Target date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Goals.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Println("No goals found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatGoalList(goals))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived goals")

	return cmd
}

func newGoalShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show goal details with its timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
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
			if g.Description != "" {
				fmt.Printf("%s\n", formatter.Dim(g.Description))
			}
			fmt.Printf("Status: %s  Budget: %.0fh/wk\n",
				formatter.GoalStatusBadge(g.Status), g.WeeklyBudgetHours)
			return nil
		},
	}
}

func newGoalStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID",
		Short: "Show remaining effort and projected finish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			status, err := app.Goals.Status(ctx, contract.StatusRequest{GoalID: goalID})
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatGoalStatus(status))
			return nil
		},
	}
}

func newGoalUpdateCmd(app *App) *cobra.Command {
	var title, description, target, status string
	var budget float64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			g, err := app.Goals.GetByID(ctx, goalID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				g.Title = title
			}
			if cmd.Flags().Changed("desc") {
				g.Description = description
			}
			if cmd.Flags().Changed("budget") {
				g.WeeklyBudgetHours = budget
			}
			if cmd.Flags().Changed("target") {
				targetDate, err := time.Parse("2006-01-02", target)
				if err != nil {
					return fmt.Errorf("invalid target date %q: %w", target, err)
				}
				g.TargetDate = &targetDate
			}
			if cmd.Flags().Changed("status") {
				g.Status = domain.GoalStatus(status)
			}

			if err := app.Goals.Update(ctx, g); err != nil {
				return err
			}
			fmt.Printf("Updated goal %s\n", g.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&description, "desc", "", "Goal description")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Weekly time budget in hours")
	cmd.Flags().StringVar(&target, "target", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Goal status (active|paused|done)")

	return cmd
}

func newGoalArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Goals.Archive(ctx, goalID); err != nil {
				return err
			}
			fmt.Printf("Archived goal %s\n", goalID[:8])
			return nil
		},
	}
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a goal and all of its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Goals.Delete(ctx, goalID, force); err != nil {
				return err
			}
			fmt.Printf("Removed goal %s\n", goalID[:8])
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if the goal is not archived")

	return cmd
}
