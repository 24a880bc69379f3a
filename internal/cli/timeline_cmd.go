package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jcollado/lodestar/internal/cli/formatter"
)

func newTimelineCmd(app *App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "timeline GOAL",
		Short: "Show a goal's timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			goal, err := app.Goals.GetByID(ctx, goalID)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByGoal(ctx, goalID)
			if err != nil {
				return err
			}

			content := formatter.FormatTimeline(goal, tasks)
			if !interactive || !app.interactive() {
				fmt.Printf("%s\n", content)
				return nil
			}

			p := tea.NewProgram(newTimelineModel(content), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Scrollable full-screen view")

	return cmd
}
