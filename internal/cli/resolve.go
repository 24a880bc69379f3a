package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveGoalID accepts a full goal ID, a unique ID prefix, or an exact
// title (case-insensitive).
func resolveGoalID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("goal ID is required")
	}

	goals, err := app.Goals.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, g := range goals {
		if g.ID == input || strings.EqualFold(g.Title, input) {
			return g.ID, nil
		}
	}

	var matches []string
	for _, g := range goals {
		if strings.HasPrefix(g.ID, input) {
			matches = append(matches, g.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("goal not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("goal ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTaskID accepts a full task ID or a unique prefix, searching within
// the given goal.
func resolveTaskID(ctx context.Context, app *App, goalID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.ListByGoal(ctx, goalID)
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.ID == input || strings.EqualFold(t.Title, input) {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found in goal: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
