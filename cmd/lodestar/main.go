package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/jcollado/lodestar/internal/cli"
	"github.com/jcollado/lodestar/internal/config"
	"github.com/jcollado/lodestar/internal/db"
	"github.com/jcollado/lodestar/internal/repository"
	"github.com/jcollado/lodestar/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.NoColor {
		// Respected by the terminal styling stack during profile detection.
		os.Setenv("NO_COLOR", "1")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	goalRepo := repository.NewSQLiteGoalRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("LODESTAR_DEBUG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Goals:      service.NewGoalService(goalRepo, taskRepo, cfg.DefaultWeeklyBudgetHours),
		Milestones: service.NewMilestoneService(milestoneRepo, goalRepo),
		Tasks:      service.NewTaskService(taskRepo, goalRepo),
		Planner:    service.NewRescheduleService(goalRepo, taskRepo, observer),
		Commits:    service.NewCommitService(uow, cfg.LockDir, observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
