package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/horizon/internal/cli"
	"github.com/alexanderramin/horizon/internal/db"
	"github.com/alexanderramin/horizon/internal/repository"
	"github.com/alexanderramin/horizon/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.horizon/horizon.db
	dbPath := os.Getenv("HORIZON_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".horizon", "horizon.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	phaseRepo := repository.NewSQLitePhaseRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("HORIZON_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo, phaseRepo),
		Phases:   service.NewPhaseService(phaseRepo, projectRepo),
		Holidays: service.NewHolidayService(holidayRepo),
		Schedule: service.NewScheduleService(scheduleRepo, uow),
		Events:   service.NewEventService(eventRepo, projectRepo),
		Forecast: service.NewForecastService(projectRepo, phaseRepo, holidayRepo, scheduleRepo, eventRepo, observer),
	}

	// Detect interactive terminal for huh-based forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
