package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/daymark/internal/cli"
	"github.com/alexanderramin/daymark/internal/db"
	"github.com/alexanderramin/daymark/internal/repository"
	"github.com/alexanderramin/daymark/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.daymark/daymark.db
	dbPath := os.Getenv("DAYMARK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".daymark", "daymark.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	trackerRepo := repository.NewSQLiteTrackerRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	recordRepo := repository.NewSQLiteRecordRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	trackerSvc := service.NewTrackerService(trackerRepo, categoryRepo, uow)

	app := &cli.App{
		Trackers: trackerSvc,
		Records:  service.NewRecordService(recordRepo, trackerRepo),
		Overview: service.NewOverviewService(trackerSvc, recordRepo),
		Stats:    service.NewStatisticsService(trackerRepo, recordRepo),
	}

	// Detect interactive terminal for the wizard and the browse TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
