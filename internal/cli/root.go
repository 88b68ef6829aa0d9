package cli

import (
	"github.com/alexanderramin/daymark/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Trackers service.TrackerService
	Records  service.RecordService
	Overview service.OverviewService
	Stats    service.StatisticsService

	// IsInteractive reports whether stdin is attached to a terminal.
	// Set by main; gates the add wizard and the browse TUI.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "daymark" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "daymark",
		Short: "Daily habit tracker with streak statistics",
	}

	root.AddCommand(
		newTrackerCmd(app),
		newCategoryCmd(app),
		newCheckCmd(app),
		newUncheckCmd(app),
		newDayCmd(app),
		newStatsCmd(app),
		newBrowseCmd(app),
	)

	return root
}
