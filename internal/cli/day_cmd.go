package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/daymark/internal/cli/formatter"
	"github.com/alexanderramin/daymark/internal/contract"
	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	var date, filter, search string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the trackers due on a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseFilterMode(filter)
			if err != nil {
				return err
			}

			viewDate, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			// The today mode always views the current date, whatever --date says.
			if mode == domain.FilterToday {
				viewDate = time.Now()
			}

			resp, err := app.Overview.Overview(context.Background(), contract.OverviewRequest{
				Date:   viewDate,
				Mode:   mode,
				Search: search,
			})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatOverview(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to view (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&filter, "filter", string(domain.FilterAll), "Filter mode (all|today|completed|uncompleted)")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive name substring")

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completion statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Stats.Statistics(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatStatistics(view))
			return nil
		},
	}
}
