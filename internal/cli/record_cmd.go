package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "check TRACKER",
		Short: "Mark a tracker complete for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTrackerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			if err := app.Records.Check(ctx, id, day); err != nil {
				return err
			}
			fmt.Printf("Checked %s for %s\n", args[0], day.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to check (YYYY-MM-DD, default today)")

	return cmd
}

func newUncheckCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "uncheck TRACKER",
		Short: "Remove a tracker's completion for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTrackerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			if err := app.Records.Uncheck(ctx, id, day); err != nil {
				return err
			}
			fmt.Printf("Unchecked %s for %s\n", args[0], day.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to uncheck (YYYY-MM-DD, default today)")

	return cmd
}
