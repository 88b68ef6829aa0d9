package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/daymark/internal/cli/formatter"
	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/spf13/cobra"
)

func newTrackerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Manage trackers",
	}

	cmd.AddCommand(
		newTrackerAddCmd(app),
		newTrackerListCmd(app),
		newTrackerInspectCmd(app),
		newTrackerUpdateCmd(app),
		newTrackerPinCmd(app, true),
		newTrackerPinCmd(app, false),
		newTrackerRemoveCmd(app),
	)

	return cmd
}

func newTrackerAddCmd(app *App) *cobra.Command {
	var name, category, emoji, color string
	var on []string
	var pin bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// No flags on an interactive terminal: fall back to the wizard.
			if !cmd.Flags().Changed("name") && app.IsInteractive != nil && app.IsInteractive() {
				return runTrackerWizard(ctx, app)
			}

			schedule, err := parseScheduleFlag(on)
			if err != nil {
				return err
			}

			tr := &domain.Tracker{
				Name:     name,
				Category: category,
				Emoji:    emoji,
				Color:    color,
				Schedule: schedule,
				IsPinned: pin,
			}
			if err := app.Trackers.Create(ctx, tr); err != nil {
				return err
			}

			fmt.Printf("Created tracker %s in %s\n", tr.Name, tr.Category)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Tracker name")
	cmd.Flags().StringVar(&category, "category", "General", "Category title")
	cmd.Flags().StringVar(&emoji, "emoji", "", "Display emoji")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex, e.g. #8ec07c)")
	cmd.Flags().StringSliceVar(&on, "on", nil, "Scheduled weekdays (mon..sun); omit for a one-off event")
	cmd.Flags().BoolVar(&pin, "pin", false, "Pin the tracker")

	return cmd
}

func newTrackerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all trackers grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.Trackers.ListCategories(context.Background())
			if err != nil {
				return err
			}

			if len(categories) == 0 {
				fmt.Println("No trackers yet. Try `daymark tracker add`.")
				return nil
			}

			headers := []string{"ID", "NAME", "CATEGORY", "SCHEDULE", "PINNED"}
			var rows [][]string
			for _, cat := range categories {
				for _, tr := range cat.Trackers {
					rows = append(rows, []string{
						formatter.TruncID(tr.ID),
						formatter.Bold(tr.Name),
						tr.Category,
						formatter.FormatSchedule(tr.Schedule),
						formatter.PinBadge(tr.IsPinned),
					})
				}
			}

			fmt.Printf("%s\n", formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newTrackerInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect TRACKER",
		Short: "Show tracker details and recent completions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTrackerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			tracker, err := app.Trackers.GetByID(ctx, id)
			if err != nil {
				return err
			}
			records, err := app.Records.ListByTracker(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatTrackerInspect(tracker, records))
			return nil
		},
	}
}

func newTrackerUpdateCmd(app *App) *cobra.Command {
	var name, category, emoji, color string
	var on []string

	cmd := &cobra.Command{
		Use:   "update TRACKER",
		Short: "Update a tracker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTrackerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			tr, err := app.Trackers.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				tr.Name = name
			}
			if cmd.Flags().Changed("category") {
				tr.Category = category
			}
			if cmd.Flags().Changed("emoji") {
				tr.Emoji = emoji
			}
			if cmd.Flags().Changed("color") {
				tr.Color = color
			}
			if cmd.Flags().Changed("on") {
				schedule, err := parseScheduleFlag(on)
				if err != nil {
					return err
				}
				tr.Schedule = schedule
			}

			if err := app.Trackers.Update(ctx, tr); err != nil {
				return err
			}

			fmt.Printf("Updated tracker %s\n", tr.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Tracker name")
	cmd.Flags().StringVar(&category, "category", "", "Category title")
	cmd.Flags().StringVar(&emoji, "emoji", "", "Display emoji")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")
	cmd.Flags().StringSliceVar(&on, "on", nil, "Scheduled weekdays (mon..sun); pass an empty value to clear")

	return cmd
}

func newTrackerPinCmd(app *App, pin bool) *cobra.Command {
	use, short, verb := "pin TRACKER", "Pin a tracker to the top of the day view", "Pinned"
	if !pin {
		use, short, verb = "unpin TRACKER", "Unpin a tracker", "Unpinned"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTrackerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Trackers.SetPinned(ctx, id, pin); err != nil {
				return err
			}
			fmt.Printf("%s tracker %s\n", verb, args[0])
			return nil
		},
	}
}

func newTrackerRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove TRACKER",
		Short: "Remove a tracker and its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTrackerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Trackers.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed tracker %s\n", args[0])
			return nil
		},
	}
}

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage tracker categories",
	}

	cmd.AddCommand(
		newCategoryListCmd(app),
		newCategoryRenameCmd(app),
	)

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.Trackers.ListCategories(context.Background())
			if err != nil {
				return err
			}

			if len(categories) == 0 {
				fmt.Println("No categories yet.")
				return nil
			}

			headers := []string{"CATEGORY", "TRACKERS"}
			rows := make([][]string, 0, len(categories))
			for _, cat := range categories {
				rows = append(rows, []string{
					formatter.Bold(cat.Title),
					fmt.Sprintf("%d", len(cat.Trackers)),
				})
			}

			fmt.Printf("%s\n", formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newCategoryRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename a category, merging into NEW if it already exists",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Trackers.RenameCategory(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed category %q to %q\n", args[0], args[1])
			return nil
		},
	}
}
