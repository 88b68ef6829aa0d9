package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/daymark/internal/cli/formatter"
	"github.com/alexanderramin/daymark/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// daymarkHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func daymarkHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// weekdayOptions lists all weekdays in Monday-first order for multi-select.
func weekdayOptions() []huh.Option[domain.Weekday] {
	opts := make([]huh.Option[domain.Weekday], 0, 7)
	for d := domain.Monday; d <= domain.Sunday; d++ {
		opts = append(opts, huh.NewOption(d.String(), d))
	}
	return opts
}

// colorOptions offers the palette colors by name.
func colorOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Green", string(formatter.ColorGreen)),
		huh.NewOption("Yellow", string(formatter.ColorYellow)),
		huh.NewOption("Red", string(formatter.ColorRed)),
		huh.NewOption("Blue", string(formatter.ColorBlue)),
		huh.NewOption("Purple", string(formatter.ColorPurple)),
	}
}

// runTrackerWizard walks through creating a tracker interactively.
func runTrackerWizard(ctx context.Context, app *App) error {
	var (
		name     string
		category = "General"
		emoji    string
		color    = string(formatter.ColorGreen)
		days     []domain.Weekday
		pin      bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Morning run").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Category").
				Placeholder("General").
				Value(&category).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == domain.PinnedCategoryTitle {
						return fmt.Errorf("%q is reserved", domain.PinnedCategoryTitle)
					}
					return nil
				}),
			huh.NewInput().
				Title("Emoji").
				Placeholder("🏃").
				Value(&emoji),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions()...).
				Value(&color),
			huh.NewMultiSelect[domain.Weekday]().
				Title("Scheduled Days").
				Description("Leave empty for a one-off event, due every day").
				Options(weekdayOptions()...).
				Value(&days),
			huh.NewConfirm().
				Title("Pin to top of day view?").
				Affirmative("Yes").
				Negative("No").
				Value(&pin),
		),
	).WithTheme(daymarkHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	tr := &domain.Tracker{
		Name:     name,
		Category: category,
		Emoji:    emoji,
		Color:    color,
		Schedule: domain.Schedule(days).Normalized(),
		IsPinned: pin,
	}
	if err := app.Trackers.Create(ctx, tr); err != nil {
		return err
	}

	fmt.Printf("Created tracker %s in %s\n", tr.Name, tr.Category)
	return nil
}
