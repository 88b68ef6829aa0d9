package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse days interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("browse requires an interactive terminal")
			}

			p := tea.NewProgram(newBrowseModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
