package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive analyzer",
		Long: `Open the interactive analyzer. Paste or type records, press ctrl+s to
analyze, then d to show the comparison chart and the detail report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, a)
		},
	}
}

func runShell(cmd *cobra.Command, a *App) error {
	m := newShellModel(cmd.Context(), a)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	_, err := p.Run()
	return err
}
