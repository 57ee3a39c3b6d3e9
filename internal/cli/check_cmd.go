package cli

import (
	"fmt"

	"github.com/alexanderramin/izof/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the configured model is reachable",
		Long: `Check resolves the provider, model and credential from flags, environment
and config files, then asks the backend whether it is reachable. No prompt
is sent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "제공자: %s\n", a.Config.Provider)
			fmt.Fprintf(out, "모델:   %s\n", a.Config.EffectiveModel())

			if err := a.Analysis.CheckBackend(cmd.Context(), ""); err != nil {
				fmt.Fprintln(out, "상태:   "+formatter.Error(err))
				return err
			}
			fmt.Fprintln(out, "상태:   "+formatter.StyleGreen.Render("✔ 사용 가능"))
			return nil
		},
	}
}
