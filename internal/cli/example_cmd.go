package cli

import (
	"fmt"

	"github.com/alexanderramin/izof/internal/importer"
	"github.com/spf13/cobra"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print sample input",
		Long:  "Print the golf sample input. Pipe it into 'izof analyze' to try the analyzer.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), importer.ExampleInput)
			return err
		},
	}
}
