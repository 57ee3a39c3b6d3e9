package cli

import (
	"fmt"

	"github.com/alexanderramin/izof/internal/cli/formatter"
	"github.com/alexanderramin/izof/internal/importer"
	"github.com/alexanderramin/izof/internal/intelligence"
	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "prompt [file]",
		Short: "Print the analysis prompt without calling the model",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				file = args[0]
			}
			text, err := readAnalyzeInput(cmd, file)
			if err != nil {
				return err
			}
			if err := importer.ValidateInput(text); err != nil {
				return err
			}
			parsed := importer.ParseRecordsWithReport(text)
			if err := importer.ValidateRecords(parsed.Records); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, intelligence.BuildAnalysisPrompt(parsed.Records))
			if skipped := formatter.FormatSkippedLines(parsed.Skipped); skipped != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), skipped)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "input file (- for stdin)")

	return cmd
}
