package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/izof/internal/app"
	"github.com/alexanderramin/izof/internal/chart"
	"github.com/alexanderramin/izof/internal/cli/formatter"
	"github.com/alexanderramin/izof/internal/importer"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	file      string
	detail    bool
	raw       bool
	chartPNG  string
	chartFont string
	width     int
}

func newAnalyzeCmd(a *App) *cobra.Command {
	opts := analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze records from a file or stdin",
		Long: `Analyze IZOF records once and print the summary report.

Records are read from the given file, from --file, or from stdin. Use
--detail to also print the comparison chart and the detail report.`,
		Example: `  izof example | izof analyze
  izof analyze scores.txt --detail --chart-png chart.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.file = args[0]
			}
			return runAnalyze(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "-", "input file (- for stdin)")
	cmd.Flags().BoolVarP(&opts.detail, "detail", "d", false, "also print the chart and the detail report")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "print the model's markdown without rendering")
	cmd.Flags().StringVar(&opts.chartPNG, "chart-png", "", "write the comparison chart as PNG to this path")
	cmd.Flags().StringVar(&opts.chartFont, "chart-font", "", "TrueType font for PNG labels (needed for Hangul)")
	cmd.Flags().IntVar(&opts.width, "width", 80, "output width")

	return cmd
}

func runAnalyze(cmd *cobra.Command, a *App, opts analyzeOptions) error {
	text, err := readAnalyzeInput(cmd, opts.file)
	if err != nil {
		return err
	}

	stop := func() {}
	if isTerminal(cmd.ErrOrStderr()) {
		stop = formatter.StartSpinner(cmd.ErrOrStderr(), formatter.AnalyzingMessage)
	}
	s, err := a.Session.Analyze(cmd.Context(), app.AnalyzeRequest{Text: text})
	stop()
	if err != nil {
		return err
	}

	if opts.detail {
		if s, err = a.Session.ToggleDetail(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatter.FormatAnalysis(s, formatter.ReportOptions{
		Width:      opts.width,
		ShowDetail: s.DetailVisible,
		Raw:        opts.raw,
	}))

	if opts.chartPNG != "" && s.Chart != nil {
		if err := writeChartPNG(opts.chartPNG, opts.chartFont, *s.Chart); err != nil {
			return err
		}
		fmt.Fprintln(out, formatter.Dim("차트를 저장했습니다: "+opts.chartPNG))
	}
	return nil
}

func readAnalyzeInput(cmd *cobra.Command, file string) (string, error) {
	if file == "" || file == "-" {
		return importer.ReadInput(cmd.InOrStdin())
	}
	return importer.LoadInputFile(file)
}

func writeChartPNG(path, fontPath string, c chart.Comparison) error {
	var opts []chart.PNGOption
	if fontPath != "" {
		font, err := chart.LoadFont(fontPath)
		if err != nil {
			return err
		}
		opts = append(opts, chart.WithFont(font))
	}
	return chart.WritePNGFile(path, c, opts...)
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
