package formatter

import (
	"strings"

	"github.com/alexanderramin/izof/internal/app"
	"github.com/charmbracelet/glamour"
)

// MarkdownStyle is the glamour standard style used for reports. The shell
// cannot query the terminal background while it owns stdin, so the style
// is fixed rather than auto-detected.
var MarkdownStyle = "dark"

// ReportOptions controls how an analysis is rendered.
type ReportOptions struct {
	Width      int
	ShowDetail bool
	// Raw prints the model's markdown verbatim instead of rendering it.
	Raw bool
	// HideChart omits the terminal chart from the detail section.
	HideChart bool
}

// RenderMarkdown renders markdown for the terminal. On renderer failure
// the source text is returned unchanged.
func RenderMarkdown(md string, width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(MarkdownStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// FormatSummary renders the summary section.
func FormatSummary(summary string, opts ReportOptions) string {
	return Header("요약 보고서") + "\n" + renderBody(summary, opts) + "\n"
}

// FormatDetail renders the chart and the detail report.
func FormatDetail(s app.Session, opts ReportOptions) string {
	var b strings.Builder
	if !opts.HideChart && s.Chart != nil {
		b.WriteString(FormatComparisonChart(*s.Chart, opts.Width))
		b.WriteString("\n")
	}
	if len(s.Records) > 0 {
		b.WriteString(FormatRecordTable(s.Records))
		b.WriteString("\n")
	}
	b.WriteString(Header("상세 보고서"))
	b.WriteString("\n")
	b.WriteString(renderBody(s.DetailText(), opts))
	b.WriteString("\n")
	return b.String()
}

// FormatAnalysis renders a finished session: summary, then the detail
// section when requested. Sessions without a report render as "".
func FormatAnalysis(s app.Session, opts ReportOptions) string {
	if !s.HasReport() {
		return ""
	}
	var b strings.Builder
	b.WriteString(FormatSummary(s.SummaryText(), opts))
	if skipped := FormatSkippedLines(s.Skipped); skipped != "" {
		b.WriteString(skipped + "\n")
	}
	if opts.ShowDetail {
		b.WriteString("\n")
		b.WriteString(FormatDetail(s, opts))
	}
	return b.String()
}

func renderBody(md string, opts ReportOptions) string {
	if opts.Raw {
		return md
	}
	return RenderMarkdown(md, opts.Width)
}
