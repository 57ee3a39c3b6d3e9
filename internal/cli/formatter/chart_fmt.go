package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/izof/internal/chart"
	"github.com/alexanderramin/izof/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	chartIndent      = "  "
	minChartBarWidth = 10
	maxChartBarWidth = 44
)

// FormatComparisonChart renders the grouped required/current bars for the
// terminal. Each group is a label line followed by one bar per score kind,
// with the value printed at the end of the bar. width is the total
// available width; zero means 80 columns.
func FormatComparisonChart(c chart.Comparison, width int) string {
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(Header(c.Title))
	b.WriteString("\n")
	b.WriteString(chartLegend())
	b.WriteString("\n")

	if c.Empty() {
		b.WriteString("\n" + Dim("표시할 데이터가 없습니다.") + "\n")
		return b.String()
	}

	kindWidth := lipgloss.Width(domain.ScoreRequired.DisplayName())
	barWidth := width - len(chartIndent)*2 - kindWidth - 12
	barWidth = max(minChartBarWidth, min(barWidth, maxChartBarWidth))

	for _, g := range c.Groups {
		b.WriteString("\n")
		b.WriteString(chartIndent + Bold(TruncLabel(g.Label, width-len(chartIndent))) + "\n")
		for _, bar := range g.Bars {
			style := ScoreStyle(bar.Kind)
			fmt.Fprintf(&b, "%s%s %s %s\n",
				chartIndent+chartIndent,
				PadRight(Dim(bar.Kind.DisplayName()), kindWidth),
				RenderScoreBar(bar.Value, c.YMax, barWidth, style),
				style.Render(fmt.Sprintf("%d", bar.Value)))
		}
	}
	b.WriteString("\n" + Dim(fmt.Sprintf("%s 축: %d–%d", chartIndent, c.YMin, c.YMax)) + "\n")

	return b.String()
}

func chartLegend() string {
	return StyleRequired.Render("■") + " " + domain.ScoreRequired.DisplayName() +
		"   " + StyleCurrent.Render("■") + " " + domain.ScoreCurrent.DisplayName()
}
