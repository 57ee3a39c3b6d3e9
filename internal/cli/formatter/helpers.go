package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// TruncLabel shortens a label to at most width terminal cells, appending
// "…" when cut. Double-width runes count as two cells.
func TruncLabel(label string, width int) string {
	if width <= 0 || lipgloss.Width(label) <= width {
		return label
	}
	var b strings.Builder
	used := 0
	for _, r := range label {
		w := lipgloss.Width(string(r))
		if used+w > width-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + "…"
}

// PadRight pads s with spaces to width terminal cells.
func PadRight(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// FormatSkippedLines renders the list of input lines the parser dropped.
func FormatSkippedLines(lines []int) string {
	if len(lines) == 0 {
		return ""
	}
	nums := make([]string, len(lines))
	for i, n := range lines {
		nums[i] = fmt.Sprintf("%d", n)
	}
	return Dim(fmt.Sprintf("형식이 맞지 않아 건너뛴 줄: %s", strings.Join(nums, ", ")))
}
