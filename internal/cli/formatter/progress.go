package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderScoreBar renders value on a 0..max scale as a bar of width cells,
// e.g. "██████░░░░", using style for the filled part.
func RenderScoreBar(value, max, width int, style lipgloss.Style) string {
	if width < 2 {
		width = 2
	}
	if max <= 0 {
		max = 1
	}
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}

	filled := int(float64(value) / float64(max) * float64(width))
	if value > 0 && filled == 0 {
		filled = 1
	}
	empty := width - filled

	return style.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, empty))
}
