package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/izof/internal/chart"
	"github.com/alexanderramin/izof/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Chart series colors, shared with the PNG renderer.
var (
	ColorRequired = lipgloss.Color(chart.ColorRequired)
	ColorCurrent  = lipgloss.Color(chart.ColorCurrent)
)

// Predefined lipgloss styles.
var (
	StyleGreen    = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow   = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed      = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue     = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple   = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim      = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg       = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold     = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleRequired = lipgloss.NewStyle().Foreground(ColorRequired)
	StyleCurrent  = lipgloss.NewStyle().Foreground(ColorCurrent)
)

// ScoreStyle returns the series style for a score kind.
func ScoreStyle(kind domain.ScoreKind) lipgloss.Style {
	if kind == domain.ScoreRequired {
		return StyleRequired
	}
	return StyleCurrent
}

// GapIndicator renders the distance between current and required scores,
// e.g. "▼ -2". Large shortfalls are red, small ones yellow.
func GapIndicator(gap int) string {
	switch {
	case gap == 0:
		return StyleGreen.Render("● 0")
	case gap > 0:
		return StyleBlue.Render(fmt.Sprintf("▲ +%d", gap))
	case gap <= -3:
		return StyleRed.Render(fmt.Sprintf("▼ %d", gap))
	default:
		return StyleYellow.Render(fmt.Sprintf("▼ %d", gap))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Error renders an inline error line.
func Error(err error) string {
	return StyleRed.Render("✖ " + err.Error())
}
