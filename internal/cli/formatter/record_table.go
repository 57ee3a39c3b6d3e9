package formatter

import (
	"fmt"

	"github.com/alexanderramin/izof/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Record table columns.
const (
	colLabel = iota
	colRequired
	colCurrent
	colGap
)

var recordTableHeaders = []string{"항목", "필요", "현재", "차이"}

// FormatRecordTable renders the parsed records with their scores and gap
// inside a rounded border. Score columns are right-aligned and colored by
// kind.
func FormatRecordTable(records []domain.Record) string {
	if len(records) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Label,
			fmt.Sprintf("%d", r.Required),
			fmt.Sprintf("%d", r.Current),
			GapIndicator(r.Gap()),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers(recordTableHeaders...).
		Rows(rows...).
		StyleFunc(recordCellStyle)
	return t.Render() + "\n"
}

func recordCellStyle(row, col int) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if row == table.HeaderRow {
		return s.Inherit(StyleHeader)
	}
	switch col {
	case colRequired:
		return s.Inherit(StyleRequired).Align(lipgloss.Right)
	case colCurrent:
		return s.Inherit(StyleCurrent).Align(lipgloss.Right)
	case colGap:
		return s.Align(lipgloss.Right)
	}
	return s
}
