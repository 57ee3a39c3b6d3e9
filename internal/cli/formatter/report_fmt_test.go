package formatter

import (
	"testing"

	"github.com/alexanderramin/izof/internal/app"
	"github.com/alexanderramin/izof/internal/chart"
	"github.com/alexanderramin/izof/internal/domain"
	"github.com/alexanderramin/izof/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func readySession(detailVisible bool) app.Session {
	summary := "**드라이버 정확도** 보완이 필요합니다."
	detail := "1. **[종합 평가]**: 골프 선수의 데이터로 보입니다."
	c := chart.Build(testutil.GolfRecords())
	return app.Session{
		Phase:         domain.PhaseReady,
		Records:       testutil.GolfRecords(),
		Summary:       &summary,
		Detail:        &detail,
		DetailVisible: detailVisible,
		Chart:         &c,
	}
}

func TestRenderMarkdown(t *testing.T) {
	got := stripANSI(RenderMarkdown("**굵게** 표시된 텍스트", 60))

	assert.Contains(t, got, "굵게")
	assert.Contains(t, got, "텍스트")
	assert.NotContains(t, got, "**")
}

func TestFormatAnalysis_SummaryOnly(t *testing.T) {
	got := stripANSI(FormatAnalysis(readySession(false), ReportOptions{Width: 80}))

	assert.Contains(t, got, "요약 보고서")
	assert.Contains(t, got, "드라이버 정확도")
	assert.NotContains(t, got, "상세 보고서")
	assert.NotContains(t, got, chart.Title)
}

func TestFormatAnalysis_WithDetail(t *testing.T) {
	got := stripANSI(FormatAnalysis(readySession(true), ReportOptions{Width: 80, ShowDetail: true}))

	assert.Contains(t, got, "요약 보고서")
	assert.Contains(t, got, chart.Title)
	assert.Contains(t, got, "차이")
	assert.Contains(t, got, "상세 보고서")
	assert.Contains(t, got, "골프 선수의 데이터")
}

func TestFormatAnalysis_Raw(t *testing.T) {
	got := stripANSI(FormatAnalysis(readySession(false), ReportOptions{Raw: true}))

	assert.Contains(t, got, "**드라이버 정확도**")
}

func TestFormatAnalysis_HideChart(t *testing.T) {
	got := stripANSI(FormatAnalysis(readySession(true), ReportOptions{ShowDetail: true, HideChart: true}))

	assert.Contains(t, got, "상세 보고서")
	assert.NotContains(t, got, chart.Title)
}

func TestFormatAnalysis_SkippedLines(t *testing.T) {
	s := readySession(false)
	s.Skipped = []int{3}

	got := stripANSI(FormatAnalysis(s, ReportOptions{Raw: true}))

	assert.Contains(t, got, "건너뛴 줄: 3")
}

func TestFormatAnalysis_NoReport(t *testing.T) {
	assert.Empty(t, FormatAnalysis(app.Session{Phase: domain.PhaseIdle}, ReportOptions{}))
}
