package intelligence

import "strings"

// FallbackSummary replaces the summary when the model ignored the
// requested section layout. The whole response is then kept as detail.
const FallbackSummary = "⚠️ AI 응답에서 요약 보고서를 찾지 못했습니다. '상세 리포트 보기'에서 전체 분석 내용을 확인하세요."

// Report is a model response divided into its summary and detail parts.
type Report struct {
	Summary string
	Detail  string

	// Structured is false when the detail marker was missing and the
	// fallback summary was used.
	Structured bool
}

// SplitReport divides a response at the first DetailMarker. Text before
// the marker, minus any SummaryMarker, becomes the summary; the marker and
// everything after it become the detail. Without the marker nothing is
// dropped: detail is the raw text and summary is FallbackSummary.
func SplitReport(text string) Report {
	idx := strings.Index(text, DetailMarker)
	if idx < 0 {
		return Report{Summary: FallbackSummary, Detail: text}
	}
	summary := strings.ReplaceAll(text[:idx], SummaryMarker, "")
	return Report{
		Summary:    strings.TrimSpace(summary),
		Detail:     text[idx:],
		Structured: true,
	}
}
