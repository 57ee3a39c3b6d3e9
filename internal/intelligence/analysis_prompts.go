package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/izof/internal/domain"
)

const (
	// SummaryMarker opens the short report section the model is asked to write.
	SummaryMarker = "### [요약 보고서]"

	// DetailMarker opens the long report section. The splitter keys on it.
	DetailMarker = "### [상세 보고서]"
)

// analysisPromptHeader frames the model as an IZOF expert and explains
// the meaning of the two scores.
const analysisPromptHeader = `너는 세계 최고의 스포츠 심리학자이자 IZOF(개인별 최적 수행 상태 영역) 이론 전문가야. 너의 임무는 선수의 데이터를 분석하고 심층적인 맞춤형 보고서를 작성하는 것이다.

### IZOF 이론 핵심:
- '필요 점수'는 해당 선수가 최고의 기량을 발휘하기 위해 필요한 최적의 심리 상태 수준이다.
- '현재 점수'는 선수의 현재 심리 상태 수준이다.
- '필요 점수'와 '현재 점수'가 비슷할수록 최적의 상태(In the Zone)에 가까운 것이고, 차이가 클수록 불안정하거나 제 기량을 발휘하기 어려운 상태다.

### 데이터의 맥락 파악 및 심층 분석:
- 아래 '분석 데이터'의 항목들을 보고, 이것이 일반적인 멘탈 검사인지, 아니면 특정 스포츠(예: 골프, 양궁, 축구, e스포츠 등)에 관련된 검사인지 먼저 파악하라.
- 만약 특정 스포츠가 연상된다면, 반드시 해당 스포츠의 특성을 고려하여 분석의 깊이를 더하라. 예를 들어, '드라이버 정확성'이라는 항목이 있다면 골프 선수에 초점을 맞춰 분석해야 한다.
- 모든 데이터 항목을 종합적으로 고려하되, 가장 중요하고 의미 있는 점들을 선별하여 보고서를 작성하라.`

// analysisPromptInstructions fixes the two-section output layout.
// Both markers must appear verbatim so SplitReport can find them.
var analysisPromptInstructions = `### 보고서 작성 지침 (아래 형식을 반드시 지켜라):
보고서는 반드시 두 개의 섹션으로 나누어 작성하라. 첫 줄은 정확히 "` + SummaryMarker + `" 이어야 하고, 상세 섹션은 정확히 "` + DetailMarker + `" 줄로 시작해야 한다. 두 표시 문구는 글자 하나 바꾸지 말고 그대로 써라.

` + SummaryMarker + `
- 3~5문장으로 선수의 현재 멘탈 상태를 요약하고, 이 데이터가 어떤 종류의 검사(일반 멘탈, 특정 스포츠 등)로 보이는지 한 문장으로 언급하라.
- 가장 큰 강점 1가지와 가장 시급한 보완점 1가지를 한 줄씩 적어라.

` + DetailMarker + `
1.  **[종합 평가 및 맥락 파악]**: 데이터 전반을 기반으로 선수의 현재 멘탈 상태에 대한 총평과 함께, 이 데이터가 어떤 종류의 검사로 보이는지 근거와 함께 설명하라.
2.  **[핵심 강점 분석]**: '현재 점수'가 '필요 점수'에 근접하거나 긍정적인 차이를 보이는 항목들 중에서 **가장 중요하고 의미 있는 강점 2~3가지를 짚어서** 설명하라.
3.  **[핵심 보완점 분석]**: '현재 점수'가 '필요 점수'보다 현저히 낮거나 높은 항목들 중에서 **가장 시급하거나 개선이 필요한 보완점 2~3가지를 짚어서** 설명하라. 점수가 낮은 것뿐만 아니라, 과도하게 높은 것도 문제가 될 수 있다는 점을 반드시 언급해야 한다. (예: 피로도가 필요 이상으로 높음)
4.  **[맞춤형 훈련 제안]**: 위에서 분석한 보완점을 개선하기 위해, 파악된 스포츠나 상황에 맞는 구체적인 멘탈 훈련법 2가지를 제안하라.`

// BuildAnalysisPrompt renders records into the instruction document sent
// to the model. It is deterministic for a given record sequence.
func BuildAnalysisPrompt(records []domain.Record) string {
	var b strings.Builder
	b.WriteString(analysisPromptHeader)
	b.WriteString("\n\n### 분석 데이터:\n")
	b.WriteString(FormatRecordLines(records))
	b.WriteString("\n\n")
	b.WriteString(analysisPromptInstructions)
	b.WriteString("\n")
	return b.String()
}

// FormatRecordLines renders one "- label: 필요 점수 N, 현재 점수 M" line per record.
func FormatRecordLines(records []domain.Record) string {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = fmt.Sprintf("- %s: %s %d, %s %d",
			r.Label,
			domain.ScoreRequired.DisplayName(), r.Required,
			domain.ScoreCurrent.DisplayName(), r.Current)
	}
	return strings.Join(lines, "\n")
}
