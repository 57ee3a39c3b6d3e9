package formatter

import (
	"fmt"
	"strings"
)

// FormatShellWelcome renders the banner shown above the input editor.
func FormatShellWelcome() string {
	var b strings.Builder

	b.WriteString(StylePurple.Render("  🧠 IZOF 멘탈 분석기") + "\n")
	b.WriteString(Dim("  IZOF(Individual Zones of Optimal Functioning) 이론을 바탕으로 멘탈 상태를 분석하고 맞춤형 훈련법을 제안합니다.") + "\n")

	return b.String()
}

// helpCategory groups key bindings under a section header for the help display.
type helpCategory struct {
	title    string
	commands [][]string
}

// renderHelpCategory renders a single category section with header and rows.
func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			PadRight(StyleGreen.Render(c[0]), 12),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatShellHelp renders the usage steps and the key reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "사용 방법",
			commands: [][]string{
				{"1.", "API 키를 설정하세요 (ctrl+k 또는 IZOF_API_KEY)."},
				{"2.", "검사 결과를 '항목 필요점수 현재점수' 형식으로 한 줄씩 입력하세요."},
				{"3.", "ctrl+s 로 분석을 실행하고 요약 보고서를 확인하세요."},
				{"4.", "d 를 눌러 점수 비교 그래프와 상세 보고서를 확인하세요."},
			},
		},
		{
			title: "입력",
			commands: [][]string{
				{"ctrl+s", "분석하기"},
				{"ctrl+l", "예시 데이터 불러오기"},
				{"ctrl+r", "입력과 결과 초기화"},
				{"ctrl+k", "API 키 입력"},
				{"tab", "입력창 / 결과 창 전환"},
			},
		},
		{
			title: "결과",
			commands: [][]string{
				{"d", "상세 리포트 보기 / 숨기기"},
				{"↑/↓", "스크롤"},
			},
		},
		{
			title: "기타",
			commands: [][]string{
				{"?", "도움말 열기 / 닫기"},
				{"esc", "종료"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	return b.String()
}
