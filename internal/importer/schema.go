package importer

import (
	"fmt"
	"io"
	"os"
	"regexp"
)

// CommentPrefix starts a line that is ignored by the parser.
const CommentPrefix = "#"

// recordPattern matches "<label> <required> <current>". The label is
// matched non-greedily so it may contain internal whitespace; the two
// trailing integers bind to the last two numeric tokens on the line.
var recordPattern = regexp.MustCompile(`^\s*(.+?)\s+(\d+)\s+(\d+)\s*$`)

// ExampleInput is the sample shown to users who have not typed anything yet.
const ExampleInput = `# 아래 형식에 맞춰 데이터를 입력하세요.
# (항목 필요점수 현재점수)
# 예시 (골프):
드라이버정확도 8 6
퍼팅자신감 9 7
코스매니지먼트 8 8
긴장조절 7 5
승부욕 8 9
`

// LoadInputFile reads raw record text from a file path. A path of "-"
// reads from stdin.
func LoadInputFile(path string) (string, error) {
	if path == "-" {
		return ReadInput(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return string(data), nil
}

// ReadInput reads raw record text from r.
func ReadInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}
