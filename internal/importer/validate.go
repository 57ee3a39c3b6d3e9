package importer

import (
	"errors"
	"strings"

	"github.com/alexanderramin/izof/internal/domain"
)

var (
	// ErrEmptyInput indicates the user submitted no text at all.
	ErrEmptyInput = errors.New("분석할 데이터를 입력해주세요")

	// ErrNoRecords indicates the text contained no line in the
	// "<label> <required> <current>" format.
	ErrNoRecords = errors.New("입력 데이터 형식을 확인해주세요. '항목 점수 점수' 형식으로 각 줄에 입력해야 합니다")
)

// ValidateInput checks raw text before parsing.
func ValidateInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}
	return nil
}

// ValidateRecords reports ErrNoRecords for an empty parse result.
// Scores are not range-checked and repeated labels are kept.
func ValidateRecords(records []domain.Record) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	return nil
}
