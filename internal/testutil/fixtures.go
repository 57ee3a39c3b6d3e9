package testutil

import (
	"github.com/alexanderramin/izof/internal/domain"
)

// GolfInput is the two-line golf example used across tests.
const GolfInput = "드라이버정확도 8 6\n퍼팅자신감 9 7"

// StructuredResponse is a model answer that follows the requested layout.
const StructuredResponse = "### [요약 보고서]\n드라이버 정확도 보완이 필요합니다.\n### [상세 보고서]\n1. **[종합 평가 및 맥락 파악]**: 골프 선수의 데이터로 보입니다."

// UnstructuredResponse is a model answer without any section markers.
const UnstructuredResponse = "전반적으로 안정적인 멘탈 상태입니다. 퍼팅 자신감을 조금 더 끌어올리세요."

// GolfRecords returns the records GolfInput parses into.
func GolfRecords() []domain.Record {
	return []domain.Record{
		{Label: "드라이버정확도", Required: 8, Current: 6},
		{Label: "퍼팅자신감", Required: 9, Current: 7},
	}
}

// Record options
type RecordOption func(*domain.Record)

func WithScores(required, current int) RecordOption {
	return func(r *domain.Record) {
		r.Required = required
		r.Current = current
	}
}

// NewTestRecord builds a record with default scores 7/5.
func NewTestRecord(label string, opts ...RecordOption) domain.Record {
	r := domain.Record{Label: label, Required: 7, Current: 5}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
