package app

import (
	"errors"

	"github.com/alexanderramin/izof/internal/chart"
	"github.com/alexanderramin/izof/internal/domain"
)

// ErrNotReady indicates an action that needs a finished analysis was
// triggered before one exists.
var ErrNotReady = errors.New("분석 결과가 아직 없습니다")

// Session is the transient state of one interactive session.
// Summary and Detail are set together or not at all, and Records is
// non-empty whenever Summary is set.
type Session struct {
	Phase         domain.Phase
	Records       []domain.Record
	Summary       *string
	Detail        *string
	DetailVisible bool
	Chart         *chart.Comparison

	// RunID identifies the analysis run that produced the report.
	RunID string
	Model string

	// Skipped lists 1-based input lines that were dropped by the parser.
	Skipped []int

	// Version increases on every mutation.
	Version int
}

// HasReport reports whether a summary/detail pair is stored.
func (s Session) HasReport() bool {
	return s.Summary != nil && s.Detail != nil
}

// SummaryText returns the summary or "".
func (s Session) SummaryText() string {
	if s.Summary == nil {
		return ""
	}
	return *s.Summary
}

// DetailText returns the detail or "".
func (s Session) DetailText() string {
	if s.Detail == nil {
		return ""
	}
	return *s.Detail
}

// clone returns a deep copy so callers cannot reach controller state.
func (s Session) clone() Session {
	out := s
	if s.Records != nil {
		out.Records = append([]domain.Record(nil), s.Records...)
	}
	if s.Skipped != nil {
		out.Skipped = append([]int(nil), s.Skipped...)
	}
	if s.Summary != nil {
		v := *s.Summary
		out.Summary = &v
	}
	if s.Detail != nil {
		v := *s.Detail
		out.Detail = &v
	}
	if s.Chart != nil {
		c := *s.Chart
		c.Groups = append([]chart.Group(nil), s.Chart.Groups...)
		out.Chart = &c
	}
	return out
}
