package domain

// Phase is the position of an analysis session in its state machine.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseParsing     Phase = "parsing"
	PhaseParseFailed Phase = "parse_failed"
	PhaseQuerying    Phase = "querying"
	PhaseQueryFailed Phase = "query_failed"
	PhaseReady       Phase = "ready"
)

// IsTerminal reports whether the phase is one a completed action can
// leave the session in.
func (p Phase) IsTerminal() bool {
	return p == PhaseIdle || p == PhaseReady
}

// ScoreKind distinguishes the two scores a record carries.
type ScoreKind string

const (
	ScoreRequired ScoreKind = "required"
	ScoreCurrent  ScoreKind = "current"
)

// DisplayName returns the Korean label used in reports and charts.
func (k ScoreKind) DisplayName() string {
	switch k {
	case ScoreRequired:
		return "필요 점수"
	case ScoreCurrent:
		return "현재 점수"
	default:
		return string(k)
	}
}
