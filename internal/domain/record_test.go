package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Gap(t *testing.T) {
	assert.Equal(t, -2, Record{Label: "긴장조절", Required: 7, Current: 5}.Gap())
	assert.Equal(t, 1, Record{Label: "승부욕", Required: 8, Current: 9}.Gap())
	assert.Equal(t, 0, Record{Label: "코스매니지먼트", Required: 8, Current: 8}.Gap())
}

func TestRecord_String(t *testing.T) {
	r := Record{Label: "Putting confidence", Required: 9, Current: 7}
	assert.Equal(t, "Putting confidence 9 7", r.String())
}

func TestPhase_IsTerminal(t *testing.T) {
	assert.True(t, PhaseIdle.IsTerminal())
	assert.True(t, PhaseReady.IsTerminal())
	assert.False(t, PhaseParsing.IsTerminal())
	assert.False(t, PhaseQuerying.IsTerminal())
}

func TestScoreKind_DisplayName(t *testing.T) {
	assert.Equal(t, "필요 점수", ScoreRequired.DisplayName())
	assert.Equal(t, "현재 점수", ScoreCurrent.DisplayName())
}
