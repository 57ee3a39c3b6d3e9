package formatter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestSpinner_DrawsAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	var buf bytes.Buffer
	s := NewSpinner(&buf, AnalyzingMessage)
	s.interval = time.Millisecond
	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	out := stripANSI(buf.String())
	assert.Contains(t, out, AnalyzingMessage)
	assert.Contains(t, out, "\r")
}

func TestSpinner_StopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	var buf bytes.Buffer
	stop := StartSpinner(&buf, "loading")
	stop()
	stop()
}

func TestSpinner_StopBeforeStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	var buf bytes.Buffer
	s := NewSpinner(&buf, "loading")
	s.Stop()
	assert.Empty(t, buf.String())
}
