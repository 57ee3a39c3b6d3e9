package app

import (
	"context"
	"sync"

	"github.com/alexanderramin/izof/internal/chart"
	"github.com/alexanderramin/izof/internal/domain"
	"github.com/alexanderramin/izof/internal/importer"
	"github.com/alexanderramin/izof/internal/intelligence"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransitionHook observes every phase change. Hooks run after the
// controller lock is released, so they may call Snapshot or Reset.
type TransitionHook func(from, to domain.Phase)

type transition struct{ from, to domain.Phase }

// SessionController owns the analysis session and drives it through
// Idle → Parsing → (ParseFailed | Querying) → (QueryFailed | Ready).
//
// Analyze runs are serialized by runMu; mu guards the session itself so
// snapshots and toggles never wait on a model call.
type SessionController struct {
	runMu sync.Mutex
	mu    sync.Mutex

	session  Session
	analysis intelligence.AnalysisService
	log      *zap.Logger
	hook     TransitionHook
	pending  []transition
	newRunID func() string
}

// ControllerOption configures a SessionController.
type ControllerOption func(*SessionController)

// WithLogger sets the logger used for run lifecycle events.
func WithLogger(l *zap.Logger) ControllerOption {
	return func(c *SessionController) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTransitionHook registers a callback for phase changes.
func WithTransitionHook(h TransitionHook) ControllerOption {
	return func(c *SessionController) { c.hook = h }
}

// WithRunIDGenerator replaces the uuid-based run ID source.
func WithRunIDGenerator(gen func() string) ControllerOption {
	return func(c *SessionController) { c.newRunID = gen }
}

// NewSessionController creates a controller in the Idle phase.
func NewSessionController(analysis intelligence.AnalysisService, opts ...ControllerOption) *SessionController {
	c := &SessionController{
		session:  Session{Phase: domain.PhaseIdle},
		analysis: analysis,
		log:      zap.NewNop(),
		newRunID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Analyze parses req.Text, queries the model and stores the split report.
//
// Empty text and a missing credential are rejected without touching the
// session. Any other run first clears the previous report; a parse or
// service failure leaves the session Idle and empty.
func (c *SessionController) Analyze(ctx context.Context, req AnalyzeRequest) (Session, error) {
	c.runMu.Lock()
	defer c.runMu.Unlock()

	if err := importer.ValidateInput(req.Text); err != nil {
		return c.Snapshot(), err
	}
	if err := c.analysis.CheckCredential(req.Credential); err != nil {
		return c.Snapshot(), err
	}

	c.mu.Lock()
	c.clearLocked()
	c.transitionLocked(domain.PhaseParsing)
	c.unlockAndNotify()

	parsed := importer.ParseRecordsWithReport(req.Text)
	if err := importer.ValidateRecords(parsed.Records); err != nil {
		c.fail(domain.PhaseParseFailed, err)
		return c.Snapshot(), err
	}

	runID := c.newRunID()
	c.mu.Lock()
	c.transitionLocked(domain.PhaseQuerying)
	c.unlockAndNotify()
	c.log.Debug("analysis started",
		zap.String("run_id", runID),
		zap.Int("records", len(parsed.Records)),
		zap.Int("skipped_lines", len(parsed.Skipped)))

	res, err := c.analysis.Analyze(ctx, intelligence.AnalysisRequest{
		Records:    parsed.Records,
		Credential: req.Credential,
		RunID:      runID,
	})
	if err != nil {
		c.log.Warn("analysis failed", zap.String("run_id", runID), zap.Error(err))
		c.fail(domain.PhaseQueryFailed, err)
		return c.Snapshot(), err
	}

	comparison := chart.Build(parsed.Records)
	summary, detail := res.Report.Summary, res.Report.Detail

	c.mu.Lock()
	c.session.Records = parsed.Records
	c.session.Skipped = parsed.Skipped
	c.session.Summary = &summary
	c.session.Detail = &detail
	c.session.Chart = &comparison
	c.session.DetailVisible = false
	c.session.RunID = runID
	c.session.Model = res.Model
	c.transitionLocked(domain.PhaseReady)
	out := c.session.clone()
	c.unlockAndNotify()

	c.log.Info("analysis ready",
		zap.String("run_id", runID),
		zap.String("model", res.Model),
		zap.Bool("structured", res.Report.Structured),
		zap.Int64("latency_ms", res.LatencyMs))
	return out, nil
}

// ToggleDetail flips DetailVisible. It only works on a Ready session and
// changes nothing else.
func (c *SessionController) ToggleDetail() (Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.Phase != domain.PhaseReady || !c.session.HasReport() {
		return c.session.clone(), ErrNotReady
	}
	c.session.DetailVisible = !c.session.DetailVisible
	c.session.Version++
	return c.session.clone(), nil
}

// Reset returns the session to an empty Idle state. While a run is in
// flight the session is left as is; the run's own outcome replaces it.
func (c *SessionController) Reset() Session {
	c.mu.Lock()
	if !c.session.Phase.IsTerminal() {
		out := c.session.clone()
		c.mu.Unlock()
		c.log.Debug("reset ignored during run", zap.String("phase", string(out.Phase)))
		return out
	}
	c.clearLocked()
	c.transitionLocked(domain.PhaseIdle)
	out := c.session.clone()
	c.unlockAndNotify()
	return out
}

// Snapshot returns a copy of the current session.
func (c *SessionController) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.clone()
}

// fail records a failure phase and then rolls back to an empty Idle session.
func (c *SessionController) fail(phase domain.Phase, err error) {
	c.mu.Lock()
	c.transitionLocked(phase)
	c.clearLocked()
	c.transitionLocked(domain.PhaseIdle)
	c.unlockAndNotify()
	c.log.Debug("session reset after failure", zap.String("phase", string(phase)), zap.Error(err))
}

func (c *SessionController) clearLocked() {
	c.session.Records = nil
	c.session.Skipped = nil
	c.session.Summary = nil
	c.session.Detail = nil
	c.session.Chart = nil
	c.session.DetailVisible = false
	c.session.RunID = ""
	c.session.Model = ""
}

func (c *SessionController) transitionLocked(to domain.Phase) {
	from := c.session.Phase
	c.session.Phase = to
	c.session.Version++
	if c.hook != nil {
		c.pending = append(c.pending, transition{from: from, to: to})
	}
}

// unlockAndNotify releases mu and then runs the hook for every transition
// recorded while it was held.
func (c *SessionController) unlockAndNotify() {
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, t := range pending {
		c.hook(t.from, t.to)
	}
}
