package app

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/izof/internal/domain"
	"github.com/alexanderramin/izof/internal/importer"
	"github.com/alexanderramin/izof/internal/intelligence"
	"github.com/alexanderramin/izof/internal/llm"
	"github.com/alexanderramin/izof/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type phaseRecorder struct {
	mu     sync.Mutex
	phases []domain.Phase
}

func (r *phaseRecorder) hook(_, to domain.Phase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phases = append(r.phases, to)
}

func (r *phaseRecorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phases = nil
}

func newTestController(t *testing.T, cfg llm.LLMConfig, client *testutil.FakeLLMClient, opts ...ControllerOption) *SessionController {
	t.Helper()
	svc := intelligence.NewAnalysisService(cfg, llm.StaticFactory(client))
	seq := 0
	opts = append([]ControllerOption{WithRunIDGenerator(func() string {
		seq++
		return fmt.Sprintf("run-%d", seq)
	})}, opts...)
	return NewSessionController(svc, opts...)
}

func assertEmptyIdle(t *testing.T, s Session) {
	t.Helper()
	assert.Equal(t, domain.PhaseIdle, s.Phase)
	assert.Nil(t, s.Records)
	assert.Nil(t, s.Summary)
	assert.Nil(t, s.Detail)
	assert.Nil(t, s.Chart)
	assert.False(t, s.DetailVisible)
	assert.Empty(t, s.RunID)
}

func TestController_InitialState(t *testing.T) {
	c := newTestController(t, testutil.OllamaConfig(), testutil.NewFakeLLMClient(""))

	assertEmptyIdle(t, c.Snapshot())
}

func TestController_Analyze_Ready(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	rec := &phaseRecorder{}
	c := newTestController(t, testutil.OllamaConfig(), client, WithTransitionHook(rec.hook))

	s, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseReady, s.Phase)
	assert.Equal(t, testutil.GolfRecords(), s.Records)
	assert.Equal(t, "드라이버 정확도 보완이 필요합니다.", s.SummaryText())
	assert.Contains(t, s.DetailText(), intelligence.DetailMarker)
	require.NotNil(t, s.Chart)
	assert.Equal(t, 4, s.Chart.BarCount())
	assert.False(t, s.DetailVisible)
	assert.Equal(t, "run-1", s.RunID)
	assert.Equal(t, "fake-model", s.Model)
	assert.Equal(t, 1, client.Calls())
	assert.Equal(t, []domain.Phase{domain.PhaseParsing, domain.PhaseQuerying, domain.PhaseReady}, rec.phases)
}

func TestController_Analyze_EmptyInputNoCall(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	rec := &phaseRecorder{}
	c := newTestController(t, testutil.OllamaConfig(), client, WithTransitionHook(rec.hook))
	before := c.Snapshot()

	s, err := c.Analyze(context.Background(), AnalyzeRequest{Text: ""})

	assert.ErrorIs(t, err, importer.ErrEmptyInput)
	assert.Equal(t, 0, client.Calls())
	assert.Equal(t, before, s)
	assert.Empty(t, rec.phases)
}

func TestController_Analyze_EmptyInputKeepsPreviousReport(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	c := newTestController(t, testutil.OllamaConfig(), client)
	ready, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})
	require.NoError(t, err)

	s, err := c.Analyze(context.Background(), AnalyzeRequest{Text: "   \n"})

	assert.ErrorIs(t, err, importer.ErrEmptyInput)
	assert.Equal(t, ready, s)
	assert.Equal(t, 1, client.Calls())
}

func TestController_Analyze_MissingCredential(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	rec := &phaseRecorder{}
	c := newTestController(t, testutil.GeminiConfig(), client, WithTransitionHook(rec.hook))

	s, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})

	assert.ErrorIs(t, err, llm.ErrMissingCredential)
	assert.Equal(t, 0, client.Calls())
	assertEmptyIdle(t, s)
	assert.Empty(t, rec.phases)
}

func TestController_Analyze_CredentialFromUser(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	c := newTestController(t, testutil.GeminiConfig(), client)

	s, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput, Credential: "key"})

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseReady, s.Phase)
}

func TestController_Analyze_NoRecords(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	rec := &phaseRecorder{}
	c := newTestController(t, testutil.OllamaConfig(), client, WithTransitionHook(rec.hook))

	s, err := c.Analyze(context.Background(), AnalyzeRequest{Text: "# only a comment\nnot a record"})

	assert.ErrorIs(t, err, importer.ErrNoRecords)
	assert.Equal(t, 0, client.Calls())
	assertEmptyIdle(t, s)
	assert.Equal(t, []domain.Phase{domain.PhaseParsing, domain.PhaseParseFailed, domain.PhaseIdle}, rec.phases)
}

func TestController_Analyze_ParseFailureClearsPriorReport(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	c := newTestController(t, testutil.OllamaConfig(), client)
	_, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})
	require.NoError(t, err)

	s, err := c.Analyze(context.Background(), AnalyzeRequest{Text: "garbage"})

	assert.ErrorIs(t, err, importer.ErrNoRecords)
	assertEmptyIdle(t, s)
}

func TestController_Analyze_ServiceFailureRollsBack(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	rec := &phaseRecorder{}
	c := newTestController(t, testutil.OllamaConfig(), client, WithTransitionHook(rec.hook))
	_, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})
	require.NoError(t, err)
	rec.reset()

	client.SetErr(llm.ErrTimeout)
	s, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})

	assert.ErrorIs(t, err, intelligence.ErrAnalysisFailed)
	assert.ErrorIs(t, err, llm.ErrTimeout)
	assertEmptyIdle(t, s)
	assert.Equal(t, []domain.Phase{domain.PhaseParsing, domain.PhaseQuerying, domain.PhaseQueryFailed, domain.PhaseIdle}, rec.phases)
}

func TestController_Analyze_FallbackSummary(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.UnstructuredResponse)
	c := newTestController(t, testutil.OllamaConfig(), client)

	s, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})

	require.NoError(t, err)
	assert.Equal(t, intelligence.FallbackSummary, s.SummaryText())
	assert.Equal(t, testutil.UnstructuredResponse, s.DetailText())
}

func TestController_Analyze_RecordsSkippedLines(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	c := newTestController(t, testutil.OllamaConfig(), client)

	s, err := c.Analyze(context.Background(), AnalyzeRequest{Text: "Focus 7 6\nbroken line\nCalm 5 5"})

	require.NoError(t, err)
	assert.Len(t, s.Records, 2)
	assert.Equal(t, []int{2}, s.Skipped)
}

func TestController_Analyze_NewRunReplacesState(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	c := newTestController(t, testutil.OllamaConfig(), client)
	_, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})
	require.NoError(t, err)
	_, err = c.ToggleDetail()
	require.NoError(t, err)

	client.SetResponse(testutil.UnstructuredResponse)
	s, err := c.Analyze(context.Background(), AnalyzeRequest{Text: "Focus 7 6"})

	require.NoError(t, err)
	assert.Equal(t, "run-2", s.RunID)
	assert.False(t, s.DetailVisible)
	assert.Len(t, s.Records, 1)
	assert.Equal(t, 2, s.Chart.BarCount())
	assert.Equal(t, intelligence.FallbackSummary, s.SummaryText())
}

func TestController_ToggleDetail_Twice(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	c := newTestController(t, testutil.OllamaConfig(), client)
	ready, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})
	require.NoError(t, err)

	shown, err := c.ToggleDetail()
	require.NoError(t, err)
	assert.True(t, shown.DetailVisible)

	hidden, err := c.ToggleDetail()
	require.NoError(t, err)
	assert.False(t, hidden.DetailVisible)

	assert.Equal(t, ready.Records, hidden.Records)
	assert.Equal(t, ready.Summary, hidden.Summary)
	assert.Equal(t, ready.Detail, hidden.Detail)
	assert.Equal(t, ready.Chart, hidden.Chart)
	assert.Equal(t, ready.Phase, hidden.Phase)
	assert.Equal(t, ready.Version+2, hidden.Version)
	assert.Equal(t, 1, client.Calls(), "toggling must not re-query")
}

func TestController_ToggleDetail_NotReady(t *testing.T) {
	c := newTestController(t, testutil.OllamaConfig(), testutil.NewFakeLLMClient(""))

	s, err := c.ToggleDetail()

	assert.ErrorIs(t, err, ErrNotReady)
	assert.False(t, s.DetailVisible)
}

func TestController_Reset(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	c := newTestController(t, testutil.OllamaConfig(), client)
	_, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})
	require.NoError(t, err)

	assertEmptyIdle(t, c.Reset())
	assertEmptyIdle(t, c.Snapshot())
}

func TestController_HookMayReadSession(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	var c *SessionController
	var seen []domain.Phase
	var resetDuringQuery Session
	c = newTestController(t, testutil.OllamaConfig(), client, WithTransitionHook(func(_, to domain.Phase) {
		seen = append(seen, c.Snapshot().Phase)
		if to == domain.PhaseQuerying {
			resetDuringQuery = c.Reset()
		}
	}))

	s, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})

	require.NoError(t, err)
	assert.Equal(t, []domain.Phase{domain.PhaseParsing, domain.PhaseQuerying, domain.PhaseReady}, seen)
	assert.Equal(t, domain.PhaseQuerying, resetDuringQuery.Phase, "reset is ignored while a run is in flight")
	assert.Equal(t, domain.PhaseReady, s.Phase)
	assert.True(t, c.Snapshot().HasReport())
}

func TestController_SnapshotIsolated(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	c := newTestController(t, testutil.OllamaConfig(), client)
	_, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})
	require.NoError(t, err)

	s := c.Snapshot()
	s.Records[0].Label = "mutated"
	*s.Summary = "mutated"
	s.Chart.Groups[0].Label = "mutated"

	fresh := c.Snapshot()
	assert.Equal(t, "드라이버정확도", fresh.Records[0].Label)
	assert.NotEqual(t, "mutated", fresh.SummaryText())
	assert.Equal(t, "드라이버정확도", fresh.Chart.Groups[0].Label)
}

func TestController_SummaryAndDetailSetTogether(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	c := newTestController(t, testutil.OllamaConfig(), client)

	inputs := []string{testutil.GolfInput, "", "garbage", testutil.GolfInput}
	for i, in := range inputs {
		if i == 3 {
			client.SetErr(llm.ErrProviderUnavailable)
		}
		s, _ := c.Analyze(context.Background(), AnalyzeRequest{Text: in})
		assert.Equal(t, s.Summary == nil, s.Detail == nil)
		if s.Summary != nil {
			assert.NotEmpty(t, s.Records)
		}
	}
}

func TestController_ConcurrentAnalyzeSerialized(t *testing.T) {
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	c := newTestController(t, testutil.OllamaConfig(), client)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	s := c.Snapshot()
	assert.Equal(t, domain.PhaseReady, s.Phase)
	assert.Equal(t, 8, client.Calls())
	assert.Len(t, s.Records, 2)
}

func TestController_LogsRunLifecycle(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	client := testutil.NewFakeLLMClient(testutil.StructuredResponse)
	c := newTestController(t, testutil.OllamaConfig(), client, WithLogger(zap.New(core)))

	_, err := c.Analyze(context.Background(), AnalyzeRequest{Text: testutil.GolfInput})
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("analysis started").Len())
	ready := logs.FilterMessage("analysis ready").All()
	require.Len(t, ready, 1)
	assert.Equal(t, "run-1", ready[0].ContextMap()["run_id"])
}
