package intelligence

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/izof/internal/domain"
	"github.com/alexanderramin/izof/internal/importer"
	"github.com/alexanderramin/izof/internal/llm"
)

// ErrAnalysisFailed wraps every failure of the external model call:
// network, authentication, quota and malformed payloads alike.
var ErrAnalysisFailed = errors.New("분석 중 오류가 발생했습니다")

// AnalysisRequest is one analysis run.
type AnalysisRequest struct {
	Records    []domain.Record
	Credential string
	RunID      string
}

// AnalysisResult holds the split report plus call metadata.
type AnalysisResult struct {
	Report    Report
	Prompt    string
	Raw       string
	Model     string
	LatencyMs int64
}

// AnalysisService turns records into a model-written report.
type AnalysisService interface {
	// CheckCredential reports llm.ErrMissingCredential when the provider
	// needs a key and neither credential nor configuration supplies one.
	CheckCredential(credential string) error

	// Analyze builds the prompt, calls the model once and splits the answer.
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)

	// CheckBackend reports whether the configured model can be reached
	// without sending a prompt.
	CheckBackend(ctx context.Context, credential string) error
}

type analysisService struct {
	cfg     llm.LLMConfig
	factory llm.Factory
}

// NewAnalysisService creates an AnalysisService that obtains clients from factory.
func NewAnalysisService(cfg llm.LLMConfig, factory llm.Factory) AnalysisService {
	return &analysisService{cfg: cfg, factory: factory}
}

func (s *analysisService) CheckCredential(credential string) error {
	if s.cfg.RequiresCredential() && s.cfg.ResolveCredential(credential) == "" {
		return llm.ErrMissingCredential
	}
	return nil
}

func (s *analysisService) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	if err := s.CheckCredential(req.Credential); err != nil {
		return nil, err
	}
	if err := importer.ValidateRecords(req.Records); err != nil {
		return nil, err
	}

	client, err := s.factory(ctx, req.Credential)
	if err != nil {
		if errors.Is(err, llm.ErrMissingCredential) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	prompt := BuildAnalysisPrompt(req.Records)
	resp, err := client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskAnalyze,
		RunID:      req.RunID,
		UserPrompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	return &AnalysisResult{
		Report:    SplitReport(resp.Text),
		Prompt:    prompt,
		Raw:       resp.Text,
		Model:     resp.Model,
		LatencyMs: resp.LatencyMs,
	}, nil
}

func (s *analysisService) CheckBackend(ctx context.Context, credential string) error {
	if err := s.CheckCredential(credential); err != nil {
		return err
	}
	client, err := s.factory(ctx, credential)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}
	if !client.Available(ctx) {
		return fmt.Errorf("%s (%s): %w", s.cfg.Provider, s.cfg.EffectiveModel(), llm.ErrProviderUnavailable)
	}
	return nil
}
