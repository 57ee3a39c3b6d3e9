package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// geminiClient implements LLMClient using the Google Gen AI SDK.
type geminiClient struct {
	cfg      LLMConfig
	client   *genai.Client
	observer Observer
}

// NewGeminiClient creates an LLMClient backed by the Gemini API.
// A blank apiKey is rejected with ErrMissingCredential before the SDK
// client is built, so no request can leave the process without one.
func NewGeminiClient(ctx context.Context, cfg LLMConfig, apiKey string, observer Observer) (LLMClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingCredential
	}
	if observer == nil {
		observer = NoopObserver{}
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if ep := cfg.EffectiveEndpoint(); ep != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: ep + "/"}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &geminiClient{cfg: cfg, client: client, observer: observer}, nil
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	model := c.cfg.EffectiveModel()

	temp, maxTok := resolveSampling(c.cfg, req)
	temp32 := float32(temp)
	config := &genai.GenerateContentConfig{
		Temperature:     &temp32,
		MaxOutputTokens: int32(maxTok),
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	var text string
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.UserPrompt), config)
	if err == nil {
		text = resp.Text()
		if strings.TrimSpace(text) == "" {
			err = ErrEmptyResponse
		}
	}

	latency := time.Since(start).Milliseconds()
	if err != nil {
		err = classify(ctx, err)
		c.observer.OnCallComplete(LLMCallEvent{
			Task:      req.Task,
			Provider:  ProviderGemini,
			Model:     model,
			RunID:     req.RunID,
			LatencyMs: latency,
			ErrorCode: errorCode(err),
		})
		return nil, err
	}

	c.observer.OnCallComplete(LLMCallEvent{
		Task:      req.Task,
		Provider:  ProviderGemini,
		Model:     model,
		RunID:     req.RunID,
		LatencyMs: latency,
		Success:   true,
	})
	if resp.ModelVersion != "" {
		model = resp.ModelVersion
	}
	return &GenerateResponse{Text: text, Model: model, LatencyMs: latency}, nil
}

// Available reports whether a client was configured. The Gemini API has
// no cheap unauthenticated health endpoint.
func (c *geminiClient) Available(context.Context) bool {
	return c.client != nil
}
