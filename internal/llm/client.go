package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	RunID        string
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses config default
	MaxTokens    *int     // nil uses config default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt once and returns the full text response.
	// Implementations never retry.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the backend is reachable.
	Available(ctx context.Context) bool
}

// ollamaClient implements LLMClient using the Ollama HTTP API.
type ollamaClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates an LLMClient that talks to an Ollama instance.
func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the JSON body returned by POST /api/generate (non-streaming).
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	model := c.cfg.EffectiveModel()

	temp, maxTok := resolveSampling(c.cfg, req)
	body := ollamaRequest{
		Model:  model,
		System: req.SystemPrompt,
		Prompt: req.UserPrompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: temp,
			NumPredict:  maxTok,
		},
	}

	resp, err := c.doRequest(ctx, body)
	if err == nil && strings.TrimSpace(resp.Response) == "" {
		err = ErrEmptyResponse
	}
	if err != nil {
		err = classify(ctx, err)
		c.observer.OnCallComplete(LLMCallEvent{
			Task:      req.Task,
			Provider:  ProviderOllama,
			Model:     model,
			RunID:     req.RunID,
			LatencyMs: time.Since(start).Milliseconds(),
			ErrorCode: errorCode(err),
		})
		return nil, err
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(LLMCallEvent{
		Task:      req.Task,
		Provider:  ProviderOllama,
		Model:     model,
		RunID:     req.RunID,
		LatencyMs: latency,
		Success:   true,
	})
	if resp.Model != "" {
		model = resp.Model
	}
	return &GenerateResponse{
		Text:      resp.Response,
		Model:     model,
		LatencyMs: latency,
	}, nil
}

func (c *ollamaClient) doRequest(ctx context.Context, body ollamaRequest) (*ollamaResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.EffectiveEndpoint() + "/api/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: ollama returned status %d: %s", ErrRequestFailed, httpResp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrRequestFailed, err)
	}

	return &resp, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	url := c.cfg.EffectiveEndpoint() + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func resolveSampling(cfg LLMConfig, req GenerateRequest) (float64, int) {
	temp := cfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := cfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	return temp, maxTok
}

// classify maps transport failures onto the package's sentinel errors,
// keeping the original cause in the message.
func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrEmptyResponse), errors.Is(err, ErrRequestFailed):
		return err
	case ctx.Err() != nil:
		return fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrProviderUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY_RESPONSE"
	case errors.Is(err, ErrMissingCredential):
		return "MISSING_CREDENTIAL"
	case errors.Is(err, ErrRequestFailed):
		return "REQUEST_FAILED"
	default:
		return "UNKNOWN"
	}
}
