package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/izof/internal/llm"
)

// FakeLLMClient is a scriptable llm.LLMClient that records every call.
type FakeLLMClient struct {
	mu       sync.Mutex
	Response string
	Err      error
	Requests []llm.GenerateRequest
}

// NewFakeLLMClient returns a fake that answers with response.
func NewFakeLLMClient(response string) *FakeLLMClient {
	return &FakeLLMClient{Response: response}
}

// NewFailingLLMClient returns a fake whose every call fails with err.
func NewFailingLLMClient(err error) *FakeLLMClient {
	return &FakeLLMClient{Err: err}
}

func (f *FakeLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Requests = append(f.Requests, req)
	if f.Err != nil {
		return nil, f.Err
	}
	return &llm.GenerateResponse{Text: f.Response, Model: "fake-model", LatencyMs: 1}, nil
}

func (f *FakeLLMClient) Available(context.Context) bool { return f.Err == nil }

// Calls returns how many times Generate was invoked.
func (f *FakeLLMClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Requests)
}

// LastRequest returns the most recent request, or the zero value.
func (f *FakeLLMClient) LastRequest() llm.GenerateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Requests) == 0 {
		return llm.GenerateRequest{}
	}
	return f.Requests[len(f.Requests)-1]
}

// SetResponse changes the scripted answer and clears any error.
func (f *FakeLLMClient) SetResponse(response string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Response = response
	f.Err = nil
}

// SetErr makes subsequent calls fail with err.
func (f *FakeLLMClient) SetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Err = err
}

// GeminiConfig is an llm config that requires a credential, with no key set.
func GeminiConfig() llm.LLMConfig {
	return llm.DefaultConfig()
}

// OllamaConfig is an llm config that needs no credential.
func OllamaConfig() llm.LLMConfig {
	cfg := llm.DefaultConfig()
	cfg.Provider = llm.ProviderOllama
	return cfg
}
