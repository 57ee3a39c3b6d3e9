package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiTestConfig(endpoint string) LLMConfig {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	return cfg
}

func TestNewGeminiClient_MissingCredential(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "   ", NoopObserver{})
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestGeminiClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-1.5-flash:generateContent"), r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "analyze these scores")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": "### [요약 보고서]\n좋습니다"}},
				},
				"finishReason": "STOP",
			}},
		})
	}))
	defer srv.Close()

	client, err := NewGeminiClient(context.Background(), geminiTestConfig(srv.URL), "test-key", NoopObserver{})
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskAnalyze,
		UserPrompt: "analyze these scores",
	})

	require.NoError(t, err)
	assert.Equal(t, "### [요약 보고서]\n좋습니다", resp.Text)
	assert.Equal(t, "gemini-1.5-flash", resp.Model)
}

func TestGeminiClient_Generate_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	var captured LLMCallEvent
	obs := &captureObserver{fn: func(e LLMCallEvent) { captured = e }}
	client, err := NewGeminiClient(context.Background(), geminiTestConfig(srv.URL), "bad-key", obs)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, UserPrompt: "x"})

	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "API key not valid")
	assert.False(t, captured.Success)
	assert.Equal(t, ProviderGemini, captured.Provider)
	assert.Equal(t, "REQUEST_FAILED", captured.ErrorCode)
}

func TestGeminiClient_Generate_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client, err := NewGeminiClient(context.Background(), geminiTestConfig(srv.URL), "test-key", NoopObserver{})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, UserPrompt: "x"})

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiClient_Available(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), DefaultConfig(), "test-key", nil)
	require.NoError(t, err)
	assert.True(t, client.Available(context.Background()))
}
