package llm

import (
	"context"
	"fmt"
)

// Factory builds an LLMClient for a credential. The credential may be
// blank, in which case the configured API key is used.
type Factory func(ctx context.Context, credential string) (LLMClient, error)

// NewFactory returns a Factory for the configured provider.
func NewFactory(cfg LLMConfig, observer Observer) Factory {
	return func(ctx context.Context, credential string) (LLMClient, error) {
		switch cfg.Provider {
		case ProviderGemini:
			return NewGeminiClient(ctx, cfg, cfg.ResolveCredential(credential), observer)
		case ProviderOllama:
			return NewOllamaClient(cfg, observer), nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
		}
	}
}

// StaticFactory always returns client. Used to inject fakes.
func StaticFactory(client LLMClient) Factory {
	return func(context.Context, string) (LLMClient, error) {
		return client, nil
	}
}
