package llm

import (
	"context"
	"fmt"

	"github.com/bestlessonever/readiness/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and request-event logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base.
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from READINESS_* env configuration,
// falling back to probing the standard provider key vars. Returns an error
// when no provider is configured; callers treat that as "enrichment off".
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
