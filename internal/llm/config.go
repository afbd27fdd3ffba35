package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds provider configuration for enrichment calls.
type Config struct {
	// Provider selects the backend: "anthropic", "openai", "gemini", "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single request including retries. Default: 30s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration. BaseURL also serves
// OpenAI-compatible gateways (OpenRouter, proxies).
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from READINESS_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("READINESS_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("READINESS_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("READINESS_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("READINESS_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("READINESS_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("READINESS_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("READINESS_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("READINESS_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// DiscoverConfig probes the standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic) and returns a Config for the first
// provider whose key is found. Returns (Config{}, false) if none is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("READINESS_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("READINESS_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("READINESS_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
