package insights

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bestlessonever/readiness/internal/llm"
)

// Config tunes LLM insight generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}

// Service generates child insights, preferring the LLM and falling back
// to the deterministic profile on any failure.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an insight service. A nil provider disables LLM
// generation.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate returns insights for the child. It never fails: LLM errors
// are swallowed and the default profile is returned instead.
func (s *Service) Generate(ctx context.Context, in Input) *Insights {
	if s.provider == nil {
		return DefaultInsights(in)
	}

	ins, err := s.generateLLM(ctx, in)
	if err != nil {
		return DefaultInsights(in)
	}
	return ins
}

func (s *Service) generateLLM(ctx context.Context, in Input) (*Insights, error) {
	ctx = llm.WithPurpose(ctx, "insights")

	req := llm.Request{
		System: insightsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildInsightsUserMessage(in)},
		},
		Schema:      InsightsSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("insight generation: %w", err)
	}

	var ins Insights
	if err := json.Unmarshal(resp.Content, &ins); err != nil {
		return nil, fmt.Errorf("parse insight response: %w", err)
	}
	if ins.ProfileType == "" || ins.Superpower == "" {
		return nil, fmt.Errorf("insight response missing required fields")
	}
	return &ins, nil
}
