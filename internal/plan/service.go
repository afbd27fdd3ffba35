package plan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bestlessonever/readiness/internal/llm"
)

// Service generates action plans, preferring the LLM and falling back to
// the deterministic pipeline on any failure.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a plan service. A nil provider disables LLM
// generation; every plan then comes from the fallback pipeline.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate returns an action plan and its source. It never fails: LLM
// errors are swallowed and the fallback plan is returned instead.
func (s *Service) Generate(ctx context.Context, in Input) ([]string, string) {
	if s.provider == nil {
		return FallbackPlan(in), SourceFallback
	}

	bullets, err := s.generateLLM(ctx, in)
	if err != nil {
		return FallbackPlan(in), SourceFallback
	}
	return bullets, SourceAI
}

type planOutput struct {
	Plan []string `json:"plan"`
}

func (s *Service) generateLLM(ctx context.Context, in Input) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "action-plan")

	req := llm.Request{
		System: buildPlanSystemPrompt(in),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(in)},
		},
		Schema:      PlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("plan generation: %w", err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}
	if len(out.Plan) == 0 {
		return nil, fmt.Errorf("plan response contained no bullets")
	}
	return out.Plan, nil
}
