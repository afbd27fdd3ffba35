package plan

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bestlessonever/readiness/internal/llm"
	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/scoring"
)

func sampleInput() Input {
	answers := quiz.NewAnswerSet()
	answers.Set(quiz.KeyHummingSinging, "all-the-time")
	answers.Set(quiz.KeyDancing, "yes")
	answers.Set(quiz.KeyPerformerStyle, "loves-showing")
	answers.Set(quiz.KeyFocusDuration, "10-20")
	answers.Set(quiz.KeyWantsToLearn, "yes")
	answers.Set(quiz.KeyDrawnToInstruments, "yes")
	answers.SetAll(quiz.KeyInstrumentsAtHome, []string{"keyboard-piano"})

	return Input{
		ChildName: "Maya",
		Answers:   answers,
		Result: scoring.ScoringResult{
			Score:                84,
			Band:                 scoring.BandReadyToThrive,
			BandLabel:            "Ready to Thrive",
			PrimaryInstrument:    "Piano",
			SecondaryInstruments: []string{"Voice", "Guitar"},
		},
	}
}

func TestFallbackPlanStructure(t *testing.T) {
	plan := FallbackPlan(sampleInput())

	if len(plan) < 2 || len(plan) > 6 {
		t.Fatalf("plan length = %d, want 2-6", len(plan))
	}
	if !strings.Contains(plan[0], "performance video") {
		t.Errorf("first bullet should be the universal opener, got %q", plan[0])
	}
	for _, bullet := range plan {
		if strings.Contains(bullet, "%s") || strings.Contains(bullet, "{") {
			t.Errorf("placeholder leaked into plan bullet: %q", bullet)
		}
	}
}

func TestFallbackPlanWithInstrumentAtHome(t *testing.T) {
	plan := FallbackPlan(sampleInput())
	joined := strings.Join(plan, "\n")

	// Piano at home → exploration prompt naming the primary instrument.
	if !strings.Contains(joined, "explore the piano") {
		t.Errorf("expected piano exploration prompt:\n%s", joined)
	}
	if strings.Contains(joined, "rhythm game") {
		t.Errorf("generic engagement prompts should be skipped when an instrument is owned:\n%s", joined)
	}
	// Thrive band → trial lesson prompt.
	if !strings.Contains(joined, "trial lesson") {
		t.Errorf("expected trial-lesson prompt for thrive band:\n%s", joined)
	}
}

func TestFallbackPlanWithoutInstruments(t *testing.T) {
	in := sampleInput()
	in.Answers.SetAll(quiz.KeyInstrumentsAtHome, []string{quiz.TokenNoneYet})

	plan := FallbackPlan(in)
	joined := strings.Join(plan, "\n")
	if !strings.Contains(joined, "rhythm game") {
		t.Errorf("expected rhythm-game prompt without instruments:\n%s", joined)
	}
	if !strings.Contains(joined, "free apps") {
		t.Errorf("expected free-app prompt without instruments:\n%s", joined)
	}
}

func TestFallbackPlanBandBranches(t *testing.T) {
	cases := []struct {
		band scoring.Band
		want string
	}{
		{scoring.BandEmerging, "fun over structure"},
		{scoring.BandReadyWithSupport, "teacher personality"},
		{scoring.BandReadyToThrive, "trial lesson"},
	}
	for _, tc := range cases {
		in := sampleInput()
		in.Result.Band = tc.band
		joined := strings.Join(FallbackPlan(in), "\n")
		if !strings.Contains(joined, tc.want) {
			t.Errorf("band %s: expected %q in plan:\n%s", tc.band, tc.want, joined)
		}
	}
}

func TestFallbackPlanBonusItemsAndCap(t *testing.T) {
	in := sampleInput()
	in.Answers.Set(quiz.KeyFocusDuration, "under-5")
	in.Answers.Set(quiz.KeyPerformerStyle, "nervous")
	in.Answers.SetAll(quiz.KeyInstrumentsAtHome, []string{quiz.TokenNoneYet})

	// Opener + 2 generic + 2 band + 4 eligible bonuses would overflow;
	// the cap must hold.
	plan := FallbackPlan(in)
	if len(plan) != 6 {
		t.Errorf("plan length = %d, want the 6-entry cap", len(plan))
	}
	if !strings.Contains(strings.Join(plan, "\n"), "under 5 minutes") {
		t.Error("expected short-focus bonus item")
	}
}

func TestFallbackPlanWithoutChildName(t *testing.T) {
	in := sampleInput()
	in.ChildName = ""

	joined := strings.Join(FallbackPlan(in), "\n")
	if strings.Contains(joined, "Maya") {
		t.Errorf("plan mentions a name that was never given:\n%s", joined)
	}
	if !strings.Contains(joined, "your child") {
		t.Errorf("expected neutral name fallback:\n%s", joined)
	}
}

func TestServiceUsesLLMPlan(t *testing.T) {
	content, _ := json.Marshal(map[string]any{
		"plan": []string{"a", "b", "c", "d", "e"},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})

	svc := NewService(mock, DefaultConfig())
	plan, source := svc.Generate(context.Background(), sampleInput())

	if source != SourceAI {
		t.Errorf("source = %q, want %q", source, SourceAI)
	}
	if len(plan) != 5 || plan[0] != "a" {
		t.Errorf("plan = %v", plan)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestServiceFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → provider unavailable

	svc := NewService(mock, DefaultConfig())
	plan, source := svc.Generate(context.Background(), sampleInput())

	if source != SourceFallback {
		t.Errorf("source = %q, want %q", source, SourceFallback)
	}
	if len(plan) < 5 {
		t.Errorf("fallback plan length = %d", len(plan))
	}
}

func TestServiceFallsBackOnMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"not an object"`)})

	svc := NewService(mock, DefaultConfig())
	plan, source := svc.Generate(context.Background(), sampleInput())

	if source != SourceFallback {
		t.Errorf("source = %q, want %q", source, SourceFallback)
	}
	if len(plan) == 0 {
		t.Error("expected non-empty fallback plan")
	}
}

func TestServiceNilProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	plan, source := svc.Generate(context.Background(), sampleInput())

	if source != SourceFallback {
		t.Errorf("source = %q, want %q", source, SourceFallback)
	}
	if len(plan) == 0 {
		t.Error("expected non-empty fallback plan")
	}
}
