package insights

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
	answers.Set(quiz.KeyPitch, "yes-on-tune")
	answers.Set(quiz.KeyRhythm, "yes")
	answers.Set(quiz.KeyMemory, "sometimes")
	answers.Set(quiz.KeyHummingSinging, "all-the-time")
	answers.Set(quiz.KeyRhythmPlay, "sometimes")
	answers.Set(quiz.KeyDancing, "yes")
	answers.Set(quiz.KeyPerformerStyle, "shy-but-tries")

	return Input{
		ChildName: "Leo",
		Answers:   answers,
		Result: scoring.ScoringResult{
			Score:             72,
			BandLabel:         "Ready with Support",
			PrimaryInstrument: "Voice",
		},
	}
}

func TestDefaultInsightsStrengths(t *testing.T) {
	ins := DefaultInsights(sampleInput())

	if len(ins.Strengths) < 2 || len(ins.Strengths) > 3 {
		t.Fatalf("strengths = %d, want 2-3", len(ins.Strengths))
	}
	joined := strings.Join(ins.Strengths, "\n")
	if !strings.Contains(joined, "ear for melody") {
		t.Errorf("expected pitch strength:\n%s", joined)
	}
	if !strings.Contains(joined, "rhythmic awareness") {
		t.Errorf("expected rhythm strength:\n%s", joined)
	}
}

func TestDefaultInsightsPadsWeakSignal(t *testing.T) {
	in := sampleInput()
	in.Answers = quiz.NewAnswerSet()

	ins := DefaultInsights(in)
	if len(ins.Strengths) != 2 {
		t.Fatalf("strengths = %d, want 2 padded", len(ins.Strengths))
	}
	if !strings.Contains(ins.Strengths[0], "curiosity") {
		t.Errorf("expected padded strengths, got %v", ins.Strengths)
	}
}

func TestDefaultInsightsSuperpower(t *testing.T) {
	tests := []struct {
		name string
		set  func(a quiz.AnswerSet)
		want string
	}{
		{
			"melody maker",
			func(a quiz.AnswerSet) {
				a.Set(quiz.KeyHummingSinging, "all-the-time")
				a.Set(quiz.KeyPitch, "yes-on-tune")
			},
			"Melody Maker",
		},
		{
			"beat master",
			func(a quiz.AnswerSet) {
				a.Set(quiz.KeyRhythmPlay, "constantly")
				a.Set(quiz.KeyDancing, "yes")
			},
			"Beat Master",
		},
		{
			"tune keeper",
			func(a quiz.AnswerSet) {
				a.Set(quiz.KeyMemory, "yes")
			},
			"Tune Keeper",
		},
		{
			"default explorer",
			func(a quiz.AnswerSet) {},
			"Sound Explorer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sampleInput()
			in.Answers = quiz.NewAnswerSet()
			tt.set(in.Answers)

			ins := DefaultInsights(in)
			if ins.Superpower != tt.want {
				t.Errorf("superpower = %q, want %q", ins.Superpower, tt.want)
			}
		})
	}
}

func TestDefaultInsightsPerformerType(t *testing.T) {
	in := sampleInput()
	in.Answers.Set(quiz.KeyPerformerStyle, "loves-showing")

	ins := DefaultInsights(in)
	if !strings.Contains(ins.PerformerType, "showstopper") {
		t.Errorf("performer type = %q", ins.PerformerType)
	}
}

func TestServiceUsesLLMInsights(t *testing.T) {
	content, _ := json.Marshal(Insights{
		ProfileType:         "Leo is a melodic explorer.",
		Strengths:           []string{"a", "b"},
		LearningStyle:       "Hands-on.",
		PerformerType:       "Brave.",
		InstrumentReasoning: "Voice fits.",
		Superpower:          "Melody Maker",
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})

	svc := NewService(mock, DefaultConfig())
	ins := svc.Generate(context.Background(), sampleInput())

	if ins.Superpower != "Melody Maker" {
		t.Errorf("superpower = %q", ins.Superpower)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestServiceFallsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → provider unavailable

	svc := NewService(mock, DefaultConfig())
	ins := svc.Generate(context.Background(), sampleInput())

	if ins == nil {
		t.Fatal("expected fallback insights")
	}
	if !strings.Contains(ins.ProfileType, "Leo") {
		t.Errorf("profile type = %q", ins.ProfileType)
	}
}

func TestServiceFallsBackOnMissingFields(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{}`)})

	svc := NewService(mock, DefaultConfig())
	ins := svc.Generate(context.Background(), sampleInput())

	if ins.ProfileType == "" {
		t.Error("expected fallback profile, got empty insights")
	}
}

func TestMapRoundTrip(t *testing.T) {
	ins := DefaultInsights(sampleInput())

	got := FromMap(ins.ToMap())
	if got.ProfileType != ins.ProfileType {
		t.Errorf("profileType = %q, want %q", got.ProfileType, ins.ProfileType)
	}
	if len(got.Strengths) != len(ins.Strengths) {
		t.Errorf("strengths = %v", got.Strengths)
	}
	if got.Superpower != ins.Superpower {
		t.Errorf("superpower = %q", got.Superpower)
	}
}

func TestFromMapEmpty(t *testing.T) {
	if FromMap(nil) != nil {
		t.Error("expected nil for empty map")
	}
}
