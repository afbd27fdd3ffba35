// Package plan builds the first-week action plan shown to parents after
// the quiz. Plans come from the LLM when a provider is available and from
// a deterministic pipeline otherwise; callers always get a usable plan.
package plan

import (
	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/scoring"
)

// Source records where a plan came from.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Input carries everything plan generation needs.
type Input struct {
	ChildName string
	Answers   quiz.AnswerSet
	Result    scoring.ScoringResult
}

// Config tunes LLM plan generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// DisplayName returns the child's name, or a neutral fallback when the
// parent skipped that step.
func (in Input) DisplayName() string {
	if in.ChildName != "" {
		return in.ChildName
	}
	return "your child"
}

// homeInstruments returns the owned instruments as display names,
// excluding the "not yet" option.
func homeInstruments(answers quiz.AnswerSet) []string {
	var out []string
	for _, tok := range answers.Tokens(quiz.KeyInstrumentsAtHome) {
		switch tok {
		case quiz.TokenNoneYet:
			continue
		case "keyboard-piano":
			out = append(out, "keyboard/piano")
		case "guitar-ukulele":
			out = append(out, "guitar/ukulele")
		default:
			out = append(out, tok)
		}
	}
	return out
}
