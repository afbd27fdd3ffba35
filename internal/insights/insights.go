// Package insights generates the personalized profile shown on the
// results screen: strengths, learning style, performer type, and a fun
// superpower label. Like the action plan, it prefers the LLM and degrades
// to a deterministic profile built from the answers.
package insights

import (
	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/scoring"
)

// Insights is the personalized child profile.
type Insights struct {
	ProfileType         string   `json:"profileType"`
	Strengths           []string `json:"strengths"`
	LearningStyle       string   `json:"learningStyle"`
	PerformerType       string   `json:"performerType"`
	InstrumentReasoning string   `json:"instrumentReasoning"`
	Superpower          string   `json:"superpower"`
}

// Input carries everything insight generation needs.
type Input struct {
	ChildName string
	Answers   quiz.AnswerSet
	Result    scoring.ScoringResult
}

// DisplayName returns the child's name, or a neutral fallback when the
// parent skipped that step.
func (in Input) DisplayName() string {
	if in.ChildName != "" {
		return in.ChildName
	}
	return "Your child"
}

// ToMap converts the insights to a generic map for JSON persistence.
func (ins *Insights) ToMap() map[string]any {
	if ins == nil {
		return nil
	}
	strengths := make([]any, len(ins.Strengths))
	for i, s := range ins.Strengths {
		strengths[i] = s
	}
	return map[string]any{
		"profileType":         ins.ProfileType,
		"strengths":           strengths,
		"learningStyle":       ins.LearningStyle,
		"performerType":       ins.PerformerType,
		"instrumentReasoning": ins.InstrumentReasoning,
		"superpower":          ins.Superpower,
	}
}

// FromMap rebuilds insights from a persisted generic map. Returns nil
// for an empty map.
func FromMap(m map[string]any) *Insights {
	if len(m) == 0 {
		return nil
	}
	ins := &Insights{}
	if s, ok := m["profileType"].(string); ok {
		ins.ProfileType = s
	}
	if raw, ok := m["strengths"].([]any); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok {
				ins.Strengths = append(ins.Strengths, s)
			}
		}
	}
	if s, ok := m["learningStyle"].(string); ok {
		ins.LearningStyle = s
	}
	if s, ok := m["performerType"].(string); ok {
		ins.PerformerType = s
	}
	if s, ok := m["instrumentReasoning"].(string); ok {
		ins.InstrumentReasoning = s
	}
	if s, ok := m["superpower"].(string); ok {
		ins.Superpower = s
	}
	return ins
}
