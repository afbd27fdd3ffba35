package insights

import (
	"fmt"

	"github.com/bestlessonever/readiness/internal/quiz"
)

// DefaultInsights builds a deterministic profile from the answers. It is
// the fallback when no LLM provider is available or the call fails.
func DefaultInsights(in Input) *Insights {
	name := in.DisplayName()
	answers := in.Answers

	var strengths []string
	if answers.Token(quiz.KeyPitch) == "yes-on-tune" {
		strengths = append(strengths, fmt.Sprintf("%s has a natural ear for melody and pitch.", name))
	}
	if answers.Token(quiz.KeyRhythm) == "yes" {
		strengths = append(strengths, fmt.Sprintf("%s has strong rhythmic awareness.", name))
	}
	if answers.Token(quiz.KeyMemory) == "yes" {
		strengths = append(strengths, fmt.Sprintf("%s has excellent musical memory.", name))
	}
	if answers.Token(quiz.KeyHummingSinging) == "all-the-time" {
		strengths = append(strengths, fmt.Sprintf("%s naturally expresses through song.", name))
	}
	if answers.Token(quiz.KeyRhythmPlay) == "constantly" {
		strengths = append(strengths, fmt.Sprintf("%s is always making beats and rhythms.", name))
	}

	if len(strengths) < 2 {
		strengths = append(strengths,
			fmt.Sprintf("%s shows curiosity and openness to musical exploration.", name),
			fmt.Sprintf("%s has untapped potential waiting to be discovered.", name),
		)
	}
	if len(strengths) > 3 {
		strengths = strengths[:3]
	}

	performerType := fmt.Sprintf("%s is a thoughtful performer who prefers to observe before joining in.", name)
	switch answers.Token(quiz.KeyPerformerStyle) {
	case "loves-showing":
		performerType = fmt.Sprintf("%s is a natural showstopper who thrives in the spotlight.", name)
	case "shy-but-tries":
		performerType = fmt.Sprintf("%s is a courageous performer who pushes past comfort zones.", name)
	}

	superpower := "Sound Explorer"
	switch {
	case answers.Token(quiz.KeyHummingSinging) == "all-the-time" && answers.Token(quiz.KeyPitch) == "yes-on-tune":
		superpower = "Melody Maker"
	case answers.Token(quiz.KeyRhythmPlay) == "constantly" && answers.Token(quiz.KeyDancing) == "yes":
		superpower = "Beat Master"
	case answers.Token(quiz.KeyMemory) == "yes":
		superpower = "Tune Keeper"
	}

	return &Insights{
		ProfileType:   fmt.Sprintf("%s is a curious musical spirit with a unique way of connecting with sound and rhythm.", name),
		Strengths:     strengths,
		LearningStyle: fmt.Sprintf("%s learns best through hands-on exploration and playful experimentation, building confidence through discovery.", name),
		PerformerType: performerType,
		InstrumentReasoning: fmt.Sprintf(
			"%s is a great fit for %s because it matches their natural tendencies and interests. This instrument will allow them to express themselves while building foundational skills.",
			in.Result.PrimaryInstrument, name),
		Superpower: superpower,
	}
}
