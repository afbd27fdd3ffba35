package plan

import (
	"fmt"
	"strings"

	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/scoring"
)

// FallbackPlan builds a deterministic first-week action plan from the
// answers and scoring result. A fixed pipeline of conditional pushes:
// universal opener, home-instrument branch, band branch, then bonus items
// keyed off specific answers, capped at 6 entries. Always yields at least
// the opener and the band pair.
func FallbackPlan(in Input) []string {
	answers := in.Answers

	plan := []string{
		"Pick one performance video on YouTube and watch it together. Ask what they liked about it.",
	}

	if answers.OwnsInstrument() {
		plan = append(plan, fmt.Sprintf(
			"Let %s explore the %s with no pressure. Ask them to show you their favorite sound.",
			in.DisplayName(), strings.ToLower(in.Result.PrimaryInstrument)))
	} else {
		plan = append(plan,
			"Use a simple rhythm game: clap or tap along to a favorite song together.",
			"Look up 'beginner keyboard app' or 'rhythm games for kids' — free apps can spark interest.")
	}

	switch in.Result.Band {
	case scoring.BandEmerging:
		plan = append(plan,
			"Focus on fun over structure. Dance parties, singing in the car, or tapping on pots all count.",
			fmt.Sprintf("Ask %s to 'teach' you a song they know — even if it's made up!", in.DisplayName()))
	case scoring.BandReadyWithSupport:
		plan = append(plan,
			"Talk about what kind of teacher personality might click with your child (silly? calm? energetic?).",
			"Set a small goal together: 'By next month, let's learn one simple song.'")
	default:
		plan = append(plan,
			"Research local options and book a trial lesson to see how they respond to real instruction.",
			fmt.Sprintf("Ask %s what they'd like to learn to play — ownership boosts motivation.", in.DisplayName()))
	}

	if answers.Token(quiz.KeyFocusDuration) == "under-5" {
		plan = append(plan, "Keep any music activity under 5 minutes this week. Short wins build momentum.")
	}
	if answers.Token(quiz.KeyWantsToLearn) == "yes" {
		plan = append(plan, "Since they've expressed interest, ask what instrument or song sparked that curiosity.")
	}
	if answers.Token(quiz.KeyPerformerStyle) == "nervous" {
		plan = append(plan, "Create a safe space for musical play — no audience, no pressure, just exploration.")
	}
	if answers.Token(quiz.KeyDrawnToInstruments) == "yes" {
		plan = append(plan, "Next time you see an instrument in public, let them explore it for a few minutes.")
	}

	if len(plan) > 6 {
		plan = plan[:6]
	}
	return plan
}
