package scoring

import (
	"sort"

	"github.com/bestlessonever/readiness/internal/quiz"
)

// Instrument candidate keys.
const (
	Piano   = "piano"
	Guitar  = "guitar"
	Drums   = "drums"
	Voice   = "voice"
	Ukulele = "ukulele"
)

// TieOrder is the declared tie-break order for the recommender: when two
// candidates score equally, the one listed first wins. This is an
// explicit contract, not an artifact of map iteration.
var TieOrder = [5]string{Piano, Guitar, Drums, Voice, Ukulele}

var instrumentLabels = map[string]string{
	Piano:   "Piano",
	Guitar:  "Guitar",
	Drums:   "Drums",
	Voice:   "Voice",
	Ukulele: "Ukulele",
}

// Recommendation is a ranked instrument pick: one primary and always
// exactly two secondaries, all distinct.
type Recommendation struct {
	Primary   string
	Secondary []string
}

// RecommendInstruments ranks the fixed candidate set against the answer
// set. Increments are additive and commutative; application order never
// affects the totals. Piano is seeded as the general-purpose default.
func RecommendInstruments(answers quiz.AnswerSet) Recommendation {
	scores := map[string]int{
		Piano:   10,
		Guitar:  0,
		Drums:   0,
		Voice:   0,
		Ukulele: 0,
	}

	// Strong pitch and emotional response lean voice.
	if answers.Token(quiz.KeyPitch) == "yes-on-tune" {
		scores[Voice] += 20
		scores[Piano] += 10
	}
	if answers.Token(quiz.KeyEmotionalResponse) == "yes" {
		scores[Voice] += 10
		scores[Piano] += 5
	}

	// Rhythm play and dancing lean drums.
	if answers.Token(quiz.KeyRhythmPlay) == "constantly" {
		scores[Drums] += 20
		scores[Guitar] += 8
	}
	if answers.Token(quiz.KeyDancing) == "yes" {
		scores[Drums] += 15
	}

	if answers.Token(quiz.KeyHummingSinging) == "all-the-time" {
		scores[Voice] += 15
	}

	// Instrument curiosity and stated interest favor piano as the safe
	// starting point.
	if answers.Token(quiz.KeyDrawnToInstruments) == "yes" {
		scores[Piano] += 10
		scores[Guitar] += 8
	}
	if answers.Token(quiz.KeyWantsToLearn) == "yes" {
		scores[Piano] += 8
	}

	// Short focus favors instruments with quick wins.
	switch answers.Token(quiz.KeyFocusDuration) {
	case "under-5", "5-10":
		scores[Drums] += 10
		scores[Ukulele] += 8
		scores[Piano] += 5
	}

	if answers.Token(quiz.KeyPerformerStyle) == "loves-showing" {
		scores[Voice] += 10
		scores[Guitar] += 5
	}

	// Home ownership bonus. The guitar/ukulele household artifact maps
	// to both candidate instruments.
	for _, owned := range answers.Tokens(quiz.KeyInstrumentsAtHome) {
		switch owned {
		case "keyboard-piano":
			scores[Piano] += 15
		case "guitar-ukulele":
			scores[Guitar] += 15
			scores[Ukulele] += 15
		case "drums":
			scores[Drums] += 15
		}
	}

	ranked := append([]string(nil), TieOrder[:]...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	return Recommendation{
		Primary:   instrumentLabels[ranked[0]],
		Secondary: []string{instrumentLabels[ranked[1]], instrumentLabels[ranked[2]]},
	}
}
