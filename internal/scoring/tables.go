package scoring

import "github.com/bestlessonever/readiness/internal/quiz"

// weightTable maps question key → answer token → score delta. Deltas are
// authored per question from strongest positive signal to weakest;
// magnitude encodes the question's importance to readiness. The weakest
// token of each question carries a negative delta so that an all-minimum
// answer set falls below the base and clamps to zero.
type weightTable map[string]map[string]int

var classicWeights = weightTable{
	quiz.KeyPitch: {
		"yes-on-tune": 12,
		"sometimes":   6,
		"not-really":  -6,
	},
	quiz.KeyRhythm: {
		"yes":       12,
		"sometimes": 6,
		"not-yet":   -6,
	},
	quiz.KeyMemory: {
		"yes":        10,
		"sometimes":  5,
		"not-really": -5,
	},
	quiz.KeyEmotionalResponse: {
		"yes":         8,
		"sometimes":   4,
		"not-noticed": -4,
	},
	quiz.KeyHummingSinging: {
		"all-the-time": 8,
		"sometimes":    4,
		"rarely":       -4,
	},
	quiz.KeyRhythmPlay: {
		"constantly": 8,
		"sometimes":  4,
		"rarely":     -4,
	},
	quiz.KeyDancing: {
		"yes":       6,
		"sometimes": 3,
		"no":        -3,
	},
	quiz.KeyDrawnToInstruments: {
		"yes":        6,
		"sometimes":  3,
		"not-really": -3,
	},
	quiz.KeyHandlesCorrection: {
		"jumps-in":            8,
		"needs-encouragement": 4,
		"frustrated":          -4,
	},
	quiz.KeyPerformerStyle: {
		"loves-showing": 6,
		"shy-but-tries": 3,
		"nervous":       -3,
	},
	quiz.KeyFocusDuration: {
		"20-plus": 10,
		"10-20":   6,
		"5-10":    2,
		"under-5": -5,
	},
	quiz.KeyWantsToLearn: {
		"yes":     5,
		"not-yet": 2,
		"no":      -3,
	},
	quiz.KeyFavoriteSongBehavior: {
		"yes":       4,
		"sometimes": 2,
		"rarely":    -2,
	},
}

var samplerWeights = weightTable{
	quiz.KeyPitch: {
		"yes-on-tune": 20,
		"sometimes":   10,
		"not-really":  -8,
	},
	quiz.KeyRhythm: {
		"yes":       20,
		"sometimes": 10,
		"not-yet":   -8,
	},
	quiz.KeyWantsToLearn: {
		"yes":     25,
		"not-yet": 10,
		"no":      -14,
	},
}

// homeBonus is the flat delta applied when at least one real instrument
// is owned at home.
var homeBonus = map[string]int{
	quiz.VariantClassic: 3,
	quiz.VariantSampler: 5,
}

var tables = map[string]weightTable{
	quiz.VariantClassic: classicWeights,
	quiz.VariantSampler: samplerWeights,
}
