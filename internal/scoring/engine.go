package scoring

import "github.com/bestlessonever/readiness/internal/quiz"

// ScoringResult is the derived readiness assessment for one answer set.
// Never mutated after creation; recomputable idempotently.
type ScoringResult struct {
	Score                int      `json:"score"`
	Band                 Band     `json:"band"`
	BandLabel            string   `json:"bandLabel"`
	BandDescription      string   `json:"bandDescription"`
	PrimaryInstrument    string   `json:"primaryInstrument"`
	SecondaryInstruments []string `json:"secondaryInstruments"`
}

// CalculateReadinessScore computes the readiness score, band, and
// instrument recommendation for an answer set under the given variant's
// rubric. Pure and total: unknown or missing keys contribute zero delta
// rather than failing.
func CalculateReadinessScore(v *quiz.Variant, answers quiz.AnswerSet) ScoringResult {
	score := v.BaseScore

	weights := tables[v.ID]
	for key, byToken := range weights {
		if delta, ok := byToken[answers.Token(key)]; ok {
			score += delta
		}
	}

	if answers.OwnsInstrument() {
		score += homeBonus[v.ID]
	}

	score = clamp(score, 0, 100)

	band := BandFor(score)
	rec := RecommendInstruments(answers)

	return ScoringResult{
		Score:                score,
		Band:                 band,
		BandLabel:            band.Label(),
		BandDescription:      band.Description(),
		PrimaryInstrument:    rec.Primary,
		SecondaryInstruments: rec.Secondary,
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
