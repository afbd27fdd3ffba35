package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bestlessonever/readiness/internal/quiz"
)

func TestDefaultRecommendationIsPiano(t *testing.T) {
	rec := RecommendInstruments(quiz.NewAnswerSet())

	assert.Equal(t, "Piano", rec.Primary)
	assert.Equal(t, []string{"Guitar", "Drums"}, rec.Secondary)
}

func TestVocalProfileLeansVoice(t *testing.T) {
	a := quiz.NewAnswerSet()
	a.Set(quiz.KeyPitch, "yes-on-tune")
	a.Set(quiz.KeyHummingSinging, "all-the-time")
	a.Set(quiz.KeyPerformerStyle, "loves-showing")

	rec := RecommendInstruments(a)
	assert.Equal(t, "Voice", rec.Primary)
}

func TestPitchAndEmotionAloneReachVoice(t *testing.T) {
	a := quiz.NewAnswerSet()
	a.Set(quiz.KeyPitch, "yes-on-tune")
	a.Set(quiz.KeyEmotionalResponse, "yes")

	// Voice 30 vs piano 25 (seed 10 + 10 + 5); no rhythm signal needed.
	rec := RecommendInstruments(a)
	assert.Equal(t, "Voice", rec.Primary)
}

func TestRhythmProfileLeansDrums(t *testing.T) {
	a := quiz.NewAnswerSet()
	a.Set(quiz.KeyRhythmPlay, "constantly")
	a.Set(quiz.KeyDancing, "yes")

	rec := RecommendInstruments(a)
	assert.Equal(t, "Drums", rec.Primary)
}

func TestHomeInstrumentPullsRecommendation(t *testing.T) {
	a := quiz.NewAnswerSet()
	a.SetAll(quiz.KeyInstrumentsAtHome, []string{"guitar-ukulele"})

	rec := RecommendInstruments(a)
	assert.Equal(t, "Guitar", rec.Primary)
	// Ukulele gets the same household bonus and outranks the piano seed.
	assert.Contains(t, rec.Secondary, "Ukulele")
}

func TestRecommendationShape(t *testing.T) {
	rec := RecommendInstruments(quiz.NewAnswerSet())

	assert.Len(t, rec.Secondary, 2)
	assert.NotEqual(t, rec.Primary, rec.Secondary[0])
	assert.NotEqual(t, rec.Primary, rec.Secondary[1])
	assert.NotEqual(t, rec.Secondary[0], rec.Secondary[1])
}

func TestTieBreakFollowsDeclaredOrder(t *testing.T) {
	// With no signals everything but piano ties at zero; the declared
	// order decides the secondaries.
	rec := RecommendInstruments(quiz.NewAnswerSet())
	assert.Equal(t, []string{"Guitar", "Drums"}, rec.Secondary)
}
