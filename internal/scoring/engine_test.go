package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestlessonever/readiness/internal/quiz"
)

func classicMax() quiz.AnswerSet {
	a := quiz.NewAnswerSet()
	a.Set(quiz.KeyPitch, "yes-on-tune")
	a.Set(quiz.KeyRhythm, "yes")
	a.Set(quiz.KeyMemory, "yes")
	a.Set(quiz.KeyEmotionalResponse, "yes")
	a.Set(quiz.KeyHummingSinging, "all-the-time")
	a.Set(quiz.KeyRhythmPlay, "constantly")
	a.Set(quiz.KeyDancing, "yes")
	a.Set(quiz.KeyDrawnToInstruments, "yes")
	a.Set(quiz.KeyHandlesCorrection, "jumps-in")
	a.Set(quiz.KeyPerformerStyle, "loves-showing")
	a.Set(quiz.KeyFocusDuration, "20-plus")
	a.Set(quiz.KeyWantsToLearn, "yes")
	a.Set(quiz.KeyFavoriteSongBehavior, "yes")
	a.SetAll(quiz.KeyInstrumentsAtHome, []string{"keyboard-piano"})
	return a
}

func classicMin() quiz.AnswerSet {
	a := quiz.NewAnswerSet()
	a.Set(quiz.KeyPitch, "not-really")
	a.Set(quiz.KeyRhythm, "not-yet")
	a.Set(quiz.KeyMemory, "not-really")
	a.Set(quiz.KeyEmotionalResponse, "not-noticed")
	a.Set(quiz.KeyHummingSinging, "rarely")
	a.Set(quiz.KeyRhythmPlay, "rarely")
	a.Set(quiz.KeyDancing, "no")
	a.Set(quiz.KeyDrawnToInstruments, "not-really")
	a.Set(quiz.KeyHandlesCorrection, "frustrated")
	a.Set(quiz.KeyPerformerStyle, "nervous")
	a.Set(quiz.KeyFocusDuration, "under-5")
	a.Set(quiz.KeyWantsToLearn, "no")
	a.Set(quiz.KeyFavoriteSongBehavior, "rarely")
	a.SetAll(quiz.KeyInstrumentsAtHome, []string{quiz.TokenNoneYet})
	return a
}

func TestMaxAnswersClampTo100(t *testing.T) {
	res := CalculateReadinessScore(quiz.Default(), classicMax())

	assert.Equal(t, 100, res.Score)
	assert.Equal(t, BandReadyToThrive, res.Band)
	assert.Equal(t, "Ready to Thrive", res.BandLabel)
	assert.NotEmpty(t, res.BandDescription)
}

func TestMinAnswersClampToZero(t *testing.T) {
	res := CalculateReadinessScore(quiz.Default(), classicMin())

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, BandEmerging, res.Band)
}

func TestEmptyAnswersScoreBase(t *testing.T) {
	res := CalculateReadinessScore(quiz.Default(), quiz.NewAnswerSet())

	assert.Equal(t, 50, res.Score)
	assert.Equal(t, BandReadyWithSupport, res.Band)
}

func TestUnknownTokensContributeNothing(t *testing.T) {
	a := quiz.NewAnswerSet()
	a.Set(quiz.KeyPitch, "perfect-pitch")
	a.Set("mysteryKey", "yes")

	res := CalculateReadinessScore(quiz.Default(), a)
	assert.Equal(t, 50, res.Score)
}

func TestHomeInstrumentBonus(t *testing.T) {
	v := quiz.Default()

	a := quiz.NewAnswerSet()
	a.SetAll(quiz.KeyInstrumentsAtHome, []string{quiz.TokenNoneYet})
	without := CalculateReadinessScore(v, a)

	a.SetAll(quiz.KeyInstrumentsAtHome, []string{quiz.TokenNoneYet, "drums"})
	with := CalculateReadinessScore(v, a)

	assert.Equal(t, without.Score+3, with.Score)
}

func TestScoringIsIdempotent(t *testing.T) {
	a := classicMax()
	first := CalculateReadinessScore(quiz.Default(), a)
	second := CalculateReadinessScore(quiz.Default(), a)
	assert.Equal(t, first, second)
}

func TestSamplerMaxReaches100(t *testing.T) {
	v, err := quiz.Get(quiz.VariantSampler)
	require.NoError(t, err)

	a := quiz.NewAnswerSet()
	a.Set(quiz.KeyPitch, "yes-on-tune")
	a.Set(quiz.KeyRhythm, "yes")
	a.Set(quiz.KeyWantsToLearn, "yes")
	a.SetAll(quiz.KeyInstrumentsAtHome, []string{"keyboard-piano"})

	res := CalculateReadinessScore(v, a)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, BandReadyToThrive, res.Band)
}

func TestBandBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  Band
	}{
		{0, BandEmerging},
		{49, BandEmerging},
		{50, BandReadyWithSupport},
		{74, BandReadyWithSupport},
		{75, BandReadyToThrive},
		{100, BandReadyToThrive},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BandFor(tc.score), "score %d", tc.score)
	}
}
