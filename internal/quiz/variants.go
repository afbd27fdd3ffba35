package quiz

import "fmt"

// Variant IDs.
const (
	VariantClassic = "classic"
	VariantSampler = "sampler"
)

// DefaultVariantID is the variant used when none is selected explicitly.
const DefaultVariantID = VariantClassic

var registry = map[string]*Variant{
	VariantClassic: classicVariant,
	VariantSampler: samplerVariant,
}

// Get returns the variant with the given ID.
func Get(id string) (*Variant, error) {
	v, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown quiz variant %q", id)
	}
	return v, nil
}

// Default returns the default variant.
func Default() *Variant {
	return registry[DefaultVariantID]
}

// IDs lists the registered variant IDs.
func IDs() []string {
	return []string{VariantClassic, VariantSampler}
}

func threeWay(key, prompt, subtitle string, opts ...Option) Question {
	return Question{Key: key, Prompt: prompt, Subtitle: subtitle, Kind: SingleChoice, Options: opts, Required: true}
}

// classicVariant is the full 17-step questionnaire. A 15-step revision of
// this variant existed without the two contact screens; it shares this
// rubric and is not registered separately.
var classicVariant = &Variant{
	ID:        VariantClassic,
	Name:      "Music Readiness Score",
	BaseScore: 50,
	EmailStep: 6,
	Questions: []Question{
		{Key: KeyParentName, Prompt: "What's your name?", Subtitle: "Let's get started", Kind: FreeText, Required: true},
		threeWay(KeyPitch,
			"When your child sings, do they usually stay close to the melody?", "Musical aptitude",
			Option{"yes-on-tune", "Yes, mostly on tune"},
			Option{"sometimes", "Sometimes"},
			Option{"not-really", "Not really, but they love singing"}),
		threeWay(KeyRhythm,
			"Can your child keep a steady beat for about 10 seconds?", "Musical aptitude",
			Option{"yes", "Yes"},
			Option{"sometimes", "Sometimes"},
			Option{"not-yet", "Not yet"}),
		threeWay(KeyMemory,
			"Does your child remember songs easily after hearing them a few times?", "Musical aptitude",
			Option{"yes", "Yes"},
			Option{"sometimes", "Sometimes"},
			Option{"not-really", "Not really"}),
		threeWay(KeyEmotionalResponse,
			"Does your child react emotionally when they hear music?", "Musical aptitude",
			Option{"yes", "Yes"},
			Option{"sometimes", "Sometimes"},
			Option{"not-noticed", "Not that I've noticed"}),
		{Key: KeyEmail, Prompt: "Where should we send the results?", Subtitle: "Almost halfway there", Kind: FreeText, Required: true},
		threeWay(KeyHummingSinging,
			"Does your child hum or sing during the day?", "Musical behavior",
			Option{"all-the-time", "All the time"},
			Option{"sometimes", "Sometimes"},
			Option{"rarely", "Rarely"}),
		threeWay(KeyRhythmPlay,
			"Does your child tap, drum, or make rhythms with objects?", "Musical behavior",
			Option{"constantly", "Constantly"},
			Option{"sometimes", "Sometimes"},
			Option{"rarely", "Rarely"}),
		threeWay(KeyDancing,
			"Does your child dance when music comes on?", "Musical behavior",
			Option{"yes", "Yes"},
			Option{"sometimes", "Sometimes"},
			Option{"no", "No"}),
		threeWay(KeyDrawnToInstruments,
			"Is your child drawn to instruments when they see them?", "Musical behavior",
			Option{"yes", "Yes"},
			Option{"sometimes", "Sometimes"},
			Option{"not-really", "Not really"}),
		threeWay(KeyHandlesCorrection,
			"How does your child handle trying new things?", "Personality",
			Option{"jumps-in", "Jumps right in"},
			Option{"needs-encouragement", "Needs encouragement"},
			Option{"frustrated", "Gets frustrated easily"}),
		threeWay(KeyPerformerStyle,
			"How does your child feel about performing for others?", "Personality",
			Option{"loves-showing", "Loves showing off"},
			Option{"shy-but-tries", "Shy but tries"},
			Option{"nervous", "Very nervous"}),
		threeWay(KeyFocusDuration,
			"How long can your child focus on an activity they enjoy?", "Personality",
			Option{"20-plus", "20+ minutes"},
			Option{"10-20", "10-20 minutes"},
			Option{"5-10", "5-10 minutes"},
			Option{"under-5", "Under 5 minutes"}),
		threeWay(KeyWantsToLearn,
			"Has your child said they want to learn an instrument?", "Motivation",
			Option{"yes", "Yes"},
			Option{"not-yet", "Not yet"},
			Option{"no", "No"}),
		threeWay(KeyFavoriteSongBehavior,
			"Does your child ask to replay favorite songs over and over?", "Motivation",
			Option{"yes", "Yes"},
			Option{"sometimes", "Sometimes"},
			Option{"rarely", "Rarely"}),
		{Key: KeyInstrumentsAtHome, Prompt: "Which instruments do you have at home?", Subtitle: "Environment", Kind: MultiSelect, Required: true, Options: []Option{
			{"keyboard-piano", "Keyboard/Piano"},
			{"guitar-ukulele", "Guitar/Ukulele"},
			{"drums", "Drums"},
			{"other", "Other instrument"},
			{TokenNoneYet, "None yet"},
		}},
		{Key: KeyChildName, Prompt: "What's your child's name?", Subtitle: "Last step", Kind: FreeText, Required: true},
	},
}

// samplerVariant is the short 6-step lead magnet used for ad landing
// pages. Lower base, heavier per-question weights.
var samplerVariant = &Variant{
	ID:        VariantSampler,
	Name:      "Music Readiness Sampler",
	BaseScore: 30,
	EmailStep: 1,
	Questions: []Question{
		{Key: KeyEmail, Prompt: "Where should we send the results?", Subtitle: "Quick check", Kind: FreeText, Required: true},
		{Key: KeyChildAge, Prompt: "How old is your child?", Subtitle: "Quick check", Kind: Number, Required: true, Min: 3, Max: 17},
		threeWay(KeyPitch,
			"When your child sings, do they stay close to the melody?", "Quick check",
			Option{"yes-on-tune", "Yes, mostly on tune"},
			Option{"sometimes", "Sometimes"},
			Option{"not-really", "Not really"}),
		threeWay(KeyRhythm,
			"Can your child keep a steady beat?", "Quick check",
			Option{"yes", "Yes"},
			Option{"sometimes", "Sometimes"},
			Option{"not-yet", "Not yet"}),
		threeWay(KeyWantsToLearn,
			"Has your child asked to learn an instrument?", "Quick check",
			Option{"yes", "Yes"},
			Option{"not-yet", "Not yet"},
			Option{"no", "No"}),
		{Key: KeyInstrumentsAtHome, Prompt: "Which instruments do you have at home?", Subtitle: "Quick check", Kind: MultiSelect, Required: true, Options: []Option{
			{"keyboard-piano", "Keyboard/Piano"},
			{"guitar-ukulele", "Guitar/Ukulele"},
			{"drums", "Drums"},
			{"other", "Other instrument"},
			{TokenNoneYet, "None yet"},
		}},
	},
}
