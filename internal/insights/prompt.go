package insights

import (
	"fmt"
	"strings"

	"github.com/bestlessonever/readiness/internal/quiz"
)

const insightsSystemPrompt = `You are a music learning specialist for Best Lesson Ever, a modern student-led music school. Your role is to generate deeply personalized, emotionally resonant insights about a child based on their quiz answers. These insights must feel specific, accurate, and screenshot-worthy. Write using a confident, warm, modern tone. No fluff, no generic statements.

You must generate:

1. Musical Profile Type (1 sentence that captures the child's musical personality)
2. Top Musical Strengths (2–3 bullet points highlighting specific abilities)
3. Learning Style Summary (1–2 sentences about how they learn best)
4. Performer Profile (1 sentence describing their performance personality)
5. Recommended Instrument Reasoning (2–3 sentences explaining why the recommended instrument fits them)
6. Musical Superpower (a short, fun label like 'Beat Explorer', 'Melody Maker', 'Rhythm Architect', 'Sound Seeker', 'Sonic Pioneer', etc.)

Rules:
- Always use the child's name
- Never talk about the parent
- Insights must be based ONLY on quiz data
- Keep everything positive, encouraging, and focused on potential`

func buildInsightsUserMessage(in Input) string {
	answers := in.Answers
	res := in.Result

	home := "None"
	var owned []string
	for _, tok := range answers.Tokens(quiz.KeyInstrumentsAtHome) {
		switch tok {
		case quiz.TokenNoneYet:
			continue
		case "keyboard-piano":
			owned = append(owned, "keyboard/piano")
		case "guitar-ukulele":
			owned = append(owned, "guitar/ukulele")
		default:
			owned = append(owned, tok)
		}
	}
	if len(owned) > 0 {
		home = strings.Join(owned, ", ")
	}

	return fmt.Sprintf(`Generate personalized insights for this child using their quiz submission data:

Child name: %s
Readiness level: %s (score %d)
Primary instrument recommendation: %s
Secondary instruments: %s

Traits:
- Pitch ability: %s
- Rhythm ability: %s
- Memory: %s
- Emotional response to music: %s
- Hums/sings during the day: %s
- Creates rhythms with objects: %s
- Dances to music: %s
- Performer style: %s
- Focus duration: %s
- Wants to learn: %s
- Drawn to instruments in public: %s
- Instruments at home: %s

Use the insight rules from the system prompt.`,
		in.DisplayName(),
		res.BandLabel,
		res.Score,
		res.PrimaryInstrument,
		strings.Join(res.SecondaryInstruments, ", "),
		formatPitch(answers.Token(quiz.KeyPitch)),
		formatRhythm(answers.Token(quiz.KeyRhythm)),
		formatMemory(answers.Token(quiz.KeyMemory)),
		formatEmotionalResponse(answers.Token(quiz.KeyEmotionalResponse)),
		formatHummingSinging(answers.Token(quiz.KeyHummingSinging)),
		formatRhythmPlay(answers.Token(quiz.KeyRhythmPlay)),
		formatDancing(answers.Token(quiz.KeyDancing)),
		formatPerformerStyle(answers.Token(quiz.KeyPerformerStyle)),
		formatFocusDuration(answers.Token(quiz.KeyFocusDuration)),
		formatWantsToLearn(answers.Token(quiz.KeyWantsToLearn)),
		formatDrawnToInstruments(answers.Token(quiz.KeyDrawnToInstruments)),
		home,
	)
}

func formatPitch(value string) string {
	switch value {
	case "yes-on-tune":
		return "Can sing on tune"
	case "sometimes":
		return "Sometimes on pitch"
	case "not-really":
		return "Still developing pitch"
	default:
		return value
	}
}

func formatRhythm(value string) string {
	switch value {
	case "yes":
		return "Can follow a beat"
	case "sometimes":
		return "Sometimes follows rhythm"
	case "not-yet":
		return "Still developing rhythm"
	default:
		return value
	}
}

func formatMemory(value string) string {
	switch value {
	case "yes":
		return "Remembers melodies well"
	case "sometimes":
		return "Sometimes remembers tunes"
	case "not-really":
		return "Still developing musical memory"
	default:
		return value
	}
}

func formatEmotionalResponse(value string) string {
	switch value {
	case "yes":
		return "Strong emotional connection to music"
	case "sometimes":
		return "Sometimes responds emotionally to music"
	case "not-noticed":
		return "Subtle emotional response to music"
	default:
		return value
	}
}

func formatHummingSinging(value string) string {
	switch value {
	case "all-the-time":
		return "Constantly hums and sings"
	case "sometimes":
		return "Sometimes hums or sings"
	case "rarely":
		return "Rarely hums or sings"
	default:
		return value
	}
}

func formatRhythmPlay(value string) string {
	switch value {
	case "constantly":
		return "Always tapping or drumming"
	case "sometimes":
		return "Sometimes creates rhythms"
	case "rarely":
		return "Rarely creates rhythms"
	default:
		return value
	}
}

func formatDancing(value string) string {
	switch value {
	case "yes":
		return "Loves to dance"
	case "sometimes":
		return "Sometimes dances"
	case "no":
		return "Prefers not to dance"
	default:
		return value
	}
}

func formatPerformerStyle(value string) string {
	switch value {
	case "loves-showing":
		return "Natural performer, loves the spotlight"
	case "shy-but-tries":
		return "Shy but willing to try"
	case "nervous":
		return "Gets nervous performing"
	default:
		return value
	}
}

func formatFocusDuration(value string) string {
	switch value {
	case "20-plus":
		return "20+ minutes of focus"
	case "10-20":
		return "10-20 minutes of focus"
	case "5-10":
		return "5-10 minutes of focus"
	case "under-5":
		return "Under 5 minutes of focus"
	default:
		return value
	}
}

func formatWantsToLearn(value string) string {
	switch value {
	case "yes":
		return "Actively wants to learn"
	case "not-yet":
		return "Not sure yet"
	case "no":
		return "Not currently interested"
	default:
		return value
	}
}

func formatDrawnToInstruments(value string) string {
	switch value {
	case "yes":
		return "Fascinated by instruments"
	case "sometimes":
		return "Sometimes curious about instruments"
	case "not-really":
		return "Not particularly drawn to instruments"
	default:
		return value
	}
}
