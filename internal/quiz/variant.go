package quiz

import (
	"fmt"
	"strings"
)

// QuestionKind describes how a question is asked and answered.
type QuestionKind int

const (
	// SingleChoice picks exactly one token from Options.
	SingleChoice QuestionKind = iota
	// MultiSelect picks any number of tokens from Options.
	MultiSelect
	// FreeText captures arbitrary text (names, email, phone).
	FreeText
	// Number captures a bounded integer.
	Number
)

// Option is one selectable answer: the stored token and its display label.
type Option struct {
	Token string
	Label string
}

// Question is a single quiz step.
type Question struct {
	Key      string
	Prompt   string
	Subtitle string
	Kind     QuestionKind
	Options  []Option // choice kinds only
	Required bool     // must be answered before final scoring
	Min, Max int      // Number kind bounds
}

// Variant is one versioned quiz configuration: its ordered question set,
// valid tokens, completion rule, and scoring base. Several variants
// coexist; callers select one explicitly.
type Variant struct {
	ID        string
	Name      string
	BaseScore int
	Questions []Question

	// EmailStep is the 1-based step at which contact info is complete
	// enough to capture a partial lead.
	EmailStep int
}

// TotalSteps returns the number of quiz steps.
func (v *Variant) TotalSteps() int {
	return len(v.Questions)
}

// Question returns the question for key.
func (v *Variant) Question(key string) (*Question, bool) {
	for i := range v.Questions {
		if v.Questions[i].Key == key {
			return &v.Questions[i], true
		}
	}
	return nil, false
}

// RequiredKeys lists every key the completion rule demands.
func (v *Variant) RequiredKeys() []string {
	var keys []string
	for _, q := range v.Questions {
		if q.Required {
			keys = append(keys, q.Key)
		}
	}
	return keys
}

// OptionLabel returns the display label for a token, falling back to the
// raw token for unknown values.
func (v *Variant) OptionLabel(key, token string) string {
	q, ok := v.Question(key)
	if !ok {
		return token
	}
	for _, o := range q.Options {
		if o.Token == token {
			return o.Label
		}
	}
	return token
}

// validToken reports whether token is an allowed answer for key.
func (v *Variant) validToken(q *Question, token string) bool {
	for _, o := range q.Options {
		if o.Token == token {
			return true
		}
	}
	return false
}

// ValidateComplete checks the completion rule: every required key present
// and non-empty, choice answers drawn from the declared token sets, and a
// syntactically valid email. Partial submissions are exempt from this
// check by never reaching it.
func (v *Variant) ValidateComplete(a AnswerSet) error {
	var missing, invalid []string
	for i := range v.Questions {
		q := &v.Questions[i]
		if !q.Required {
			continue
		}
		if !a.Has(q.Key) {
			missing = append(missing, q.Key)
			continue
		}
		switch q.Kind {
		case SingleChoice:
			if !v.validToken(q, a.Token(q.Key)) {
				invalid = append(invalid, q.Key)
			}
		case MultiSelect:
			for _, t := range a.Tokens(q.Key) {
				if !v.validToken(q, t) {
					invalid = append(invalid, q.Key)
					break
				}
			}
		case Number:
			n, ok := a.Int(q.Key)
			if !ok || n < q.Min || n > q.Max {
				invalid = append(invalid, q.Key)
			}
		}
	}
	if a.Has(KeyEmail) && !ValidEmail(a.Text(KeyEmail)) {
		invalid = append(invalid, KeyEmail)
	}
	if len(missing) == 0 && len(invalid) == 0 {
		return nil
	}
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "invalid: "+strings.Join(invalid, ", "))
	}
	return fmt.Errorf("answer set incomplete for variant %s (%s)", v.ID, strings.Join(parts, "; "))
}
