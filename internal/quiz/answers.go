package quiz

import (
	"regexp"
	"strconv"
	"strings"
)

// Question keys shared across variants. A variant uses a subset of these.
const (
	KeyParentName           = "parentName"
	KeyEmail                = "email"
	KeyChildName            = "childName"
	KeyPhone                = "phone"
	KeyChildAge             = "childAge"
	KeyPitch                = "pitch"
	KeyRhythm               = "rhythm"
	KeyMemory               = "memory"
	KeyEmotionalResponse    = "emotionalResponse"
	KeyHummingSinging       = "hummingSinging"
	KeyRhythmPlay           = "rhythmPlay"
	KeyDancing              = "dancing"
	KeyDrawnToInstruments   = "drawnToInstruments"
	KeyHandlesCorrection    = "handlesCorrection"
	KeyPerformerStyle       = "performerStyle"
	KeyFocusDuration        = "focusDuration"
	KeyWantsToLearn         = "wantsToLearn"
	KeyFavoriteSongBehavior = "favoriteSongBehavior"
	KeyInstrumentsAtHome    = "instrumentsAtHome"
)

// TokenNoneYet is the sentinel multi-select token meaning "no instrument
// owned at home". A set containing only this token counts as empty.
const TokenNoneYet = "not-yet"

// AnswerSet maps question keys to answers. Single-choice and free-text
// answers are stored as one-element slices; multi-select answers hold
// every chosen token. An AnswerSet is only meaningful relative to the
// variant that produced it.
type AnswerSet map[string][]string

// NewAnswerSet returns an empty AnswerSet.
func NewAnswerSet() AnswerSet {
	return make(AnswerSet)
}

// Set replaces the answer for key with a single value.
func (a AnswerSet) Set(key, value string) {
	a[key] = []string{value}
}

// SetAll replaces the answer for key with the given token set.
func (a AnswerSet) SetAll(key string, values []string) {
	a[key] = append([]string(nil), values...)
}

// Toggle adds token to the set for key, or removes it if already present.
func (a AnswerSet) Toggle(key, token string) {
	current := a[key]
	for i, t := range current {
		if t == token {
			a[key] = append(current[:i], current[i+1:]...)
			return
		}
	}
	a[key] = append(current, token)
}

// Token returns the single answer value for key, or "" when unanswered.
func (a AnswerSet) Token(key string) string {
	if vs := a[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Text returns the trimmed free-text answer for key.
func (a AnswerSet) Text(key string) string {
	return strings.TrimSpace(a.Token(key))
}

// Int parses the answer for key as an integer.
func (a AnswerSet) Int(key string) (int, bool) {
	n, err := strconv.Atoi(a.Text(key))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Tokens returns the token set for key. Missing keys yield an empty set.
func (a AnswerSet) Tokens(key string) []string {
	return a[key]
}

// Has reports whether key has a non-empty answer.
func (a AnswerSet) Has(key string) bool {
	for _, v := range a[key] {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// OwnsInstrument reports whether the home-instrument answer names at
// least one real instrument, i.e. is non-empty and does not consist
// solely of the TokenNoneYet sentinel.
func (a AnswerSet) OwnsInstrument() bool {
	owned := a[KeyInstrumentsAtHome]
	if len(owned) == 0 {
		return false
	}
	for _, t := range owned {
		if t != TokenNoneYet {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, vs := range a {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address. This is the
// boundary check applied before a partial lead is captured; deliverability
// is not verified.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}
