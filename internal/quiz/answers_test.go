package quiz

import (
	"reflect"
	"testing"
)

func TestSetAndToken(t *testing.T) {
	a := NewAnswerSet()
	a.Set(KeyPitch, "yes-on-tune")

	if got := a.Token(KeyPitch); got != "yes-on-tune" {
		t.Errorf("expected yes-on-tune, got %q", got)
	}
	if got := a.Token(KeyRhythm); got != "" {
		t.Errorf("expected empty token for unanswered key, got %q", got)
	}
}

func TestToggle(t *testing.T) {
	a := NewAnswerSet()
	a.Toggle(KeyInstrumentsAtHome, "drums")
	a.Toggle(KeyInstrumentsAtHome, "keyboard-piano")

	if got := a.Tokens(KeyInstrumentsAtHome); !reflect.DeepEqual(got, []string{"drums", "keyboard-piano"}) {
		t.Errorf("unexpected tokens after toggle on: %v", got)
	}

	a.Toggle(KeyInstrumentsAtHome, "drums")
	if got := a.Tokens(KeyInstrumentsAtHome); !reflect.DeepEqual(got, []string{"keyboard-piano"}) {
		t.Errorf("unexpected tokens after toggle off: %v", got)
	}
}

func TestHas(t *testing.T) {
	a := NewAnswerSet()
	if a.Has(KeyEmail) {
		t.Error("empty set should not have email")
	}

	a.Set(KeyEmail, "   ")
	if a.Has(KeyEmail) {
		t.Error("whitespace-only answer should not count as present")
	}

	a.Set(KeyEmail, "parent@example.com")
	if !a.Has(KeyEmail) {
		t.Error("expected email to be present")
	}
}

func TestOwnsInstrument(t *testing.T) {
	a := NewAnswerSet()
	if a.OwnsInstrument() {
		t.Error("empty set should not own an instrument")
	}

	a.SetAll(KeyInstrumentsAtHome, []string{TokenNoneYet})
	if a.OwnsInstrument() {
		t.Error("none-yet sentinel alone should not count as ownership")
	}

	a.SetAll(KeyInstrumentsAtHome, []string{TokenNoneYet, "drums"})
	if !a.OwnsInstrument() {
		t.Error("a real instrument alongside the sentinel should count")
	}
}

func TestInt(t *testing.T) {
	a := NewAnswerSet()
	a.Set(KeyChildAge, " 7 ")

	n, ok := a.Int(KeyChildAge)
	if !ok || n != 7 {
		t.Errorf("expected 7, got %d ok=%v", n, ok)
	}

	a.Set(KeyChildAge, "seven")
	if _, ok := a.Int(KeyChildAge); ok {
		t.Error("non-numeric answer should not parse")
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := NewAnswerSet()
	a.SetAll(KeyInstrumentsAtHome, []string{"drums"})

	b := a.Clone()
	b.Toggle(KeyInstrumentsAtHome, "keyboard-piano")

	if len(a.Tokens(KeyInstrumentsAtHome)) != 1 {
		t.Error("mutating the clone leaked into the original")
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"parent@example.com", "a.b+c@sub.domain.org", " spaced@example.com "}
	for _, s := range valid {
		if !ValidEmail(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{"", "no-at-sign", "two@@example.com", "no@tld", "sp ace@example.com"}
	for _, s := range invalid {
		if ValidEmail(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
