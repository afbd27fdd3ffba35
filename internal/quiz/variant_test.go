package quiz

import (
	"strings"
	"testing"
)

// classicComplete returns a fully answered classic set.
func classicComplete() AnswerSet {
	a := NewAnswerSet()
	a.Set(KeyParentName, "Dana")
	a.Set(KeyPitch, "yes-on-tune")
	a.Set(KeyRhythm, "yes")
	a.Set(KeyMemory, "sometimes")
	a.Set(KeyEmotionalResponse, "yes")
	a.Set(KeyEmail, "dana@example.com")
	a.Set(KeyHummingSinging, "all-the-time")
	a.Set(KeyRhythmPlay, "sometimes")
	a.Set(KeyDancing, "yes")
	a.Set(KeyDrawnToInstruments, "yes")
	a.Set(KeyHandlesCorrection, "jumps-in")
	a.Set(KeyPerformerStyle, "shy-but-tries")
	a.Set(KeyFocusDuration, "10-20")
	a.Set(KeyWantsToLearn, "yes")
	a.Set(KeyFavoriteSongBehavior, "yes")
	a.SetAll(KeyInstrumentsAtHome, []string{"keyboard-piano"})
	a.Set(KeyChildName, "Maya")
	return a
}

func TestValidateCompleteAccepts(t *testing.T) {
	if err := Default().ValidateComplete(classicComplete()); err != nil {
		t.Fatalf("complete answer set rejected: %v", err)
	}
}

func TestValidateCompleteMissingKey(t *testing.T) {
	a := classicComplete()
	delete(a, KeyChildName)

	err := Default().ValidateComplete(a)
	if err == nil {
		t.Fatal("expected error for missing key")
	}
	if !strings.Contains(err.Error(), KeyChildName) {
		t.Errorf("error should name the missing key: %v", err)
	}
}

func TestValidateCompleteUnknownToken(t *testing.T) {
	a := classicComplete()
	a.Set(KeyPitch, "perfect-pitch")

	err := Default().ValidateComplete(a)
	if err == nil {
		t.Fatal("expected error for unknown token")
	}
	if !strings.Contains(err.Error(), KeyPitch) {
		t.Errorf("error should name the invalid key: %v", err)
	}
}

func TestValidateCompleteBadEmail(t *testing.T) {
	a := classicComplete()
	a.Set(KeyEmail, "not-an-email")

	if err := Default().ValidateComplete(a); err == nil {
		t.Fatal("expected error for malformed email")
	}
}

func TestValidateCompleteBadMultiToken(t *testing.T) {
	a := classicComplete()
	a.SetAll(KeyInstrumentsAtHome, []string{"keyboard-piano", "theremin"})

	if err := Default().ValidateComplete(a); err == nil {
		t.Fatal("expected error for unknown multi-select token")
	}
}

func TestValidateCompleteSamplerAgeBounds(t *testing.T) {
	v, err := Get(VariantSampler)
	if err != nil {
		t.Fatal(err)
	}

	a := NewAnswerSet()
	a.Set(KeyEmail, "dana@example.com")
	a.Set(KeyChildAge, "7")
	a.Set(KeyPitch, "sometimes")
	a.Set(KeyRhythm, "yes")
	a.Set(KeyWantsToLearn, "yes")
	a.SetAll(KeyInstrumentsAtHome, []string{TokenNoneYet})

	if err := v.ValidateComplete(a); err != nil {
		t.Fatalf("complete sampler set rejected: %v", err)
	}

	a.Set(KeyChildAge, "2")
	if err := v.ValidateComplete(a); err == nil {
		t.Fatal("expected error for age below minimum")
	}

	a.Set(KeyChildAge, "18")
	if err := v.ValidateComplete(a); err == nil {
		t.Fatal("expected error for age above maximum")
	}
}

func TestOptionLabelFallsBack(t *testing.T) {
	v := Default()
	if got := v.OptionLabel(KeyPitch, "yes-on-tune"); got != "Yes, mostly on tune" {
		t.Errorf("unexpected label %q", got)
	}
	if got := v.OptionLabel(KeyPitch, "mystery"); got != "mystery" {
		t.Errorf("unknown token should fall back to itself, got %q", got)
	}
	if got := v.OptionLabel("noSuchKey", "tok"); got != "tok" {
		t.Errorf("unknown key should fall back to the token, got %q", got)
	}
}

func TestRegistry(t *testing.T) {
	for _, id := range IDs() {
		v, err := Get(id)
		if err != nil {
			t.Fatalf("registered variant %s: %v", id, err)
		}
		if v.TotalSteps() == 0 {
			t.Errorf("variant %s has no questions", id)
		}
		if v.EmailStep < 1 || v.EmailStep > v.TotalSteps() {
			t.Errorf("variant %s email step %d out of range", id, v.EmailStep)
		}
	}

	if _, err := Get("deluxe"); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestVariantShapes(t *testing.T) {
	classic := Default()
	if classic.TotalSteps() != 17 {
		t.Errorf("classic should have 17 steps, has %d", classic.TotalSteps())
	}
	if classic.BaseScore != 50 {
		t.Errorf("classic base score should be 50, is %d", classic.BaseScore)
	}

	sampler, _ := Get(VariantSampler)
	if sampler.TotalSteps() != 6 {
		t.Errorf("sampler should have 6 steps, has %d", sampler.TotalSteps())
	}
	if sampler.BaseScore != 30 {
		t.Errorf("sampler base score should be 30, is %d", sampler.BaseScore)
	}
}
