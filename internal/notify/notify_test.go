package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/scoring"
	"github.com/bestlessonever/readiness/internal/store"
	"github.com/bestlessonever/readiness/internal/submission"
)

func sampleSubmission() *submission.Submission {
	answers := quiz.NewAnswerSet()
	answers.Set(quiz.KeyPitch, "yes-on-tune")
	answers.Set(quiz.KeyRhythm, "yes")
	answers.SetAll(quiz.KeyInstrumentsAtHome, []string{"keyboard-piano"})

	return &submission.Submission{
		ID:         "123e4567-e89b-12d3-a456-426614174000",
		Status:     submission.StatusComplete,
		ParentName: "Sarah",
		Email:      "sarah@example.com",
		ChildName:  "Emma",
		VariantID:  quiz.VariantClassic,
		Answers:    answers,
		Result: scoring.ScoringResult{
			Score:                78,
			BandLabel:            "Ready to Thrive",
			BandDescription:      "Excellent readiness.",
			PrimaryInstrument:    "Piano",
			SecondaryInstruments: []string{"Guitar", "Voice"},
		},
		ActionPlan: []string{"Play Emma's favorite song tonight.", "Book a trial lesson."},
	}
}

func TestLeadAlertBody(t *testing.T) {
	body := buildLeadAlertBody(sampleSubmission(), "https://example.com/results/abc")

	for _, want := range []string{
		"Sarah",
		"sarah@example.com",
		"Emma",
		"78/100",
		"Ready to Thrive",
		"Primary: Piano",
		"Yes, mostly on tune", // answer rendered as label, not token
		"Keyboard/Piano",
		"https://example.com/results/abc",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("lead alert missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "yes-on-tune") {
		t.Error("lead alert leaks raw answer tokens")
	}
}

func TestParentBody(t *testing.T) {
	body := buildParentBody(sampleSubmission(), "")

	for _, want := range []string{
		"Hi Sarah",
		"Emma's Music Readiness Score: 78 out of 100",
		"Best-fit instrument: Piano",
		"Play Emma's favorite song tonight.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("parent email missing %q:\n%s", want, body)
		}
	}
}

func TestParentBodyWithoutNames(t *testing.T) {
	sub := sampleSubmission()
	sub.ParentName = ""
	sub.ChildName = ""

	body := buildParentBody(sub, "")
	if !strings.Contains(body, "Hi there") {
		t.Errorf("expected neutral greeting:\n%s", body)
	}
	if !strings.Contains(body, "your child's Music Readiness Score") {
		t.Errorf("expected neutral child reference:\n%s", body)
	}
}

func TestDigestBody(t *testing.T) {
	created := time.Date(2026, 8, 27, 14, 30, 0, 0, time.UTC)
	leads := []*store.PartialLead{
		{ID: "a", Email: "one@example.com", VariantID: quiz.VariantClassic, LastStep: 6, CreatedAt: created},
		{ID: "b", Email: "two@example.com", VariantID: quiz.VariantSampler, LastStep: 2, CreatedAt: created},
	}

	body := buildDigestBody(leads)
	if !strings.Contains(body, "2 new leads") {
		t.Errorf("digest header wrong:\n%s", body)
	}
	if !strings.Contains(body, "one@example.com - step 6 of 17") {
		t.Errorf("classic lead line wrong:\n%s", body)
	}
	if !strings.Contains(body, "two@example.com - step 2 of 6") {
		t.Errorf("sampler lead line wrong:\n%s", body)
	}
}

func TestClientSendsThroughAPI(t *testing.T) {
	var got emailRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{
		APIKey:    "re_test",
		From:      "Quiz <info@example.com>",
		TeamEmail: "team@example.com",
	})
	// Point the client at the test server.
	c.http = srv.Client()
	c.endpoint = srv.URL

	err := c.send(context.Background(), "team@example.com", "subject", "body")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if auth != "Bearer re_test" {
		t.Errorf("auth header = %q", auth)
	}
	if got.Subject != "subject" || got.To[0] != "team@example.com" {
		t.Errorf("request = %+v", got)
	}
}

func TestClientSendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "bad"})
	c.http = srv.Client()
	c.endpoint = srv.URL

	err := c.send(context.Background(), "x@example.com", "s", "b")
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error should carry status: %v", err)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("READINESS_RESEND_API_KEY", "re_key")
	t.Setenv("READINESS_FROM_EMAIL", "")
	t.Setenv("READINESS_TEAM_EMAIL", "")

	cfg, ok := ConfigFromEnv()
	if !ok {
		t.Fatal("expected ok with API key set")
	}
	if cfg.From == "" || cfg.TeamEmail == "" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestConfigFromEnvMissingKey(t *testing.T) {
	t.Setenv("READINESS_RESEND_API_KEY", "")

	if _, ok := ConfigFromEnv(); ok {
		t.Fatal("expected ok=false without API key")
	}
}
