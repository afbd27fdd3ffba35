package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func partialRecord(id string) *SubmissionRecord {
	return &SubmissionRecord{
		ID:        id,
		Status:    "partial",
		Email:     "parent@example.com",
		Source:    "Music Readiness Score",
		VariantID: "classic",
		LastStep:  6,
		Answers: map[string][]string{
			"email": {"parent@example.com"},
			"pitch": {"yes-on-tune"},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestInsertPartialAndFetch(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()
	ctx := context.Background()

	if err := repo.InsertPartial(ctx, partialRecord("p-1")); err != nil {
		t.Fatalf("insert partial: %v", err)
	}

	rec, err := repo.FetchByID(ctx, "p-1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if rec.Status != "partial" {
		t.Errorf("status = %q, want partial", rec.Status)
	}
	if rec.Email != "parent@example.com" {
		t.Errorf("email = %q", rec.Email)
	}
	if got := rec.Answers["pitch"]; len(got) != 1 || got[0] != "yes-on-tune" {
		t.Errorf("answers[pitch] = %v", got)
	}
	if rec.DigestSentAt != nil {
		t.Error("expected nil digest_sent_at on fresh partial")
	}
}

func TestFetchMissingReturnsErrNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()

	_, err := repo.FetchByID(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateToCompletePromotesInPlace(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()
	ctx := context.Background()

	if err := repo.InsertPartial(ctx, partialRecord("p-2")); err != nil {
		t.Fatalf("insert partial: %v", err)
	}

	complete := partialRecord("p-2")
	complete.Status = "complete"
	complete.ChildName = "Maya"
	complete.LastStep = 17
	complete.Score = 84
	complete.Band = "ready_to_thrive"
	complete.BandLabel = "Ready to Thrive"
	complete.PrimaryInstrument = "Piano"
	complete.SecondaryInstruments = []string{"Voice", "Guitar"}
	complete.ActionPlan = []string{"Book a trial lesson"}
	complete.PlanSource = "fallback"

	if err := repo.UpdateToComplete(ctx, complete); err != nil {
		t.Fatalf("promote: %v", err)
	}

	rec, err := repo.FetchByID(ctx, "p-2")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if rec.Status != "complete" {
		t.Errorf("status = %q, want complete", rec.Status)
	}
	if rec.Score != 84 {
		t.Errorf("score = %d, want 84", rec.Score)
	}
	if len(rec.SecondaryInstruments) != 2 {
		t.Errorf("secondary instruments = %v", rec.SecondaryInstruments)
	}

	// Still exactly one row.
	count, err := s.Client().Submission.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}

func TestUpdateToCompleteMissingPartial(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()

	rec := partialRecord("ghost")
	rec.Status = "complete"
	err := repo.UpdateToComplete(context.Background(), rec)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListRecentFiltersByStatus(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()
	ctx := context.Background()

	if err := repo.InsertPartial(ctx, partialRecord("a")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	complete := partialRecord("b")
	complete.Status = "complete"
	complete.Score = 50
	if err := repo.InsertComplete(ctx, complete); err != nil {
		t.Fatalf("insert complete: %v", err)
	}

	all, err := repo.ListRecent(ctx, "", 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all = %d, want 2", len(all))
	}

	partials, err := repo.ListRecent(ctx, "partial", 0)
	if err != nil {
		t.Fatalf("list partials: %v", err)
	}
	if len(partials) != 1 || partials[0].ID != "a" {
		t.Errorf("partials = %v", partials)
	}
}

func TestStalePartialsAndDigest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()
	ctx := context.Background()

	if err := repo.InsertPartial(ctx, partialRecord("stale-1")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.InsertPartial(ctx, partialRecord("stale-2")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	cutoff := time.Now().Add(time.Hour)
	leads, err := repo.ListStalePartials(ctx, cutoff)
	if err != nil {
		t.Fatalf("list stale: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("stale = %d, want 2", len(leads))
	}

	now := time.Now()
	if err := repo.MarkDigested(ctx, []string{"stale-1", "stale-2"}, now); err != nil {
		t.Fatalf("mark digested: %v", err)
	}

	// Digested partials drop out of the stale query.
	leads, err = repo.ListStalePartials(ctx, cutoff)
	if err != nil {
		t.Fatalf("list stale after digest: %v", err)
	}
	if len(leads) != 0 {
		t.Errorf("stale after digest = %d, want 0", len(leads))
	}
}

func TestMarkDigestedEmptyIsNoop(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()

	if err := repo.MarkDigested(context.Background(), nil, time.Now()); err != nil {
		t.Fatalf("mark digested empty: %v", err)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "action-plan", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "insights", InputTokens: 200, OutputTokens: 80, LatencyMs: 1200, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "action-plan", InputTokens: 90, OutputTokens: 0, LatencyMs: 400, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("events = %d, want 3", len(got))
	}
	// Newest first.
	if got[0].Success {
		t.Error("expected newest event to be the failed one")
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "insights"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Purpose != "insights" {
		t.Errorf("filtered = %v", filtered)
	}
}

func TestGetLLMEventMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	e, err := repo.GetLLMEvent(context.Background(), 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e != nil {
		t.Errorf("expected nil event, got %+v", e)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "action-plan",
			InputTokens: 100, OutputTokens: 40, LatencyMs: 500, Success: true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("stats = %d, want 1", len(stats))
	}
	st := stats[0]
	if st.Purpose != "action-plan" {
		t.Errorf("purpose = %q", st.Purpose)
	}
	if st.Calls != 3 || st.InputTokens != 300 || st.OutputTokens != 120 {
		t.Errorf("aggregates = %+v", st)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"submissions", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
