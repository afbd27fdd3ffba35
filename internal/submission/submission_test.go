package submission

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bestlessonever/readiness/internal/insights"
	"github.com/bestlessonever/readiness/internal/plan"
	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/store"
)

// mockRepo is an in-memory SubmissionRepo.
type mockRepo struct {
	mu      sync.Mutex
	records map[string]*store.SubmissionRecord
	failAll bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[string]*store.SubmissionRecord)}
}

func (m *mockRepo) InsertPartial(_ context.Context, rec *store.SubmissionRecord) error {
	return m.insert(rec)
}

func (m *mockRepo) InsertComplete(_ context.Context, rec *store.SubmissionRecord) error {
	return m.insert(rec)
}

func (m *mockRepo) insert(rec *store.SubmissionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errors.New("repo down")
	}
	cp := *rec
	m.records[rec.ID] = &cp
	return nil
}

func (m *mockRepo) UpdateToComplete(_ context.Context, rec *store.SubmissionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errors.New("repo down")
	}
	if _, ok := m.records[rec.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *rec
	m.records[rec.ID] = &cp
	return nil
}

func (m *mockRepo) FetchByID(_ context.Context, id string) (*store.SubmissionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (m *mockRepo) ListRecent(_ context.Context, status string, limit int) ([]*store.SubmissionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*store.SubmissionRecord
	for _, rec := range m.records {
		if status == "" || rec.Status == status {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockRepo) ListStalePartials(_ context.Context, cutoff time.Time) ([]*store.PartialLead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*store.PartialLead
	for _, rec := range m.records {
		if rec.Status == "partial" && rec.DigestSentAt == nil {
			out = append(out, &store.PartialLead{
				ID: rec.ID, Email: rec.Email, VariantID: rec.VariantID, LastStep: rec.LastStep,
			})
		}
	}
	return out, nil
}

func (m *mockRepo) MarkDigested(_ context.Context, ids []string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		if rec, ok := m.records[id]; ok {
			t := at
			rec.DigestSentAt = &t
		}
	}
	return nil
}

func (m *mockRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// mockNotifier records deliveries and signals on each one.
type mockNotifier struct {
	mu            sync.Mutex
	leadAlerts    []string
	confirmations []string
	digests       [][]*store.PartialLead
	digestErr     error
	done          chan struct{}
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{done: make(chan struct{}, 8)}
}

func (m *mockNotifier) SendLeadAlert(_ context.Context, sub *Submission) error {
	m.mu.Lock()
	m.leadAlerts = append(m.leadAlerts, sub.ID)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func (m *mockNotifier) SendParentConfirmation(_ context.Context, sub *Submission) error {
	m.mu.Lock()
	m.confirmations = append(m.confirmations, sub.ID)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func (m *mockNotifier) SendPartialDigest(_ context.Context, leads []*store.PartialLead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.digestErr != nil {
		return m.digestErr
	}
	m.digests = append(m.digests, leads)
	return nil
}

func (m *mockNotifier) waitDeliveries(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-m.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, n)
		}
	}
}

func completeAnswers() quiz.AnswerSet {
	a := quiz.NewAnswerSet()
	a.Set(quiz.KeyParentName, "Sarah")
	a.Set(quiz.KeyPitch, "yes-on-tune")
	a.Set(quiz.KeyRhythm, "yes")
	a.Set(quiz.KeyMemory, "yes")
	a.Set(quiz.KeyEmotionalResponse, "yes")
	a.Set(quiz.KeyEmail, "sarah@example.com")
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
	a.Set(quiz.KeyChildName, "Emma")
	return a
}

func newTestManager(repo store.SubmissionRepo, notifier Notifier) *Manager {
	return NewManager(
		quiz.Default(),
		repo,
		plan.NewService(nil, plan.DefaultConfig()),
		insights.NewService(nil, insights.DefaultConfig()),
		notifier,
	)
}

func TestCapturePartial(t *testing.T) {
	repo := newMockRepo()
	m := newTestManager(repo, nil)

	answers := quiz.NewAnswerSet()
	answers.Set(quiz.KeyParentName, "Sarah")
	answers.Set(quiz.KeyEmail, "sarah@example.com")

	sub, err := m.CapturePartial(context.Background(), answers, 6)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if sub.Status != StatusPartial {
		t.Errorf("status = %q", sub.Status)
	}
	if !uuidPattern.MatchString(sub.ID) {
		t.Errorf("expected UUID, got %q", sub.ID)
	}
	if repo.count() != 1 {
		t.Errorf("records = %d, want 1", repo.count())
	}
}

func TestCapturePartialRejectsBadEmail(t *testing.T) {
	m := newTestManager(newMockRepo(), nil)

	answers := quiz.NewAnswerSet()
	answers.Set(quiz.KeyEmail, "not-an-email")

	if _, err := m.CapturePartial(context.Background(), answers, 6); err == nil {
		t.Fatal("expected error for invalid email")
	}
}

func TestFinalizePromotesPartialInPlace(t *testing.T) {
	repo := newMockRepo()
	m := newTestManager(repo, nil)
	ctx := context.Background()

	partial, err := m.CapturePartial(ctx, completeAnswers(), 6)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}

	sub, err := m.Finalize(ctx, partial.ID, completeAnswers())
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if sub.ID != partial.ID {
		t.Errorf("ID changed: %q -> %q", partial.ID, sub.ID)
	}
	if sub.Status != StatusComplete {
		t.Errorf("status = %q", sub.Status)
	}
	if repo.count() != 1 {
		t.Errorf("records = %d, want 1 (promoted in place)", repo.count())
	}
	if sub.Result.Score == 0 {
		t.Error("expected non-zero score for strong answers")
	}
	if len(sub.ActionPlan) == 0 {
		t.Error("expected an action plan")
	}
	if sub.PlanSource != plan.SourceFallback {
		t.Errorf("plan source = %q, want fallback with nil provider", sub.PlanSource)
	}
	if sub.Insights == nil {
		t.Error("expected insights")
	}
}

func TestFinalizeWithoutPartialUsesLocalID(t *testing.T) {
	repo := newMockRepo()
	m := newTestManager(repo, nil)

	sub, err := m.Finalize(context.Background(), "", completeAnswers())
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !strings.HasPrefix(sub.ID, "mrs_") {
		t.Errorf("expected local ID, got %q", sub.ID)
	}
	if repo.count() != 1 {
		t.Errorf("records = %d, want 1", repo.count())
	}
}

func TestFinalizeRejectsIncompleteAnswers(t *testing.T) {
	m := newTestManager(newMockRepo(), nil)

	answers := quiz.NewAnswerSet()
	answers.Set(quiz.KeyEmail, "sarah@example.com")

	if _, err := m.Finalize(context.Background(), "", answers); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestFinalizeSurvivesPersistenceFailure(t *testing.T) {
	repo := newMockRepo()
	repo.failAll = true
	m := newTestManager(repo, nil)

	sub, err := m.Finalize(context.Background(), "", completeAnswers())
	if err != nil {
		t.Fatalf("finalize should not fail on persistence error: %v", err)
	}
	if sub.Result.Score == 0 {
		t.Error("expected scored in-memory submission")
	}
}

func TestFinalizeNotifies(t *testing.T) {
	notifier := newMockNotifier()
	m := newTestManager(newMockRepo(), notifier)

	sub, err := m.Finalize(context.Background(), "", completeAnswers())
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	notifier.waitDeliveries(t, 2)
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.leadAlerts) != 1 || notifier.leadAlerts[0] != sub.ID {
		t.Errorf("lead alerts = %v", notifier.leadAlerts)
	}
	if len(notifier.confirmations) != 1 {
		t.Errorf("confirmations = %v", notifier.confirmations)
	}
}

func TestGetReturnsCompleteOnly(t *testing.T) {
	repo := newMockRepo()
	m := newTestManager(repo, nil)
	ctx := context.Background()

	partial, err := m.CapturePartial(ctx, completeAnswers(), 6)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}

	// Partial is invisible through Get.
	if _, err := m.Get(ctx, partial.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get partial: err = %v, want ErrNotFound", err)
	}

	done, err := m.Finalize(ctx, partial.ID, completeAnswers())
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	got, err := m.Get(ctx, done.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Result.Score != done.Result.Score {
		t.Errorf("score = %d, want %d", got.Result.Score, done.Result.Score)
	}
	if got.Insights == nil || got.Insights.Superpower == "" {
		t.Error("insights lost in round trip")
	}
}

func TestGetRejectsMalformedID(t *testing.T) {
	m := newTestManager(newMockRepo(), nil)

	for _, id := range []string{"", "abc", "1 OR 1=1", "mrs_x_y"} {
		if _, err := m.Get(context.Background(), id); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%q) err = %v, want ErrNotFound", id, err)
		}
	}
}

func TestValidID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
		NewLocalID(),
	}
	for _, id := range valid {
		if !ValidID(id) {
			t.Errorf("ValidID(%q) = false, want true", id)
		}
	}

	invalid := []string{
		"",
		"123e4567",
		"mrs_abc_1234567",
		"mrs_1700000000000_TOOLONG1",
		"not-a-uuid-at-all-here-nope",
	}
	for _, id := range invalid {
		if ValidID(id) {
			t.Errorf("ValidID(%q) = true, want false", id)
		}
	}
}

func TestReconcilerSendsDigestOnce(t *testing.T) {
	repo := newMockRepo()
	notifier := newMockNotifier()
	m := newTestManager(repo, nil)
	ctx := context.Background()

	answers := quiz.NewAnswerSet()
	answers.Set(quiz.KeyEmail, "a@example.com")
	if _, err := m.CapturePartial(ctx, answers, 6); err != nil {
		t.Fatalf("capture: %v", err)
	}

	r := NewReconciler(repo, notifier)
	n, err := r.Run(ctx, 0)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 1 {
		t.Errorf("reported = %d, want 1", n)
	}
	if len(notifier.digests) != 1 {
		t.Fatalf("digests = %d, want 1", len(notifier.digests))
	}

	// Second run reports nothing new.
	n, err = r.Run(ctx, 0)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if n != 0 {
		t.Errorf("second run reported = %d, want 0", n)
	}
	if len(notifier.digests) != 1 {
		t.Errorf("digests after second run = %d, want 1", len(notifier.digests))
	}
}

func TestReconcilerEmptyIsNoop(t *testing.T) {
	notifier := newMockNotifier()
	r := NewReconciler(newMockRepo(), notifier)

	n, err := r.Run(context.Background(), time.Hour)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 0 {
		t.Errorf("reported = %d, want 0", n)
	}
	if len(notifier.digests) != 0 {
		t.Error("digest sent despite no stale partials")
	}
}

func TestReconcilerKeepsUnmarkedOnSendFailure(t *testing.T) {
	repo := newMockRepo()
	notifier := newMockNotifier()
	notifier.digestErr = errors.New("email down")
	m := newTestManager(repo, nil)
	ctx := context.Background()

	answers := quiz.NewAnswerSet()
	answers.Set(quiz.KeyEmail, "a@example.com")
	if _, err := m.CapturePartial(ctx, answers, 6); err != nil {
		t.Fatalf("capture: %v", err)
	}

	r := NewReconciler(repo, notifier)
	if _, err := r.Run(ctx, 0); err == nil {
		t.Fatal("expected send error")
	}

	// Lead is still pending for the next run.
	leads, err := repo.ListStalePartials(ctx, time.Now())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(leads) != 1 {
		t.Errorf("pending = %d, want 1", len(leads))
	}
}
