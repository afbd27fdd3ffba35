package submission

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bestlessonever/readiness/internal/insights"
	"github.com/bestlessonever/readiness/internal/plan"
	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/scoring"
	"github.com/bestlessonever/readiness/internal/store"
)

// ErrNotFound is returned by Get when no complete submission matches.
var ErrNotFound = errors.New("submission not found")

// notifyTimeout bounds the fire-and-forget email delivery.
const notifyTimeout = 30 * time.Second

// Manager drives the submission lifecycle for one quiz variant.
type Manager struct {
	variant     *quiz.Variant
	repo        store.SubmissionRepo
	plans       *plan.Service
	insightsSvc *insights.Service
	notifier    Notifier
	now         func() time.Time
}

// NewManager creates a Manager. The notifier may be nil, which disables
// outbound email; the repo may be nil, which makes finalize purely
// in-memory.
func NewManager(v *quiz.Variant, repo store.SubmissionRepo, plans *plan.Service, insightsSvc *insights.Service, notifier Notifier) *Manager {
	return &Manager{
		variant:     v,
		repo:        repo,
		plans:       plans,
		insightsSvc: insightsSvc,
		notifier:    notifier,
		now:         time.Now,
	}
}

// CapturePartial records a lead as soon as the email step is passed.
// The returned submission carries the UUID that Finalize later promotes
// in place.
func (m *Manager) CapturePartial(ctx context.Context, answers quiz.AnswerSet, lastStep int) (*Submission, error) {
	email := answers.Text(quiz.KeyEmail)
	if !quiz.ValidEmail(email) {
		return nil, fmt.Errorf("capture partial: invalid email %q", email)
	}

	sub := &Submission{
		ID:         uuid.NewString(),
		Status:     StatusPartial,
		ParentName: answers.Text(quiz.KeyParentName),
		Email:      email,
		Source:     DefaultSource,
		VariantID:  m.variant.ID,
		LastStep:   lastStep,
		Answers:    answers.Clone(),
		CreatedAt:  m.now(),
	}

	if m.repo != nil {
		if err := m.repo.InsertPartial(ctx, sub.toRecord()); err != nil {
			return nil, fmt.Errorf("capture partial: %w", err)
		}
	}
	return sub, nil
}

// Finalize scores the completed answer set, enriches it with an action
// plan and insights, persists it, and kicks off notifications. When
// partialID names a captured partial, that row is promoted in place;
// otherwise a new complete row with a local ID is inserted.
//
// Persistence failure is not fatal: the scored submission is still
// returned so the results screen always has something to show.
func (m *Manager) Finalize(ctx context.Context, partialID string, answers quiz.AnswerSet) (*Submission, error) {
	if err := m.variant.ValidateComplete(answers); err != nil {
		return nil, fmt.Errorf("finalize: %w", err)
	}

	result := scoring.CalculateReadinessScore(m.variant, answers)
	childName := answers.Text(quiz.KeyChildName)

	// Plan and insights are independent; generate them in parallel and
	// wait for both before persisting.
	var (
		wg         sync.WaitGroup
		bullets    []string
		planSource string
		ins        *insights.Insights
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		bullets, planSource = m.plans.Generate(ctx, plan.Input{
			ChildName: childName,
			Answers:   answers,
			Result:    result,
		})
	}()
	go func() {
		defer wg.Done()
		ins = m.insightsSvc.Generate(ctx, insights.Input{
			ChildName: childName,
			Answers:   answers,
			Result:    result,
		})
	}()
	wg.Wait()

	sub := &Submission{
		ID:         partialID,
		Status:     StatusComplete,
		ParentName: answers.Text(quiz.KeyParentName),
		Email:      answers.Text(quiz.KeyEmail),
		ChildName:  childName,
		Source:     DefaultSource,
		VariantID:  m.variant.ID,
		LastStep:   m.variant.TotalSteps(),
		Answers:    answers.Clone(),
		Result:     result,
		ActionPlan: bullets,
		PlanSource: planSource,
		Insights:   ins,
		CreatedAt:  m.now(),
	}
	if sub.ID == "" {
		sub.ID = NewLocalID()
	}

	m.persist(ctx, sub, partialID != "")
	m.notify(sub)

	return sub, nil
}

func (m *Manager) persist(ctx context.Context, sub *Submission, hadPartial bool) {
	if m.repo == nil {
		return
	}

	var err error
	if hadPartial {
		err = m.repo.UpdateToComplete(ctx, sub.toRecord())
		if errors.Is(err, store.ErrNotFound) {
			// Partial row vanished; fall back to a fresh insert.
			err = m.repo.InsertComplete(ctx, sub.toRecord())
		}
	} else {
		err = m.repo.InsertComplete(ctx, sub.toRecord())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist submission %s: %v\n", sub.ID, err)
	}
}

// notify delivers lead alert and parent confirmation in the background.
// Delivery failure never affects the submission.
func (m *Manager) notify(sub *Submission) {
	if m.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := m.notifier.SendLeadAlert(ctx, sub); err != nil {
			fmt.Fprintf(os.Stderr, "warning: lead alert for %s: %v\n", sub.ID, err)
		}
		if err := m.notifier.SendParentConfirmation(ctx, sub); err != nil {
			fmt.Fprintf(os.Stderr, "warning: parent confirmation for %s: %v\n", sub.ID, err)
		}
	}()
}

// Get returns the complete submission with the given ID. Malformed IDs
// and partials both come back as ErrNotFound, so callers can't probe
// lifecycle state.
func (m *Manager) Get(ctx context.Context, id string) (*Submission, error) {
	if !ValidID(id) {
		return nil, ErrNotFound
	}
	if m.repo == nil {
		return nil, ErrNotFound
	}

	rec, err := m.repo.FetchByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	if rec.Status != string(StatusComplete) {
		return nil, ErrNotFound
	}
	return fromRecord(rec), nil
}
