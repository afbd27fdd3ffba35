// Package submission manages quiz leads through their lifecycle: a
// partial is captured the moment the parent's email is known, then
// promoted in place to a complete submission with scoring results when
// the quiz finishes. Partials that never finish are swept into a team
// digest.
package submission

import (
	"context"
	"time"

	"github.com/bestlessonever/readiness/internal/insights"
	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/scoring"
	"github.com/bestlessonever/readiness/internal/store"
)

// Status is the lifecycle state of a submission. Transitions are
// one-directional: partial → complete.
type Status string

const (
	StatusPartial  Status = "partial"
	StatusComplete Status = "complete"
)

// DefaultSource is the campaign label attached to every lead.
const DefaultSource = "Music Readiness Score"

// Submission is a quiz lead, partial or complete.
type Submission struct {
	ID         string
	Status     Status
	ParentName string
	Email      string
	ChildName  string
	Source     string
	VariantID  string
	LastStep   int
	Answers    quiz.AnswerSet
	Result     scoring.ScoringResult
	ActionPlan []string
	PlanSource string
	Insights   *insights.Insights
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Notifier delivers outbound email for submissions. Implementations
// live in the notify package; the interface sits here so the manager
// does not depend on a concrete transport.
type Notifier interface {
	// SendLeadAlert notifies the team about a completed submission.
	SendLeadAlert(ctx context.Context, sub *Submission) error

	// SendParentConfirmation sends the results email to the parent.
	SendParentConfirmation(ctx context.Context, sub *Submission) error

	// SendPartialDigest sends the team a digest of stale partials.
	SendPartialDigest(ctx context.Context, leads []*store.PartialLead) error
}

func (s *Submission) toRecord() *store.SubmissionRecord {
	return &store.SubmissionRecord{
		ID:                   s.ID,
		Status:               string(s.Status),
		Email:                s.Email,
		ParentName:           s.ParentName,
		ChildName:            s.ChildName,
		Source:               s.Source,
		VariantID:            s.VariantID,
		LastStep:             s.LastStep,
		Answers:              s.Answers,
		Score:                s.Result.Score,
		Band:                 string(s.Result.Band),
		BandLabel:            s.Result.BandLabel,
		BandDescription:      s.Result.BandDescription,
		PrimaryInstrument:    s.Result.PrimaryInstrument,
		SecondaryInstruments: s.Result.SecondaryInstruments,
		ActionPlan:           s.ActionPlan,
		PlanSource:           s.PlanSource,
		Insights:             s.Insights.ToMap(),
	}
}

func fromRecord(rec *store.SubmissionRecord) *Submission {
	return &Submission{
		ID:         rec.ID,
		Status:     Status(rec.Status),
		ParentName: rec.ParentName,
		Email:      rec.Email,
		ChildName:  rec.ChildName,
		Source:     rec.Source,
		VariantID:  rec.VariantID,
		LastStep:   rec.LastStep,
		Answers:    quiz.AnswerSet(rec.Answers),
		Result: scoring.ScoringResult{
			Score:                rec.Score,
			Band:                 scoring.Band(rec.Band),
			BandLabel:            rec.BandLabel,
			BandDescription:      rec.BandDescription,
			PrimaryInstrument:    rec.PrimaryInstrument,
			SecondaryInstruments: rec.SecondaryInstruments,
		},
		ActionPlan: rec.ActionPlan,
		PlanSource: rec.PlanSource,
		Insights:   insights.FromMap(rec.Insights),
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
