package store

import (
	"context"
	"fmt"
	"time"

	"github.com/bestlessonever/readiness/ent"
	"github.com/bestlessonever/readiness/ent/submission"
)

// submissionRepo implements SubmissionRepo backed by ent.
type submissionRepo struct {
	client *ent.Client
}

func (r *submissionRepo) InsertPartial(ctx context.Context, rec *SubmissionRecord) error {
	_, err := r.client.Submission.Create().
		SetID(rec.ID).
		SetStatus(submission.StatusPartial).
		SetEmail(rec.Email).
		SetParentName(rec.ParentName).
		SetChildName(rec.ChildName).
		SetSource(rec.Source).
		SetVariantID(rec.VariantID).
		SetLastStep(rec.LastStep).
		SetAnswers(rec.Answers).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert partial submission: %w", err)
	}
	return nil
}

func (r *submissionRepo) UpdateToComplete(ctx context.Context, rec *SubmissionRecord) error {
	n, err := r.client.Submission.Update().
		Where(submission.IDEQ(rec.ID)).
		SetStatus(submission.StatusComplete).
		SetEmail(rec.Email).
		SetParentName(rec.ParentName).
		SetChildName(rec.ChildName).
		SetLastStep(rec.LastStep).
		SetAnswers(rec.Answers).
		SetScore(rec.Score).
		SetBand(rec.Band).
		SetBandLabel(rec.BandLabel).
		SetBandDescription(rec.BandDescription).
		SetPrimaryInstrument(rec.PrimaryInstrument).
		SetSecondaryInstruments(rec.SecondaryInstruments).
		SetActionPlan(rec.ActionPlan).
		SetPlanSource(rec.PlanSource).
		SetInsights(rec.Insights).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("promote submission %s: %w", rec.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("promote submission %s: %w", rec.ID, ErrNotFound)
	}
	return nil
}

func (r *submissionRepo) InsertComplete(ctx context.Context, rec *SubmissionRecord) error {
	_, err := r.client.Submission.Create().
		SetID(rec.ID).
		SetStatus(submission.StatusComplete).
		SetEmail(rec.Email).
		SetParentName(rec.ParentName).
		SetChildName(rec.ChildName).
		SetSource(rec.Source).
		SetVariantID(rec.VariantID).
		SetLastStep(rec.LastStep).
		SetAnswers(rec.Answers).
		SetScore(rec.Score).
		SetBand(rec.Band).
		SetBandLabel(rec.BandLabel).
		SetBandDescription(rec.BandDescription).
		SetPrimaryInstrument(rec.PrimaryInstrument).
		SetSecondaryInstruments(rec.SecondaryInstruments).
		SetActionPlan(rec.ActionPlan).
		SetPlanSource(rec.PlanSource).
		SetInsights(rec.Insights).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert complete submission: %w", err)
	}
	return nil
}

func (r *submissionRepo) FetchByID(ctx context.Context, id string) (*SubmissionRecord, error) {
	row, err := r.client.Submission.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch submission %s: %w", id, err)
	}
	return toRecord(row), nil
}

func (r *submissionRepo) ListRecent(ctx context.Context, status string, limit int) ([]*SubmissionRecord, error) {
	q := r.client.Submission.Query().
		Order(ent.Desc(submission.FieldCreatedAt))

	if status != "" {
		q = q.Where(submission.StatusEQ(submission.Status(status)))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	out := make([]*SubmissionRecord, len(rows))
	for i, row := range rows {
		out[i] = toRecord(row)
	}
	return out, nil
}

func (r *submissionRepo) ListStalePartials(ctx context.Context, cutoff time.Time) ([]*PartialLead, error) {
	rows, err := r.client.Submission.Query().
		Where(
			submission.StatusEQ(submission.StatusPartial),
			submission.CreatedAtLT(cutoff),
			submission.DigestSentAtIsNil(),
		).
		Order(ent.Asc(submission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stale partials: %w", err)
	}

	out := make([]*PartialLead, len(rows))
	for i, row := range rows {
		out[i] = &PartialLead{
			ID:        row.ID,
			Email:     row.Email,
			VariantID: row.VariantID,
			LastStep:  row.LastStep,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}

func (r *submissionRepo) MarkDigested(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.client.Submission.Update().
		Where(submission.IDIn(ids...)).
		SetDigestSentAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark digested: %w", err)
	}
	return nil
}

func toRecord(row *ent.Submission) *SubmissionRecord {
	return &SubmissionRecord{
		ID:                   row.ID,
		Status:               string(row.Status),
		Email:                row.Email,
		ParentName:           row.ParentName,
		ChildName:            row.ChildName,
		Source:               row.Source,
		VariantID:            row.VariantID,
		LastStep:             row.LastStep,
		Answers:              row.Answers,
		Score:                row.Score,
		Band:                 row.Band,
		BandLabel:            row.BandLabel,
		BandDescription:      row.BandDescription,
		PrimaryInstrument:    row.PrimaryInstrument,
		SecondaryInstruments: row.SecondaryInstruments,
		ActionPlan:           row.ActionPlan,
		PlanSource:           row.PlanSource,
		Insights:             row.Insights,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
		DigestSentAt:         row.DigestSentAt,
	}
}
