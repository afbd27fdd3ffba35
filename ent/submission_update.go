// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/bestlessonever/readiness/ent/predicate"
	"github.com/bestlessonever/readiness/ent/submission"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdate) SetStatus(v submission.Status) *SubmissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStatus(v *submission.Status) *SubmissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *SubmissionUpdate) SetEmail(v string) *SubmissionUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableEmail(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetParentName sets the "parent_name" field.
func (_u *SubmissionUpdate) SetParentName(v string) *SubmissionUpdate {
	_u.mutation.SetParentName(v)
	return _u
}

// SetNillableParentName sets the "parent_name" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableParentName(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetParentName(*v)
	}
	return _u
}

// SetChildName sets the "child_name" field.
func (_u *SubmissionUpdate) SetChildName(v string) *SubmissionUpdate {
	_u.mutation.SetChildName(v)
	return _u
}

// SetNillableChildName sets the "child_name" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableChildName(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetChildName(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SubmissionUpdate) SetSource(v string) *SubmissionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSource(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetVariantID sets the "variant_id" field.
func (_u *SubmissionUpdate) SetVariantID(v string) *SubmissionUpdate {
	_u.mutation.SetVariantID(v)
	return _u
}

// SetNillableVariantID sets the "variant_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableVariantID(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetVariantID(*v)
	}
	return _u
}

// SetLastStep sets the "last_step" field.
func (_u *SubmissionUpdate) SetLastStep(v int) *SubmissionUpdate {
	_u.mutation.ResetLastStep()
	_u.mutation.SetLastStep(v)
	return _u
}

// SetNillableLastStep sets the "last_step" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableLastStep(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetLastStep(*v)
	}
	return _u
}

// AddLastStep adds value to the "last_step" field.
func (_u *SubmissionUpdate) AddLastStep(v int) *SubmissionUpdate {
	_u.mutation.AddLastStep(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *SubmissionUpdate) SetAnswers(v map[string][]string) *SubmissionUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SubmissionUpdate) SetScore(v int) *SubmissionUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableScore(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SubmissionUpdate) AddScore(v int) *SubmissionUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetBand sets the "band" field.
func (_u *SubmissionUpdate) SetBand(v string) *SubmissionUpdate {
	_u.mutation.SetBand(v)
	return _u
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableBand(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetBand(*v)
	}
	return _u
}

// SetBandLabel sets the "band_label" field.
func (_u *SubmissionUpdate) SetBandLabel(v string) *SubmissionUpdate {
	_u.mutation.SetBandLabel(v)
	return _u
}

// SetNillableBandLabel sets the "band_label" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableBandLabel(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetBandLabel(*v)
	}
	return _u
}

// SetBandDescription sets the "band_description" field.
func (_u *SubmissionUpdate) SetBandDescription(v string) *SubmissionUpdate {
	_u.mutation.SetBandDescription(v)
	return _u
}

// SetNillableBandDescription sets the "band_description" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableBandDescription(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetBandDescription(*v)
	}
	return _u
}

// SetPrimaryInstrument sets the "primary_instrument" field.
func (_u *SubmissionUpdate) SetPrimaryInstrument(v string) *SubmissionUpdate {
	_u.mutation.SetPrimaryInstrument(v)
	return _u
}

// SetNillablePrimaryInstrument sets the "primary_instrument" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillablePrimaryInstrument(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetPrimaryInstrument(*v)
	}
	return _u
}

// SetSecondaryInstruments sets the "secondary_instruments" field.
func (_u *SubmissionUpdate) SetSecondaryInstruments(v []string) *SubmissionUpdate {
	_u.mutation.SetSecondaryInstruments(v)
	return _u
}

// AppendSecondaryInstruments appends value to the "secondary_instruments" field.
func (_u *SubmissionUpdate) AppendSecondaryInstruments(v []string) *SubmissionUpdate {
	_u.mutation.AppendSecondaryInstruments(v)
	return _u
}

// ClearSecondaryInstruments clears the value of the "secondary_instruments" field.
func (_u *SubmissionUpdate) ClearSecondaryInstruments() *SubmissionUpdate {
	_u.mutation.ClearSecondaryInstruments()
	return _u
}

// SetActionPlan sets the "action_plan" field.
func (_u *SubmissionUpdate) SetActionPlan(v []string) *SubmissionUpdate {
	_u.mutation.SetActionPlan(v)
	return _u
}

// AppendActionPlan appends value to the "action_plan" field.
func (_u *SubmissionUpdate) AppendActionPlan(v []string) *SubmissionUpdate {
	_u.mutation.AppendActionPlan(v)
	return _u
}

// ClearActionPlan clears the value of the "action_plan" field.
func (_u *SubmissionUpdate) ClearActionPlan() *SubmissionUpdate {
	_u.mutation.ClearActionPlan()
	return _u
}

// SetPlanSource sets the "plan_source" field.
func (_u *SubmissionUpdate) SetPlanSource(v string) *SubmissionUpdate {
	_u.mutation.SetPlanSource(v)
	return _u
}

// SetNillablePlanSource sets the "plan_source" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillablePlanSource(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetPlanSource(*v)
	}
	return _u
}

// SetInsights sets the "insights" field.
func (_u *SubmissionUpdate) SetInsights(v map[string]interface{}) *SubmissionUpdate {
	_u.mutation.SetInsights(v)
	return _u
}

// ClearInsights clears the value of the "insights" field.
func (_u *SubmissionUpdate) ClearInsights() *SubmissionUpdate {
	_u.mutation.ClearInsights()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdate) SetUpdatedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDigestSentAt sets the "digest_sent_at" field.
func (_u *SubmissionUpdate) SetDigestSentAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetDigestSentAt(v)
	return _u
}

// SetNillableDigestSentAt sets the "digest_sent_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableDigestSentAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetDigestSentAt(*v)
	}
	return _u
}

// ClearDigestSentAt clears the value of the "digest_sent_at" field.
func (_u *SubmissionUpdate) ClearDigestSentAt() *SubmissionUpdate {
	_u.mutation.ClearDigestSentAt()
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(submission.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentName(); ok {
		_spec.SetField(submission.FieldParentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildName(); ok {
		_spec.SetField(submission.FieldChildName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(submission.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariantID(); ok {
		_spec.SetField(submission.FieldVariantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastStep(); ok {
		_spec.SetField(submission.FieldLastStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStep(); ok {
		_spec.AddField(submission.FieldLastStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(submission.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(submission.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(submission.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Band(); ok {
		_spec.SetField(submission.FieldBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.BandLabel(); ok {
		_spec.SetField(submission.FieldBandLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.BandDescription(); ok {
		_spec.SetField(submission.FieldBandDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimaryInstrument(); ok {
		_spec.SetField(submission.FieldPrimaryInstrument, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecondaryInstruments(); ok {
		_spec.SetField(submission.FieldSecondaryInstruments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSecondaryInstruments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldSecondaryInstruments, value)
		})
	}
	if _u.mutation.SecondaryInstrumentsCleared() {
		_spec.ClearField(submission.FieldSecondaryInstruments, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActionPlan(); ok {
		_spec.SetField(submission.FieldActionPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldActionPlan, value)
		})
	}
	if _u.mutation.ActionPlanCleared() {
		_spec.ClearField(submission.FieldActionPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlanSource(); ok {
		_spec.SetField(submission.FieldPlanSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Insights(); ok {
		_spec.SetField(submission.FieldInsights, field.TypeJSON, value)
	}
	if _u.mutation.InsightsCleared() {
		_spec.ClearField(submission.FieldInsights, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DigestSentAt(); ok {
		_spec.SetField(submission.FieldDigestSentAt, field.TypeTime, value)
	}
	if _u.mutation.DigestSentAtCleared() {
		_spec.ClearField(submission.FieldDigestSentAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdateOne) SetStatus(v submission.Status) *SubmissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStatus(v *submission.Status) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *SubmissionUpdateOne) SetEmail(v string) *SubmissionUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableEmail(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetParentName sets the "parent_name" field.
func (_u *SubmissionUpdateOne) SetParentName(v string) *SubmissionUpdateOne {
	_u.mutation.SetParentName(v)
	return _u
}

// SetNillableParentName sets the "parent_name" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableParentName(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetParentName(*v)
	}
	return _u
}

// SetChildName sets the "child_name" field.
func (_u *SubmissionUpdateOne) SetChildName(v string) *SubmissionUpdateOne {
	_u.mutation.SetChildName(v)
	return _u
}

// SetNillableChildName sets the "child_name" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableChildName(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetChildName(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SubmissionUpdateOne) SetSource(v string) *SubmissionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSource(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetVariantID sets the "variant_id" field.
func (_u *SubmissionUpdateOne) SetVariantID(v string) *SubmissionUpdateOne {
	_u.mutation.SetVariantID(v)
	return _u
}

// SetNillableVariantID sets the "variant_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableVariantID(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetVariantID(*v)
	}
	return _u
}

// SetLastStep sets the "last_step" field.
func (_u *SubmissionUpdateOne) SetLastStep(v int) *SubmissionUpdateOne {
	_u.mutation.ResetLastStep()
	_u.mutation.SetLastStep(v)
	return _u
}

// SetNillableLastStep sets the "last_step" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableLastStep(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetLastStep(*v)
	}
	return _u
}

// AddLastStep adds value to the "last_step" field.
func (_u *SubmissionUpdateOne) AddLastStep(v int) *SubmissionUpdateOne {
	_u.mutation.AddLastStep(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *SubmissionUpdateOne) SetAnswers(v map[string][]string) *SubmissionUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SubmissionUpdateOne) SetScore(v int) *SubmissionUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableScore(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SubmissionUpdateOne) AddScore(v int) *SubmissionUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetBand sets the "band" field.
func (_u *SubmissionUpdateOne) SetBand(v string) *SubmissionUpdateOne {
	_u.mutation.SetBand(v)
	return _u
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableBand(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetBand(*v)
	}
	return _u
}

// SetBandLabel sets the "band_label" field.
func (_u *SubmissionUpdateOne) SetBandLabel(v string) *SubmissionUpdateOne {
	_u.mutation.SetBandLabel(v)
	return _u
}

// SetNillableBandLabel sets the "band_label" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableBandLabel(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetBandLabel(*v)
	}
	return _u
}

// SetBandDescription sets the "band_description" field.
func (_u *SubmissionUpdateOne) SetBandDescription(v string) *SubmissionUpdateOne {
	_u.mutation.SetBandDescription(v)
	return _u
}

// SetNillableBandDescription sets the "band_description" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableBandDescription(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetBandDescription(*v)
	}
	return _u
}

// SetPrimaryInstrument sets the "primary_instrument" field.
func (_u *SubmissionUpdateOne) SetPrimaryInstrument(v string) *SubmissionUpdateOne {
	_u.mutation.SetPrimaryInstrument(v)
	return _u
}

// SetNillablePrimaryInstrument sets the "primary_instrument" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillablePrimaryInstrument(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetPrimaryInstrument(*v)
	}
	return _u
}

// SetSecondaryInstruments sets the "secondary_instruments" field.
func (_u *SubmissionUpdateOne) SetSecondaryInstruments(v []string) *SubmissionUpdateOne {
	_u.mutation.SetSecondaryInstruments(v)
	return _u
}

// AppendSecondaryInstruments appends value to the "secondary_instruments" field.
func (_u *SubmissionUpdateOne) AppendSecondaryInstruments(v []string) *SubmissionUpdateOne {
	_u.mutation.AppendSecondaryInstruments(v)
	return _u
}

// ClearSecondaryInstruments clears the value of the "secondary_instruments" field.
func (_u *SubmissionUpdateOne) ClearSecondaryInstruments() *SubmissionUpdateOne {
	_u.mutation.ClearSecondaryInstruments()
	return _u
}

// SetActionPlan sets the "action_plan" field.
func (_u *SubmissionUpdateOne) SetActionPlan(v []string) *SubmissionUpdateOne {
	_u.mutation.SetActionPlan(v)
	return _u
}

// AppendActionPlan appends value to the "action_plan" field.
func (_u *SubmissionUpdateOne) AppendActionPlan(v []string) *SubmissionUpdateOne {
	_u.mutation.AppendActionPlan(v)
	return _u
}

// ClearActionPlan clears the value of the "action_plan" field.
func (_u *SubmissionUpdateOne) ClearActionPlan() *SubmissionUpdateOne {
	_u.mutation.ClearActionPlan()
	return _u
}

// SetPlanSource sets the "plan_source" field.
func (_u *SubmissionUpdateOne) SetPlanSource(v string) *SubmissionUpdateOne {
	_u.mutation.SetPlanSource(v)
	return _u
}

// SetNillablePlanSource sets the "plan_source" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillablePlanSource(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetPlanSource(*v)
	}
	return _u
}

// SetInsights sets the "insights" field.
func (_u *SubmissionUpdateOne) SetInsights(v map[string]interface{}) *SubmissionUpdateOne {
	_u.mutation.SetInsights(v)
	return _u
}

// ClearInsights clears the value of the "insights" field.
func (_u *SubmissionUpdateOne) ClearInsights() *SubmissionUpdateOne {
	_u.mutation.ClearInsights()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdateOne) SetUpdatedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDigestSentAt sets the "digest_sent_at" field.
func (_u *SubmissionUpdateOne) SetDigestSentAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetDigestSentAt(v)
	return _u
}

// SetNillableDigestSentAt sets the "digest_sent_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableDigestSentAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetDigestSentAt(*v)
	}
	return _u
}

// ClearDigestSentAt clears the value of the "digest_sent_at" field.
func (_u *SubmissionUpdateOne) ClearDigestSentAt() *SubmissionUpdateOne {
	_u.mutation.ClearDigestSentAt()
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(submission.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentName(); ok {
		_spec.SetField(submission.FieldParentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildName(); ok {
		_spec.SetField(submission.FieldChildName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(submission.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariantID(); ok {
		_spec.SetField(submission.FieldVariantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastStep(); ok {
		_spec.SetField(submission.FieldLastStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStep(); ok {
		_spec.AddField(submission.FieldLastStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(submission.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(submission.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(submission.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Band(); ok {
		_spec.SetField(submission.FieldBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.BandLabel(); ok {
		_spec.SetField(submission.FieldBandLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.BandDescription(); ok {
		_spec.SetField(submission.FieldBandDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimaryInstrument(); ok {
		_spec.SetField(submission.FieldPrimaryInstrument, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecondaryInstruments(); ok {
		_spec.SetField(submission.FieldSecondaryInstruments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSecondaryInstruments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldSecondaryInstruments, value)
		})
	}
	if _u.mutation.SecondaryInstrumentsCleared() {
		_spec.ClearField(submission.FieldSecondaryInstruments, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActionPlan(); ok {
		_spec.SetField(submission.FieldActionPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldActionPlan, value)
		})
	}
	if _u.mutation.ActionPlanCleared() {
		_spec.ClearField(submission.FieldActionPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlanSource(); ok {
		_spec.SetField(submission.FieldPlanSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Insights(); ok {
		_spec.SetField(submission.FieldInsights, field.TypeJSON, value)
	}
	if _u.mutation.InsightsCleared() {
		_spec.ClearField(submission.FieldInsights, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DigestSentAt(); ok {
		_spec.SetField(submission.FieldDigestSentAt, field.TypeTime, value)
	}
	if _u.mutation.DigestSentAtCleared() {
		_spec.ClearField(submission.FieldDigestSentAt, field.TypeTime)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
