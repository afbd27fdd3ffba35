// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bestlessonever/readiness/ent/submission"
)

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *SubmissionCreate) SetStatus(v submission.Status) *SubmissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *SubmissionCreate) SetEmail(v string) *SubmissionCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetParentName sets the "parent_name" field.
func (_c *SubmissionCreate) SetParentName(v string) *SubmissionCreate {
	_c.mutation.SetParentName(v)
	return _c
}

// SetNillableParentName sets the "parent_name" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableParentName(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetParentName(*v)
	}
	return _c
}

// SetChildName sets the "child_name" field.
func (_c *SubmissionCreate) SetChildName(v string) *SubmissionCreate {
	_c.mutation.SetChildName(v)
	return _c
}

// SetNillableChildName sets the "child_name" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableChildName(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetChildName(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *SubmissionCreate) SetSource(v string) *SubmissionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableSource(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetVariantID sets the "variant_id" field.
func (_c *SubmissionCreate) SetVariantID(v string) *SubmissionCreate {
	_c.mutation.SetVariantID(v)
	return _c
}

// SetLastStep sets the "last_step" field.
func (_c *SubmissionCreate) SetLastStep(v int) *SubmissionCreate {
	_c.mutation.SetLastStep(v)
	return _c
}

// SetNillableLastStep sets the "last_step" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableLastStep(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetLastStep(*v)
	}
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *SubmissionCreate) SetAnswers(v map[string][]string) *SubmissionCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *SubmissionCreate) SetScore(v int) *SubmissionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableScore(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetBand sets the "band" field.
func (_c *SubmissionCreate) SetBand(v string) *SubmissionCreate {
	_c.mutation.SetBand(v)
	return _c
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableBand(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetBand(*v)
	}
	return _c
}

// SetBandLabel sets the "band_label" field.
func (_c *SubmissionCreate) SetBandLabel(v string) *SubmissionCreate {
	_c.mutation.SetBandLabel(v)
	return _c
}

// SetNillableBandLabel sets the "band_label" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableBandLabel(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetBandLabel(*v)
	}
	return _c
}

// SetBandDescription sets the "band_description" field.
func (_c *SubmissionCreate) SetBandDescription(v string) *SubmissionCreate {
	_c.mutation.SetBandDescription(v)
	return _c
}

// SetNillableBandDescription sets the "band_description" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableBandDescription(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetBandDescription(*v)
	}
	return _c
}

// SetPrimaryInstrument sets the "primary_instrument" field.
func (_c *SubmissionCreate) SetPrimaryInstrument(v string) *SubmissionCreate {
	_c.mutation.SetPrimaryInstrument(v)
	return _c
}

// SetNillablePrimaryInstrument sets the "primary_instrument" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillablePrimaryInstrument(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetPrimaryInstrument(*v)
	}
	return _c
}

// SetSecondaryInstruments sets the "secondary_instruments" field.
func (_c *SubmissionCreate) SetSecondaryInstruments(v []string) *SubmissionCreate {
	_c.mutation.SetSecondaryInstruments(v)
	return _c
}

// SetActionPlan sets the "action_plan" field.
func (_c *SubmissionCreate) SetActionPlan(v []string) *SubmissionCreate {
	_c.mutation.SetActionPlan(v)
	return _c
}

// SetPlanSource sets the "plan_source" field.
func (_c *SubmissionCreate) SetPlanSource(v string) *SubmissionCreate {
	_c.mutation.SetPlanSource(v)
	return _c
}

// SetNillablePlanSource sets the "plan_source" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillablePlanSource(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetPlanSource(*v)
	}
	return _c
}

// SetInsights sets the "insights" field.
func (_c *SubmissionCreate) SetInsights(v map[string]interface{}) *SubmissionCreate {
	_c.mutation.SetInsights(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionCreate) SetCreatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCreatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubmissionCreate) SetUpdatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableUpdatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDigestSentAt sets the "digest_sent_at" field.
func (_c *SubmissionCreate) SetDigestSentAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetDigestSentAt(v)
	return _c
}

// SetNillableDigestSentAt sets the "digest_sent_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableDigestSentAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetDigestSentAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubmissionCreate) SetID(v string) *SubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionCreate) defaults() {
	if _, ok := _c.mutation.ParentName(); !ok {
		v := submission.DefaultParentName
		_c.mutation.SetParentName(v)
	}
	if _, ok := _c.mutation.ChildName(); !ok {
		v := submission.DefaultChildName
		_c.mutation.SetChildName(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := submission.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.LastStep(); !ok {
		v := submission.DefaultLastStep
		_c.mutation.SetLastStep(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := submission.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Band(); !ok {
		v := submission.DefaultBand
		_c.mutation.SetBand(v)
	}
	if _, ok := _c.mutation.BandLabel(); !ok {
		v := submission.DefaultBandLabel
		_c.mutation.SetBandLabel(v)
	}
	if _, ok := _c.mutation.BandDescription(); !ok {
		v := submission.DefaultBandDescription
		_c.mutation.SetBandDescription(v)
	}
	if _, ok := _c.mutation.PrimaryInstrument(); !ok {
		v := submission.DefaultPrimaryInstrument
		_c.mutation.SetPrimaryInstrument(v)
	}
	if _, ok := _c.mutation.PlanSource(); !ok {
		v := submission.DefaultPlanSource
		_c.mutation.SetPlanSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := submission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Submission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Submission.email"`)}
	}
	if _, ok := _c.mutation.ParentName(); !ok {
		return &ValidationError{Name: "parent_name", err: errors.New(`ent: missing required field "Submission.parent_name"`)}
	}
	if _, ok := _c.mutation.ChildName(); !ok {
		return &ValidationError{Name: "child_name", err: errors.New(`ent: missing required field "Submission.child_name"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Submission.source"`)}
	}
	if _, ok := _c.mutation.VariantID(); !ok {
		return &ValidationError{Name: "variant_id", err: errors.New(`ent: missing required field "Submission.variant_id"`)}
	}
	if _, ok := _c.mutation.LastStep(); !ok {
		return &ValidationError{Name: "last_step", err: errors.New(`ent: missing required field "Submission.last_step"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "Submission.answers"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Submission.score"`)}
	}
	if _, ok := _c.mutation.Band(); !ok {
		return &ValidationError{Name: "band", err: errors.New(`ent: missing required field "Submission.band"`)}
	}
	if _, ok := _c.mutation.BandLabel(); !ok {
		return &ValidationError{Name: "band_label", err: errors.New(`ent: missing required field "Submission.band_label"`)}
	}
	if _, ok := _c.mutation.BandDescription(); !ok {
		return &ValidationError{Name: "band_description", err: errors.New(`ent: missing required field "Submission.band_description"`)}
	}
	if _, ok := _c.mutation.PrimaryInstrument(); !ok {
		return &ValidationError{Name: "primary_instrument", err: errors.New(`ent: missing required field "Submission.primary_instrument"`)}
	}
	if _, ok := _c.mutation.PlanSource(); !ok {
		return &ValidationError{Name: "plan_source", err: errors.New(`ent: missing required field "Submission.plan_source"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Submission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Submission.updated_at"`)}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Submission.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(submission.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.ParentName(); ok {
		_spec.SetField(submission.FieldParentName, field.TypeString, value)
		_node.ParentName = value
	}
	if value, ok := _c.mutation.ChildName(); ok {
		_spec.SetField(submission.FieldChildName, field.TypeString, value)
		_node.ChildName = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(submission.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.VariantID(); ok {
		_spec.SetField(submission.FieldVariantID, field.TypeString, value)
		_node.VariantID = value
	}
	if value, ok := _c.mutation.LastStep(); ok {
		_spec.SetField(submission.FieldLastStep, field.TypeInt, value)
		_node.LastStep = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(submission.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(submission.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Band(); ok {
		_spec.SetField(submission.FieldBand, field.TypeString, value)
		_node.Band = value
	}
	if value, ok := _c.mutation.BandLabel(); ok {
		_spec.SetField(submission.FieldBandLabel, field.TypeString, value)
		_node.BandLabel = value
	}
	if value, ok := _c.mutation.BandDescription(); ok {
		_spec.SetField(submission.FieldBandDescription, field.TypeString, value)
		_node.BandDescription = value
	}
	if value, ok := _c.mutation.PrimaryInstrument(); ok {
		_spec.SetField(submission.FieldPrimaryInstrument, field.TypeString, value)
		_node.PrimaryInstrument = value
	}
	if value, ok := _c.mutation.SecondaryInstruments(); ok {
		_spec.SetField(submission.FieldSecondaryInstruments, field.TypeJSON, value)
		_node.SecondaryInstruments = value
	}
	if value, ok := _c.mutation.ActionPlan(); ok {
		_spec.SetField(submission.FieldActionPlan, field.TypeJSON, value)
		_node.ActionPlan = value
	}
	if value, ok := _c.mutation.PlanSource(); ok {
		_spec.SetField(submission.FieldPlanSource, field.TypeString, value)
		_node.PlanSource = value
	}
	if value, ok := _c.mutation.Insights(); ok {
		_spec.SetField(submission.FieldInsights, field.TypeJSON, value)
		_node.Insights = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DigestSentAt(); ok {
		_spec.SetField(submission.FieldDigestSentAt, field.TypeTime, value)
		_node.DigestSentAt = &value
	}
	return _node, _spec
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
