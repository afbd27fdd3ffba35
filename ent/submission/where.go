// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bestlessonever/readiness/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldEmail, v))
}

// ParentName applies equality check predicate on the "parent_name" field. It's identical to ParentNameEQ.
func ParentName(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldParentName, v))
}

// ChildName applies equality check predicate on the "child_name" field. It's identical to ChildNameEQ.
func ChildName(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldChildName, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSource, v))
}

// VariantID applies equality check predicate on the "variant_id" field. It's identical to VariantIDEQ.
func VariantID(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldVariantID, v))
}

// LastStep applies equality check predicate on the "last_step" field. It's identical to LastStepEQ.
func LastStep(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldLastStep, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldScore, v))
}

// Band applies equality check predicate on the "band" field. It's identical to BandEQ.
func Band(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBand, v))
}

// BandLabel applies equality check predicate on the "band_label" field. It's identical to BandLabelEQ.
func BandLabel(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBandLabel, v))
}

// BandDescription applies equality check predicate on the "band_description" field. It's identical to BandDescriptionEQ.
func BandDescription(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBandDescription, v))
}

// PrimaryInstrument applies equality check predicate on the "primary_instrument" field. It's identical to PrimaryInstrumentEQ.
func PrimaryInstrument(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldPrimaryInstrument, v))
}

// PlanSource applies equality check predicate on the "plan_source" field. It's identical to PlanSourceEQ.
func PlanSource(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldPlanSource, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// DigestSentAt applies equality check predicate on the "digest_sent_at" field. It's identical to DigestSentAtEQ.
func DigestSentAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDigestSentAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStatus, vs...))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldEmail, v))
}

// ParentNameEQ applies the EQ predicate on the "parent_name" field.
func ParentNameEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldParentName, v))
}

// ParentNameNEQ applies the NEQ predicate on the "parent_name" field.
func ParentNameNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldParentName, v))
}

// ParentNameIn applies the In predicate on the "parent_name" field.
func ParentNameIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldParentName, vs...))
}

// ParentNameNotIn applies the NotIn predicate on the "parent_name" field.
func ParentNameNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldParentName, vs...))
}

// ParentNameGT applies the GT predicate on the "parent_name" field.
func ParentNameGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldParentName, v))
}

// ParentNameGTE applies the GTE predicate on the "parent_name" field.
func ParentNameGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldParentName, v))
}

// ParentNameLT applies the LT predicate on the "parent_name" field.
func ParentNameLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldParentName, v))
}

// ParentNameLTE applies the LTE predicate on the "parent_name" field.
func ParentNameLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldParentName, v))
}

// ParentNameContains applies the Contains predicate on the "parent_name" field.
func ParentNameContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldParentName, v))
}

// ParentNameHasPrefix applies the HasPrefix predicate on the "parent_name" field.
func ParentNameHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldParentName, v))
}

// ParentNameHasSuffix applies the HasSuffix predicate on the "parent_name" field.
func ParentNameHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldParentName, v))
}

// ParentNameEqualFold applies the EqualFold predicate on the "parent_name" field.
func ParentNameEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldParentName, v))
}

// ParentNameContainsFold applies the ContainsFold predicate on the "parent_name" field.
func ParentNameContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldParentName, v))
}

// ChildNameEQ applies the EQ predicate on the "child_name" field.
func ChildNameEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldChildName, v))
}

// ChildNameNEQ applies the NEQ predicate on the "child_name" field.
func ChildNameNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldChildName, v))
}

// ChildNameIn applies the In predicate on the "child_name" field.
func ChildNameIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldChildName, vs...))
}

// ChildNameNotIn applies the NotIn predicate on the "child_name" field.
func ChildNameNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldChildName, vs...))
}

// ChildNameGT applies the GT predicate on the "child_name" field.
func ChildNameGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldChildName, v))
}

// ChildNameGTE applies the GTE predicate on the "child_name" field.
func ChildNameGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldChildName, v))
}

// ChildNameLT applies the LT predicate on the "child_name" field.
func ChildNameLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldChildName, v))
}

// ChildNameLTE applies the LTE predicate on the "child_name" field.
func ChildNameLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldChildName, v))
}

// ChildNameContains applies the Contains predicate on the "child_name" field.
func ChildNameContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldChildName, v))
}

// ChildNameHasPrefix applies the HasPrefix predicate on the "child_name" field.
func ChildNameHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldChildName, v))
}

// ChildNameHasSuffix applies the HasSuffix predicate on the "child_name" field.
func ChildNameHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldChildName, v))
}

// ChildNameEqualFold applies the EqualFold predicate on the "child_name" field.
func ChildNameEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldChildName, v))
}

// ChildNameContainsFold applies the ContainsFold predicate on the "child_name" field.
func ChildNameContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldChildName, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldSource, v))
}

// VariantIDEQ applies the EQ predicate on the "variant_id" field.
func VariantIDEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldVariantID, v))
}

// VariantIDNEQ applies the NEQ predicate on the "variant_id" field.
func VariantIDNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldVariantID, v))
}

// VariantIDIn applies the In predicate on the "variant_id" field.
func VariantIDIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldVariantID, vs...))
}

// VariantIDNotIn applies the NotIn predicate on the "variant_id" field.
func VariantIDNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldVariantID, vs...))
}

// VariantIDGT applies the GT predicate on the "variant_id" field.
func VariantIDGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldVariantID, v))
}

// VariantIDGTE applies the GTE predicate on the "variant_id" field.
func VariantIDGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldVariantID, v))
}

// VariantIDLT applies the LT predicate on the "variant_id" field.
func VariantIDLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldVariantID, v))
}

// VariantIDLTE applies the LTE predicate on the "variant_id" field.
func VariantIDLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldVariantID, v))
}

// VariantIDContains applies the Contains predicate on the "variant_id" field.
func VariantIDContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldVariantID, v))
}

// VariantIDHasPrefix applies the HasPrefix predicate on the "variant_id" field.
func VariantIDHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldVariantID, v))
}

// VariantIDHasSuffix applies the HasSuffix predicate on the "variant_id" field.
func VariantIDHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldVariantID, v))
}

// VariantIDEqualFold applies the EqualFold predicate on the "variant_id" field.
func VariantIDEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldVariantID, v))
}

// VariantIDContainsFold applies the ContainsFold predicate on the "variant_id" field.
func VariantIDContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldVariantID, v))
}

// LastStepEQ applies the EQ predicate on the "last_step" field.
func LastStepEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldLastStep, v))
}

// LastStepNEQ applies the NEQ predicate on the "last_step" field.
func LastStepNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldLastStep, v))
}

// LastStepIn applies the In predicate on the "last_step" field.
func LastStepIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldLastStep, vs...))
}

// LastStepNotIn applies the NotIn predicate on the "last_step" field.
func LastStepNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldLastStep, vs...))
}

// LastStepGT applies the GT predicate on the "last_step" field.
func LastStepGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldLastStep, v))
}

// LastStepGTE applies the GTE predicate on the "last_step" field.
func LastStepGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldLastStep, v))
}

// LastStepLT applies the LT predicate on the "last_step" field.
func LastStepLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldLastStep, v))
}

// LastStepLTE applies the LTE predicate on the "last_step" field.
func LastStepLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldLastStep, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldScore, v))
}

// BandEQ applies the EQ predicate on the "band" field.
func BandEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBand, v))
}

// BandNEQ applies the NEQ predicate on the "band" field.
func BandNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldBand, v))
}

// BandIn applies the In predicate on the "band" field.
func BandIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldBand, vs...))
}

// BandNotIn applies the NotIn predicate on the "band" field.
func BandNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldBand, vs...))
}

// BandGT applies the GT predicate on the "band" field.
func BandGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldBand, v))
}

// BandGTE applies the GTE predicate on the "band" field.
func BandGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldBand, v))
}

// BandLT applies the LT predicate on the "band" field.
func BandLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldBand, v))
}

// BandLTE applies the LTE predicate on the "band" field.
func BandLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldBand, v))
}

// BandContains applies the Contains predicate on the "band" field.
func BandContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldBand, v))
}

// BandHasPrefix applies the HasPrefix predicate on the "band" field.
func BandHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldBand, v))
}

// BandHasSuffix applies the HasSuffix predicate on the "band" field.
func BandHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldBand, v))
}

// BandEqualFold applies the EqualFold predicate on the "band" field.
func BandEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldBand, v))
}

// BandContainsFold applies the ContainsFold predicate on the "band" field.
func BandContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldBand, v))
}

// BandLabelEQ applies the EQ predicate on the "band_label" field.
func BandLabelEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBandLabel, v))
}

// BandLabelNEQ applies the NEQ predicate on the "band_label" field.
func BandLabelNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldBandLabel, v))
}

// BandLabelIn applies the In predicate on the "band_label" field.
func BandLabelIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldBandLabel, vs...))
}

// BandLabelNotIn applies the NotIn predicate on the "band_label" field.
func BandLabelNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldBandLabel, vs...))
}

// BandLabelGT applies the GT predicate on the "band_label" field.
func BandLabelGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldBandLabel, v))
}

// BandLabelGTE applies the GTE predicate on the "band_label" field.
func BandLabelGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldBandLabel, v))
}

// BandLabelLT applies the LT predicate on the "band_label" field.
func BandLabelLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldBandLabel, v))
}

// BandLabelLTE applies the LTE predicate on the "band_label" field.
func BandLabelLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldBandLabel, v))
}

// BandLabelContains applies the Contains predicate on the "band_label" field.
func BandLabelContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldBandLabel, v))
}

// BandLabelHasPrefix applies the HasPrefix predicate on the "band_label" field.
func BandLabelHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldBandLabel, v))
}

// BandLabelHasSuffix applies the HasSuffix predicate on the "band_label" field.
func BandLabelHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldBandLabel, v))
}

// BandLabelEqualFold applies the EqualFold predicate on the "band_label" field.
func BandLabelEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldBandLabel, v))
}

// BandLabelContainsFold applies the ContainsFold predicate on the "band_label" field.
func BandLabelContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldBandLabel, v))
}

// BandDescriptionEQ applies the EQ predicate on the "band_description" field.
func BandDescriptionEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBandDescription, v))
}

// BandDescriptionNEQ applies the NEQ predicate on the "band_description" field.
func BandDescriptionNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldBandDescription, v))
}

// BandDescriptionIn applies the In predicate on the "band_description" field.
func BandDescriptionIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldBandDescription, vs...))
}

// BandDescriptionNotIn applies the NotIn predicate on the "band_description" field.
func BandDescriptionNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldBandDescription, vs...))
}

// BandDescriptionGT applies the GT predicate on the "band_description" field.
func BandDescriptionGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldBandDescription, v))
}

// BandDescriptionGTE applies the GTE predicate on the "band_description" field.
func BandDescriptionGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldBandDescription, v))
}

// BandDescriptionLT applies the LT predicate on the "band_description" field.
func BandDescriptionLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldBandDescription, v))
}

// BandDescriptionLTE applies the LTE predicate on the "band_description" field.
func BandDescriptionLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldBandDescription, v))
}

// BandDescriptionContains applies the Contains predicate on the "band_description" field.
func BandDescriptionContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldBandDescription, v))
}

// BandDescriptionHasPrefix applies the HasPrefix predicate on the "band_description" field.
func BandDescriptionHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldBandDescription, v))
}

// BandDescriptionHasSuffix applies the HasSuffix predicate on the "band_description" field.
func BandDescriptionHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldBandDescription, v))
}

// BandDescriptionEqualFold applies the EqualFold predicate on the "band_description" field.
func BandDescriptionEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldBandDescription, v))
}

// BandDescriptionContainsFold applies the ContainsFold predicate on the "band_description" field.
func BandDescriptionContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldBandDescription, v))
}

// PrimaryInstrumentEQ applies the EQ predicate on the "primary_instrument" field.
func PrimaryInstrumentEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldPrimaryInstrument, v))
}

// PrimaryInstrumentNEQ applies the NEQ predicate on the "primary_instrument" field.
func PrimaryInstrumentNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldPrimaryInstrument, v))
}

// PrimaryInstrumentIn applies the In predicate on the "primary_instrument" field.
func PrimaryInstrumentIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldPrimaryInstrument, vs...))
}

// PrimaryInstrumentNotIn applies the NotIn predicate on the "primary_instrument" field.
func PrimaryInstrumentNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldPrimaryInstrument, vs...))
}

// PrimaryInstrumentGT applies the GT predicate on the "primary_instrument" field.
func PrimaryInstrumentGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldPrimaryInstrument, v))
}

// PrimaryInstrumentGTE applies the GTE predicate on the "primary_instrument" field.
func PrimaryInstrumentGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldPrimaryInstrument, v))
}

// PrimaryInstrumentLT applies the LT predicate on the "primary_instrument" field.
func PrimaryInstrumentLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldPrimaryInstrument, v))
}

// PrimaryInstrumentLTE applies the LTE predicate on the "primary_instrument" field.
func PrimaryInstrumentLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldPrimaryInstrument, v))
}

// PrimaryInstrumentContains applies the Contains predicate on the "primary_instrument" field.
func PrimaryInstrumentContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldPrimaryInstrument, v))
}

// PrimaryInstrumentHasPrefix applies the HasPrefix predicate on the "primary_instrument" field.
func PrimaryInstrumentHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldPrimaryInstrument, v))
}

// PrimaryInstrumentHasSuffix applies the HasSuffix predicate on the "primary_instrument" field.
func PrimaryInstrumentHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldPrimaryInstrument, v))
}

// PrimaryInstrumentEqualFold applies the EqualFold predicate on the "primary_instrument" field.
func PrimaryInstrumentEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldPrimaryInstrument, v))
}

// PrimaryInstrumentContainsFold applies the ContainsFold predicate on the "primary_instrument" field.
func PrimaryInstrumentContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldPrimaryInstrument, v))
}

// SecondaryInstrumentsIsNil applies the IsNil predicate on the "secondary_instruments" field.
func SecondaryInstrumentsIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldSecondaryInstruments))
}

// SecondaryInstrumentsNotNil applies the NotNil predicate on the "secondary_instruments" field.
func SecondaryInstrumentsNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldSecondaryInstruments))
}

// ActionPlanIsNil applies the IsNil predicate on the "action_plan" field.
func ActionPlanIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldActionPlan))
}

// ActionPlanNotNil applies the NotNil predicate on the "action_plan" field.
func ActionPlanNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldActionPlan))
}

// PlanSourceEQ applies the EQ predicate on the "plan_source" field.
func PlanSourceEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldPlanSource, v))
}

// PlanSourceNEQ applies the NEQ predicate on the "plan_source" field.
func PlanSourceNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldPlanSource, v))
}

// PlanSourceIn applies the In predicate on the "plan_source" field.
func PlanSourceIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldPlanSource, vs...))
}

// PlanSourceNotIn applies the NotIn predicate on the "plan_source" field.
func PlanSourceNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldPlanSource, vs...))
}

// PlanSourceGT applies the GT predicate on the "plan_source" field.
func PlanSourceGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldPlanSource, v))
}

// PlanSourceGTE applies the GTE predicate on the "plan_source" field.
func PlanSourceGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldPlanSource, v))
}

// PlanSourceLT applies the LT predicate on the "plan_source" field.
func PlanSourceLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldPlanSource, v))
}

// PlanSourceLTE applies the LTE predicate on the "plan_source" field.
func PlanSourceLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldPlanSource, v))
}

// PlanSourceContains applies the Contains predicate on the "plan_source" field.
func PlanSourceContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldPlanSource, v))
}

// PlanSourceHasPrefix applies the HasPrefix predicate on the "plan_source" field.
func PlanSourceHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldPlanSource, v))
}

// PlanSourceHasSuffix applies the HasSuffix predicate on the "plan_source" field.
func PlanSourceHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldPlanSource, v))
}

// PlanSourceEqualFold applies the EqualFold predicate on the "plan_source" field.
func PlanSourceEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldPlanSource, v))
}

// PlanSourceContainsFold applies the ContainsFold predicate on the "plan_source" field.
func PlanSourceContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldPlanSource, v))
}

// InsightsIsNil applies the IsNil predicate on the "insights" field.
func InsightsIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldInsights))
}

// InsightsNotNil applies the NotNil predicate on the "insights" field.
func InsightsNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldInsights))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldUpdatedAt, v))
}

// DigestSentAtEQ applies the EQ predicate on the "digest_sent_at" field.
func DigestSentAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDigestSentAt, v))
}

// DigestSentAtNEQ applies the NEQ predicate on the "digest_sent_at" field.
func DigestSentAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldDigestSentAt, v))
}

// DigestSentAtIn applies the In predicate on the "digest_sent_at" field.
func DigestSentAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldDigestSentAt, vs...))
}

// DigestSentAtNotIn applies the NotIn predicate on the "digest_sent_at" field.
func DigestSentAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldDigestSentAt, vs...))
}

// DigestSentAtGT applies the GT predicate on the "digest_sent_at" field.
func DigestSentAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldDigestSentAt, v))
}

// DigestSentAtGTE applies the GTE predicate on the "digest_sent_at" field.
func DigestSentAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldDigestSentAt, v))
}

// DigestSentAtLT applies the LT predicate on the "digest_sent_at" field.
func DigestSentAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldDigestSentAt, v))
}

// DigestSentAtLTE applies the LTE predicate on the "digest_sent_at" field.
func DigestSentAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldDigestSentAt, v))
}

// DigestSentAtIsNil applies the IsNil predicate on the "digest_sent_at" field.
func DigestSentAtIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldDigestSentAt))
}

// DigestSentAtNotNil applies the NotNil predicate on the "digest_sent_at" field.
func DigestSentAtNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldDigestSentAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
