// Code generated by ent, DO NOT EDIT.

package submission

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the submission type in the database.
	Label = "submission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldParentName holds the string denoting the parent_name field in the database.
	FieldParentName = "parent_name"
	// FieldChildName holds the string denoting the child_name field in the database.
	FieldChildName = "child_name"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldVariantID holds the string denoting the variant_id field in the database.
	FieldVariantID = "variant_id"
	// FieldLastStep holds the string denoting the last_step field in the database.
	FieldLastStep = "last_step"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldBand holds the string denoting the band field in the database.
	FieldBand = "band"
	// FieldBandLabel holds the string denoting the band_label field in the database.
	FieldBandLabel = "band_label"
	// FieldBandDescription holds the string denoting the band_description field in the database.
	FieldBandDescription = "band_description"
	// FieldPrimaryInstrument holds the string denoting the primary_instrument field in the database.
	FieldPrimaryInstrument = "primary_instrument"
	// FieldSecondaryInstruments holds the string denoting the secondary_instruments field in the database.
	FieldSecondaryInstruments = "secondary_instruments"
	// FieldActionPlan holds the string denoting the action_plan field in the database.
	FieldActionPlan = "action_plan"
	// FieldPlanSource holds the string denoting the plan_source field in the database.
	FieldPlanSource = "plan_source"
	// FieldInsights holds the string denoting the insights field in the database.
	FieldInsights = "insights"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDigestSentAt holds the string denoting the digest_sent_at field in the database.
	FieldDigestSentAt = "digest_sent_at"
	// Table holds the table name of the submission in the database.
	Table = "submissions"
)

// Columns holds all SQL columns for submission fields.
var Columns = []string{
	FieldID,
	FieldStatus,
	FieldEmail,
	FieldParentName,
	FieldChildName,
	FieldSource,
	FieldVariantID,
	FieldLastStep,
	FieldAnswers,
	FieldScore,
	FieldBand,
	FieldBandLabel,
	FieldBandDescription,
	FieldPrimaryInstrument,
	FieldSecondaryInstruments,
	FieldActionPlan,
	FieldPlanSource,
	FieldInsights,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDigestSentAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultParentName holds the default value on creation for the "parent_name" field.
	DefaultParentName string
	// DefaultChildName holds the default value on creation for the "child_name" field.
	DefaultChildName string
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// DefaultLastStep holds the default value on creation for the "last_step" field.
	DefaultLastStep int
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultBand holds the default value on creation for the "band" field.
	DefaultBand string
	// DefaultBandLabel holds the default value on creation for the "band_label" field.
	DefaultBandLabel string
	// DefaultBandDescription holds the default value on creation for the "band_description" field.
	DefaultBandDescription string
	// DefaultPrimaryInstrument holds the default value on creation for the "primary_instrument" field.
	DefaultPrimaryInstrument string
	// DefaultPlanSource holds the default value on creation for the "plan_source" field.
	DefaultPlanSource string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusPartial  Status = "partial"
	StatusComplete Status = "complete"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPartial, StatusComplete:
		return nil
	default:
		return fmt.Errorf("submission: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Submission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByParentName orders the results by the parent_name field.
func ByParentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentName, opts...).ToFunc()
}

// ByChildName orders the results by the child_name field.
func ByChildName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildName, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByVariantID orders the results by the variant_id field.
func ByVariantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariantID, opts...).ToFunc()
}

// ByLastStep orders the results by the last_step field.
func ByLastStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastStep, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByBand orders the results by the band field.
func ByBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBand, opts...).ToFunc()
}

// ByBandLabel orders the results by the band_label field.
func ByBandLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBandLabel, opts...).ToFunc()
}

// ByBandDescription orders the results by the band_description field.
func ByBandDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBandDescription, opts...).ToFunc()
}

// ByPrimaryInstrument orders the results by the primary_instrument field.
func ByPrimaryInstrument(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryInstrument, opts...).ToFunc()
}

// ByPlanSource orders the results by the plan_source field.
func ByPlanSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanSource, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDigestSentAt orders the results by the digest_sent_at field.
func ByDigestSentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDigestSentAt, opts...).ToFunc()
}
