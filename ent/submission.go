// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bestlessonever/readiness/ent/submission"
)

// Submission is the model entity for the Submission schema.
type Submission struct {
	config `json:"-"`
	// ID of the ent.
	// UUID for partials, local mrs_* ID for offline completes
	ID string `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status submission.Status `json:"status,omitempty"`
	// Parent email captured mid-quiz
	Email string `json:"email,omitempty"`
	// ParentName holds the value of the "parent_name" field.
	ParentName string `json:"parent_name,omitempty"`
	// ChildName holds the value of the "child_name" field.
	ChildName string `json:"child_name,omitempty"`
	// Campaign label attached to every lead
	Source string `json:"source,omitempty"`
	// Quiz variant the answers belong to
	VariantID string `json:"variant_id,omitempty"`
	// Furthest step reached, for partial follow-up
	LastStep int `json:"last_step,omitempty"`
	// Answers holds the value of the "answers" field.
	Answers map[string][]string `json:"answers,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// Band holds the value of the "band" field.
	Band string `json:"band,omitempty"`
	// BandLabel holds the value of the "band_label" field.
	BandLabel string `json:"band_label,omitempty"`
	// BandDescription holds the value of the "band_description" field.
	BandDescription string `json:"band_description,omitempty"`
	// PrimaryInstrument holds the value of the "primary_instrument" field.
	PrimaryInstrument string `json:"primary_instrument,omitempty"`
	// SecondaryInstruments holds the value of the "secondary_instruments" field.
	SecondaryInstruments []string `json:"secondary_instruments,omitempty"`
	// ActionPlan holds the value of the "action_plan" field.
	ActionPlan []string `json:"action_plan,omitempty"`
	// Provenance of the action plan: ai or fallback
	PlanSource string `json:"plan_source,omitempty"`
	// Insights holds the value of the "insights" field.
	Insights map[string]interface{} `json:"insights,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// When this partial was included in a team digest
	DigestSentAt *time.Time `json:"digest_sent_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Submission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submission.FieldAnswers, submission.FieldSecondaryInstruments, submission.FieldActionPlan, submission.FieldInsights:
			values[i] = new([]byte)
		case submission.FieldLastStep, submission.FieldScore:
			values[i] = new(sql.NullInt64)
		case submission.FieldID, submission.FieldStatus, submission.FieldEmail, submission.FieldParentName, submission.FieldChildName, submission.FieldSource, submission.FieldVariantID, submission.FieldBand, submission.FieldBandLabel, submission.FieldBandDescription, submission.FieldPrimaryInstrument, submission.FieldPlanSource:
			values[i] = new(sql.NullString)
		case submission.FieldCreatedAt, submission.FieldUpdatedAt, submission.FieldDigestSentAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Submission fields.
func (_m *Submission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submission.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case submission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = submission.Status(value.String)
			}
		case submission.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case submission.FieldParentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_name", values[i])
			} else if value.Valid {
				_m.ParentName = value.String
			}
		case submission.FieldChildName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field child_name", values[i])
			} else if value.Valid {
				_m.ChildName = value.String
			}
		case submission.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case submission.FieldVariantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variant_id", values[i])
			} else if value.Valid {
				_m.VariantID = value.String
			}
		case submission.FieldLastStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_step", values[i])
			} else if value.Valid {
				_m.LastStep = int(value.Int64)
			}
		case submission.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case submission.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case submission.FieldBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field band", values[i])
			} else if value.Valid {
				_m.Band = value.String
			}
		case submission.FieldBandLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field band_label", values[i])
			} else if value.Valid {
				_m.BandLabel = value.String
			}
		case submission.FieldBandDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field band_description", values[i])
			} else if value.Valid {
				_m.BandDescription = value.String
			}
		case submission.FieldPrimaryInstrument:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_instrument", values[i])
			} else if value.Valid {
				_m.PrimaryInstrument = value.String
			}
		case submission.FieldSecondaryInstruments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field secondary_instruments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SecondaryInstruments); err != nil {
					return fmt.Errorf("unmarshal field secondary_instruments: %w", err)
				}
			}
		case submission.FieldActionPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionPlan); err != nil {
					return fmt.Errorf("unmarshal field action_plan: %w", err)
				}
			}
		case submission.FieldPlanSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_source", values[i])
			} else if value.Valid {
				_m.PlanSource = value.String
			}
		case submission.FieldInsights:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field insights", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Insights); err != nil {
					return fmt.Errorf("unmarshal field insights: %w", err)
				}
			}
		case submission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case submission.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case submission.FieldDigestSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field digest_sent_at", values[i])
			} else if value.Valid {
				_m.DigestSentAt = new(time.Time)
				*_m.DigestSentAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Submission.
// This includes values selected through modifiers, order, etc.
func (_m *Submission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Submission.
// Note that you need to call Submission.Unwrap() before calling this method if this Submission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Submission) Update() *SubmissionUpdateOne {
	return NewSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Submission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Submission) Unwrap() *Submission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Submission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Submission) String() string {
	var builder strings.Builder
	builder.WriteString("Submission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("parent_name=")
	builder.WriteString(_m.ParentName)
	builder.WriteString(", ")
	builder.WriteString("child_name=")
	builder.WriteString(_m.ChildName)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("variant_id=")
	builder.WriteString(_m.VariantID)
	builder.WriteString(", ")
	builder.WriteString("last_step=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastStep))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("band=")
	builder.WriteString(_m.Band)
	builder.WriteString(", ")
	builder.WriteString("band_label=")
	builder.WriteString(_m.BandLabel)
	builder.WriteString(", ")
	builder.WriteString("band_description=")
	builder.WriteString(_m.BandDescription)
	builder.WriteString(", ")
	builder.WriteString("primary_instrument=")
	builder.WriteString(_m.PrimaryInstrument)
	builder.WriteString(", ")
	builder.WriteString("secondary_instruments=")
	builder.WriteString(fmt.Sprintf("%v", _m.SecondaryInstruments))
	builder.WriteString(", ")
	builder.WriteString("action_plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionPlan))
	builder.WriteString(", ")
	builder.WriteString("plan_source=")
	builder.WriteString(_m.PlanSource)
	builder.WriteString(", ")
	builder.WriteString("insights=")
	builder.WriteString(fmt.Sprintf("%v", _m.Insights))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DigestSentAt; v != nil {
		builder.WriteString("digest_sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Submissions is a parsable slice of Submission.
type Submissions []*Submission
