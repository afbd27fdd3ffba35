package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission holds a quiz lead through its lifecycle: a partial row is
// inserted as soon as the email is captured, then promoted in place to a
// complete row with scoring results when the quiz finishes.
type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Comment("UUID for partials, local mrs_* ID for offline completes"),
		field.Enum("status").
			Values("partial", "complete"),
		field.String("email").
			Comment("Parent email captured mid-quiz"),
		field.String("parent_name").
			Default(""),
		field.String("child_name").
			Default(""),
		field.String("source").
			Default("Music Readiness Score").
			Comment("Campaign label attached to every lead"),
		field.String("variant_id").
			Comment("Quiz variant the answers belong to"),
		field.Int("last_step").
			Default(0).
			Comment("Furthest step reached, for partial follow-up"),
		field.JSON("answers", map[string][]string{}),
		field.Int("score").
			Default(0),
		field.String("band").
			Default(""),
		field.String("band_label").
			Default(""),
		field.String("band_description").
			Default(""),
		field.String("primary_instrument").
			Default(""),
		field.JSON("secondary_instruments", []string{}).
			Optional(),
		field.JSON("action_plan", []string{}).
			Optional(),
		field.String("plan_source").
			Default("").
			Comment("Provenance of the action plan: ai or fallback"),
		field.JSON("insights", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("digest_sent_at").
			Optional().
			Nillable().
			Comment("When this partial was included in a team digest"),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
		index.Fields("email"),
	}
}
