package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records every LLM API call for cost tracking and debugging.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("provider").
			Comment("Provider name: anthropic, openai, gemini"),
		field.String("model").
			Comment("Actual model ID used"),
		field.String("purpose").
			Comment("Consumer-provided label: action-plan, insights"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.Text("request_body").
			Default(""),
		field.Text("response_body").
			Default(""),
		field.String("error_message").
			Default(""),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
