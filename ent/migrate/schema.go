// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"partial", "complete"}},
		{Name: "email", Type: field.TypeString},
		{Name: "parent_name", Type: field.TypeString, Default: ""},
		{Name: "child_name", Type: field.TypeString, Default: ""},
		{Name: "source", Type: field.TypeString, Default: "Music Readiness Score"},
		{Name: "variant_id", Type: field.TypeString},
		{Name: "last_step", Type: field.TypeInt, Default: 0},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "band", Type: field.TypeString, Default: ""},
		{Name: "band_label", Type: field.TypeString, Default: ""},
		{Name: "band_description", Type: field.TypeString, Default: ""},
		{Name: "primary_instrument", Type: field.TypeString, Default: ""},
		{Name: "secondary_instruments", Type: field.TypeJSON, Nullable: true},
		{Name: "action_plan", Type: field.TypeJSON, Nullable: true},
		{Name: "plan_source", Type: field.TypeString, Default: ""},
		{Name: "insights", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "digest_sent_at", Type: field.TypeTime, Nullable: true},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submission_status",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[1]},
			},
			{
				Name:    "submission_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[18]},
			},
			{
				Name:    "submission_email",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		SubmissionsTable,
	}
)

func init() {
}
