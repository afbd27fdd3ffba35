package plan

import "github.com/bestlessonever/readiness/internal/llm"

// PlanSchema defines the JSON schema for action plan responses.
var PlanSchema = &llm.Schema{
	Name:        "action-plan",
	Description: "First-week action plan as a list of short bullet strings",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"plan": map[string]any{
				"type":        "array",
				"minItems":    5,
				"maxItems":    6,
				"items":       map[string]any{"type": "string"},
				"description": "5-6 punchy one-sentence action bullets in order",
			},
		},
		"required":             []any{"plan"},
		"additionalProperties": false,
	},
}
