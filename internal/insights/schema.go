package insights

import "github.com/bestlessonever/readiness/internal/llm"

// InsightsSchema defines the JSON schema for insight responses.
var InsightsSchema = &llm.Schema{
	Name:        "child-insights",
	Description: "Personalized musical profile for one child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"profileType": map[string]any{
				"type":        "string",
				"description": "One sentence capturing the child's musical personality",
			},
			"strengths": map[string]any{
				"type":        "array",
				"minItems":    2,
				"maxItems":    3,
				"items":       map[string]any{"type": "string"},
				"description": "Specific musical strengths",
			},
			"learningStyle": map[string]any{
				"type":        "string",
				"description": "1-2 sentences about how the child learns best",
			},
			"performerType": map[string]any{
				"type":        "string",
				"description": "One sentence describing the performance personality",
			},
			"instrumentReasoning": map[string]any{
				"type":        "string",
				"description": "2-3 sentences explaining the instrument recommendation",
			},
			"superpower": map[string]any{
				"type":        "string",
				"description": "Short fun label like 'Melody Maker' or 'Beat Master'",
			},
		},
		"required": []any{
			"profileType", "strengths", "learningStyle",
			"performerType", "instrumentReasoning", "superpower",
		},
		"additionalProperties": false,
	},
}
