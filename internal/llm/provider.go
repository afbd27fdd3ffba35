package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over content-generation backends. Consumers
// call Generate with a Request and receive structured JSON back.
type Provider interface {
	// Generate sends a prompt to the model and returns its response.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Enrichment calls are single-turn:
	// one user message.
	Messages []Message

	// Schema, when set, constrains the response to the given JSON shape.
	// When nil the response Content is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "action-plan".
	Name string

	// Description guides the model toward the intended content.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output; validated JSON when the request
	// carried a Schema.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
