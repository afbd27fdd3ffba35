package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-profile",
		Description: "A test musical profile",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"child":      map[string]any{"type": "string"},
				"score":      map[string]any{"type": "integer", "minimum": 0},
				"instrument": map[string]any{"type": "string", "enum": []any{"Piano", "Guitar", "Drums"}},
			},
			"required": []any{"child", "score"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"child":"Maya","score":82,"instrument":"Piano"}`)
	err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"child":"Leo","score":55}`)
	err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"child":"Ana"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"child":"Ana","score":"eighty"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"child":"Ana","score":70,"instrument":"Theremin"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_PlanShape(t *testing.T) {
	schema := &Schema{
		Name:        "test-plan",
		Description: "Bounded list of plan steps",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"plan": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 5,
					"maxItems": 6,
				},
			},
			"required": []any{"plan"},
		},
	}

	valid := json.RawMessage(`{"plan":["a","b","c","d","e"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	tooShort := json.RawMessage(`{"plan":["a","b"]}`)
	if err := validateResponse(schema, tooShort); err == nil {
		t.Fatal("expected error for plan below minimum length")
	}
}
