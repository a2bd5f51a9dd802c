package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func quizSchema() *Schema {
	return &Schema{
		Name: "test-quiz",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 4,
					"maxItems": 4,
				},
				"correctAnswer": map[string]any{
					"type":    "integer",
					"minimum": 0,
					"maximum": 3,
				},
			},
			"required":             []any{"question", "options", "correctAnswer"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{
		"question": "Which article abolishes untouchability?",
		"options": ["Article 14", "Article 17", "Article 19", "Article 21"],
		"correctAnswer": 1
	}`)

	if err := validateResponse(quizSchema(), raw); err != nil {
		t.Fatalf("expected valid, got: %v", err)
	}
}

func TestValidateResponse_WrongOptionCount(t *testing.T) {
	raw := json.RawMessage(`{
		"question": "Q",
		"options": ["a", "b"],
		"correctAnswer": 0
	}`)

	err := validateResponse(quizSchema(), raw)
	if err == nil {
		t.Fatal("expected validation failure for 2 options")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_AnswerOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{
		"question": "Q",
		"options": ["a", "b", "c", "d"],
		"correctAnswer": 7
	}`)

	if err := validateResponse(quizSchema(), raw); err == nil {
		t.Fatal("expected validation failure for correctAnswer 7")
	}
}

func TestValidateResponse_MissingField(t *testing.T) {
	raw := json.RawMessage(`{"question": "Q"}`)

	if err := validateResponse(quizSchema(), raw); err == nil {
		t.Fatal("expected validation failure for missing fields")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json`)

	err := validateResponse(quizSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
	if string(invalid.Content) != `{not json` {
		t.Fatalf("expected raw content preserved, got %s", invalid.Content)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("expected nil schema to skip validation, got: %v", err)
	}
}

func TestSchemaCompilationCached(t *testing.T) {
	s := quizSchema()
	s.Name = "test-quiz-cache"

	first, err := getCompiledSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := getCompiledSchema(s)
	if err != nil {
		t.Fatalf("recompile: %v", err)
	}
	if first != second {
		t.Fatal("expected cached schema instance on second call")
	}
}
