package qgen

import (
	"fmt"

	"github.com/abhisek/quizdrill/internal/llm"
)

// questionSetSchema defines the JSON schema for a full generated part.
// The count is baked into the schema so a short or padded set fails
// validation before any domain checks run.
func questionSetSchema(count int) *llm.Schema {
	return &llm.Schema{
		Name:        fmt.Sprintf("quiz-part-%d", count),
		Description: "A complete multiple-choice question set for one practice part",
		Definition: map[string]any{
			"type":     "array",
			"minItems": count,
			"maxItems": count,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Unique identifier for the question within the part",
					},
					"category": map[string]any{
						"type":        "string",
						"description": "The subject this question belongs to",
					},
					"question": map[string]any{
						"type":        "string",
						"description": "The question prompt shown to the player",
					},
					"options": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"minItems":    4,
						"maxItems":    4,
						"description": "Exactly 4 answer options",
					},
					"correctAnswer": map[string]any{
						"type":        "integer",
						"minimum":     0,
						"maximum":     3,
						"description": "Index of the correct option, 0 through 3",
					},
					"explanation": map[string]any{
						"type":        "string",
						"description": "Short rationale for why the correct option is right",
					},
				},
				"required":             []any{"id", "category", "question", "options", "correctAnswer", "explanation"},
				"additionalProperties": false,
			},
		},
	}
}
