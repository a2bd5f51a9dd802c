package qgen

import (
	"fmt"

	"github.com/abhisek/quizdrill/internal/quiz"
)

// ValidationError describes why a generated question set was rejected.
type ValidationError struct {
	Index   int // question index, or -1 for set-level failures
	Message string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("question set invalid: %s", e.Message)
	}
	return fmt.Sprintf("question %d invalid: %s", e.Index, e.Message)
}

// validateSet checks the count and per-question structure of a generated set.
// The schema already enforces both, but providers without strict schema
// support can still return malformed sets, so the checks run unconditionally.
func validateSet(questions []quiz.Question, want int) error {
	if len(questions) != want {
		return &ValidationError{
			Index:   -1,
			Message: fmt.Sprintf("got %d questions, want %d", len(questions), want),
		}
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return &ValidationError{Index: i, Message: err.Error()}
		}
	}
	return nil
}
