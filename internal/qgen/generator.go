package qgen

import (
	"context"

	"github.com/abhisek/quizdrill/internal/quiz"
)

// Generator produces the full question set for one practice part.
type Generator interface {
	// Generate produces a complete, validated question set for the part.
	// The returned slice always has exactly the configured count; any
	// shortfall or structural defect is an error.
	Generate(ctx context.Context, part quiz.PartRef) ([]quiz.Question, error)
}
