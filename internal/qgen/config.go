package qgen

import "github.com/abhisek/quizdrill/internal/quiz"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Count is the number of questions per generated part.
	Count int

	// MaxTokens is the token budget for the LLM response. A full part
	// is large, so this is much higher than a single-question budget.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		Count:       quiz.QuestionsPerPart,
		MaxTokens:   16384,
		Temperature: 0.7,
	}
}
