package qgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/quizdrill/internal/llm"
	"github.com/abhisek/quizdrill/internal/quiz"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is one raw LLM question before validation.
type questionOutput struct {
	ID            string   `json:"id"`
	Category      string   `json:"category"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Generate produces a complete question set for the part. A single attempt
// is made; the caller decides what a failure means.
func (g *LLMGenerator) Generate(ctx context.Context, part quiz.PartRef) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(part, g.config)},
		},
		Schema:      questionSetSchema(g.config.Count),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw []questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	questions := make([]quiz.Question, len(raw))
	for i, r := range raw {
		q := quiz.Question{
			ID:            r.ID,
			Category:      r.Category,
			Text:          r.Question,
			Options:       r.Options,
			CorrectAnswer: r.CorrectAnswer,
			Explanation:   r.Explanation,
		}
		if q.ID == "" {
			q.ID = fmt.Sprintf("%s-q%d", part.ID(), i+1)
		}
		if q.Category == "" {
			q.Category = part.Category
		}
		questions[i] = q
	}

	if err := validateSet(questions, g.config.Count); err != nil {
		return nil, err
	}

	return questions, nil
}
