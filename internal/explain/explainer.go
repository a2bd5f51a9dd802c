// Package explain fetches short AI explanations for answered questions.
// Explanations are a comfort feature: a failure must never surface as an
// error, so the LLM-backed implementation degrades to fixed fallback text.
package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizdrill/internal/llm"
	"github.com/abhisek/quizdrill/internal/quiz"
)

// FallbackText is shown when an explanation can't be fetched for any reason.
const FallbackText = "Sorry, an explanation is not available right now."

// Explainer produces a short explanation of why a question's correct
// answer is correct. Implementations never return an error; they return
// fallback text instead.
type Explainer interface {
	Explain(ctx context.Context, q quiz.Question) string
}

const explainSystemPrompt = `You are an expert coach for a state police recruitment (constable and sub-inspector) written exam. Explain briefly why the given answer to the question is correct. Two or three sentences, no preamble.`

// Config controls the LLM explainer.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended defaults for short explanations.
func DefaultConfig() Config {
	return Config{MaxTokens: 512, Temperature: 0.3}
}

// LLMExplainer implements Explainer using the LLM provider.
type LLMExplainer struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMExplainer with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMExplainer {
	return &LLMExplainer{provider: provider, config: cfg}
}

// Explain fetches an explanation for q. Any provider failure, or an empty
// response, yields FallbackText.
func (e *LLMExplainer) Explain(ctx context.Context, q quiz.Question) string {
	// A stored explanation shipped with the question wins outright.
	if q.Explanation != "" {
		return q.Explanation
	}

	ctx = llm.WithPurpose(ctx, "explanation")

	correct := ""
	if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
		correct = q.Options[q.CorrectAnswer]
	}

	req := llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Question: %q\nCorrect answer: %q", q.Text, correct)},
		},
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return FallbackText
	}

	text := decodeText(resp.Content)
	if text == "" {
		return FallbackText
	}
	return text
}

// decodeText extracts plain text from a free-form response. Providers
// return raw text for schema-less requests, but some wrap it in a JSON
// string, so both shapes are accepted.
func decodeText(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err == nil {
			s = unquoted
		}
	}
	return strings.TrimSpace(s)
}
