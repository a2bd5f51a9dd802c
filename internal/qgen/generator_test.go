package qgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/quizdrill/internal/llm"
	"github.com/abhisek/quizdrill/internal/quiz"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Count = 3
	return cfg
}

func testPart() quiz.PartRef {
	return quiz.PartRef{Category: "Constitution", Level: quiz.LevelBasic, Part: 1}
}

// cannedSet builds a valid raw response with n questions.
func cannedSet(n int) json.RawMessage {
	type q struct {
		ID            string   `json:"id"`
		Category      string   `json:"category"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
	}
	set := make([]q, n)
	for i := range set {
		set[i] = q{
			ID:            fmt.Sprintf("q%d", i+1),
			Category:      "Constitution",
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % 4,
			Explanation:   "because",
		}
	}
	raw, _ := json.Marshal(set)
	return raw
}

func TestLLMGenerator_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedSet(3)})
	gen := New(mock, testConfig())

	questions, err := gen.Generate(context.Background(), testPart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	if questions[0].ID != "q1" {
		t.Errorf("expected provider-assigned ID q1, got %q", questions[0].ID)
	}
	if questions[1].CorrectAnswer != 1 {
		t.Errorf("expected correctAnswer 1, got %d", questions[1].CorrectAnswer)
	}
}

func TestLLMGenerator_SetsPurposeAndSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedSet(3)})
	gen := New(mock, testConfig())

	_, err := gen.Generate(context.Background(), testPart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil {
		t.Fatal("expected a response schema on the request")
	}
	if req.Schema.Name != "quiz-part-3" {
		t.Errorf("expected schema quiz-part-3, got %q", req.Schema.Name)
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
}

func TestLLMGenerator_FillsMissingIDAndCategory(t *testing.T) {
	raw := json.RawMessage(`[
		{"id": "", "category": "", "question": "Q1?", "options": ["a","b","c","d"], "correctAnswer": 0, "explanation": "e"}
	]`)
	cfg := testConfig()
	cfg.Count = 1
	gen := New(llm.NewMockProvider(llm.MockResponse{Content: raw}), cfg)

	questions, err := gen.Generate(context.Background(), testPart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions[0].ID != "Constitution-Basic-1-q1" {
		t.Errorf("expected synthesized ID, got %q", questions[0].ID)
	}
	if questions[0].Category != "Constitution" {
		t.Errorf("expected category from part, got %q", questions[0].Category)
	}
}

func TestLLMGenerator_ShortSetFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedSet(2)})
	gen := New(mock, testConfig())

	_, err := gen.Generate(context.Background(), testPart())
	if err == nil {
		t.Fatal("expected error for short set")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Index != -1 {
		t.Errorf("expected set-level failure, got index %d", verr.Index)
	}
}

func TestLLMGenerator_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, testConfig())

	_, err := gen.Generate(context.Background(), testPart())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable in chain, got: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected exactly one attempt, got %d", mock.CallCount())
	}
}

func TestLLMGenerator_MalformedJSONFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{not an array`)})
	gen := New(mock, testConfig())

	if _, err := gen.Generate(context.Background(), testPart()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestBuildUserMessage(t *testing.T) {
	cfg := DefaultConfig()
	msg := buildUserMessage(quiz.PartRef{Category: "Current Affairs", Level: quiz.LevelMedium, Part: 42}, cfg)

	for _, want := range []string{
		"Subject: Current Affairs",
		"Difficulty level: Medium",
		"part 42 of 100",
		"exactly 47 MCQ questions",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}
