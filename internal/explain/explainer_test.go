package explain

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/quizdrill/internal/llm"
	"github.com/abhisek/quizdrill/internal/quiz"
)

func testQuestion() quiz.Question {
	return quiz.Question{
		ID:            "q1",
		Text:          "Which article abolishes untouchability?",
		Options:       []string{"Article 14", "Article 17", "Article 19", "Article 21"},
		CorrectAnswer: 1,
	}
}

func TestExplain_ReturnsProviderText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Article 17 abolishes untouchability and forbids its practice in any form.`),
	})
	e := New(mock, DefaultConfig())

	got := e.Explain(context.Background(), testQuestion())
	if got != "Article 17 abolishes untouchability and forbids its practice in any form." {
		t.Fatalf("unexpected explanation: %q", got)
	}

	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("explanations are free text, expected no schema")
	}
}

func TestExplain_UnwrapsJSONString(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Quoted explanation."`),
	})
	e := New(mock, DefaultConfig())

	if got := e.Explain(context.Background(), testQuestion()); got != "Quoted explanation." {
		t.Fatalf("unexpected explanation: %q", got)
	}
}

func TestExplain_ProviderErrorYieldsFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	e := New(mock, DefaultConfig())

	if got := e.Explain(context.Background(), testQuestion()); got != FallbackText {
		t.Fatalf("expected fallback, got %q", got)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected a single attempt, got %d", mock.CallCount())
	}
}

func TestExplain_EmptyResponseYieldsFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`   `)})
	e := New(mock, DefaultConfig())

	if got := e.Explain(context.Background(), testQuestion()); got != FallbackText {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestExplain_PrefersBundledExplanation(t *testing.T) {
	mock := llm.NewMockProvider()
	e := New(mock, DefaultConfig())

	q := testQuestion()
	q.Explanation = "Bundled rationale."

	if got := e.Explain(context.Background(), q); got != "Bundled rationale." {
		t.Fatalf("expected bundled explanation, got %q", got)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no provider call, got %d", mock.CallCount())
	}
}
