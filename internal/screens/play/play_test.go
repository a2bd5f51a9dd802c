package play

import (
	"context"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/quiz"
	"github.com/abhisek/quizdrill/internal/router"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/screens"
	"github.com/abhisek/quizdrill/internal/screens/results"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/store"
)

func testQuestions(n int) []quiz.Question {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Category:      "Penal Code",
			Text:          fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: 1,
			Explanation:   "Short rationale.",
		}
	}
	return qs
}

// inQuizDeps sets up a controller mid-quiz with n questions.
func inQuizDeps(t *testing.T, n int) *screens.Deps {
	t.Helper()
	mem := store.NewMemory()
	tracker, err := progress.NewTracker(context.Background(), mem.CompletionRepo(), mem.ResultRepo())
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	ctrl := session.NewController(tracker)

	if err := ctrl.Login("Asha"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := ctrl.SelectCategory("Penal Code"); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	if err := ctrl.SelectLevel(quiz.LevelBasic); err != nil {
		t.Fatalf("SelectLevel: %v", err)
	}
	id, err := ctrl.BeginLoading(1)
	if err != nil {
		t.Fatalf("BeginLoading: %v", err)
	}
	if err := ctrl.ApplyQuestions(id, testQuestions(n)); err != nil {
		t.Fatalf("ApplyQuestions: %v", err)
	}

	return &screens.Deps{
		Ctrl:    ctrl,
		Tracker: tracker,
		Repos:   mem,
		Home:    func() screen.Screen { return nil },
	}
}

func TestPlay_LoadsFirstQuestion(t *testing.T) {
	m := New(inQuizDeps(t, 3))
	if m.number != 1 || m.total != 3 {
		t.Errorf("position = %d/%d, want 1/3", m.number, m.total)
	}
	if m.q.Text != "Question 1?" {
		t.Errorf("question = %q, want the first one", m.q.Text)
	}
}

func TestPlay_LetterKeyAnswersAndScores(t *testing.T) {
	deps := inQuizDeps(t, 3)
	m := New(deps)

	updated, _ := m.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	pm := updated.(*Model)
	if !pm.answered {
		t.Fatal("expected the answer to be recorded")
	}
	if !pm.lastCorrect {
		t.Error("expected option b to be correct")
	}
	if got := deps.Ctrl.State().Score; got != 1 {
		t.Errorf("score = %d, want 1", got)
	}
}

func TestPlay_EnterAdvancesToNextQuestion(t *testing.T) {
	m := New(inQuizDeps(t, 3))

	updated, _ := m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	pm := updated.(*Model)
	updated, _ = pm.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	pm = updated.(*Model)

	if pm.number != 2 {
		t.Errorf("position = %d, want 2", pm.number)
	}
	if pm.answered {
		t.Error("expected a fresh unanswered question")
	}
}

func TestPlay_LastAnswerFinishesAndRoutesToResults(t *testing.T) {
	deps := inQuizDeps(t, 1)
	m := New(deps)

	updated, _ := m.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	pm := updated.(*Model)
	if !pm.finished {
		t.Fatal("expected the quiz to finish on the last answer")
	}
	if got := deps.Ctrl.State().Phase; got != session.PhaseFinished {
		t.Errorf("phase = %s, want finished", got)
	}

	_, cmd := pm.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(router.ResetScreenMsg)
	if !ok {
		t.Fatal("expected a ResetScreenMsg")
	}
	if _, ok := msg.Screen.(*results.Model); !ok {
		t.Errorf("expected the results screen, got %T", msg.Screen)
	}
}

func TestPlay_ExplanationUsesBundledText(t *testing.T) {
	m := New(inQuizDeps(t, 2))

	updated, _ := m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	pm := updated.(*Model)
	updated, cmd := pm.Update(tea.KeyPressMsg{Code: 'e', Text: "e"})
	pm = updated.(*Model)
	if cmd == nil {
		t.Fatal("expected an explanation command")
	}
	if !pm.fetching {
		t.Error("expected fetching state")
	}

	updated, _ = pm.Update(cmd())
	pm = updated.(*Model)
	if pm.explanation != "Short rationale." {
		t.Errorf("explanation = %q, want the bundled one", pm.explanation)
	}
	if pm.fetching {
		t.Error("expected fetching cleared")
	}
}

func TestPlay_StaleExplanationDropped(t *testing.T) {
	m := New(inQuizDeps(t, 2))

	updated, _ := m.Update(explanationMsg{Number: 99, Text: "late"})
	pm := updated.(*Model)
	if pm.explanation != "" {
		t.Error("expected a mismatched explanation to be dropped")
	}
}
