package results

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdrill/internal/explain"
	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/quiz"
	"github.com/abhisek/quizdrill/internal/router"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/screens"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/share"
	"github.com/abhisek/quizdrill/internal/store"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "" }
func (stubScreen) Title() string                             { return "stub" }

type fakeSharer struct {
	outcome share.Outcome
	shared  []string
}

func (f *fakeSharer) Share(message string) (share.Outcome, string) {
	f.shared = append(f.shared, message)
	return f.outcome, message
}

func testQuestions(n int) []quiz.Question {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Category:      "Constitution",
			Text:          fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: 0,
			Explanation:   fmt.Sprintf("Because of reason %d.", i+1),
		}
	}
	return qs
}

// finishedDeps plays a 3-question run with one wrong answer (question 2).
func finishedDeps(t *testing.T) *screens.Deps {
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
	if err := ctrl.SelectCategory("Constitution"); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	if err := ctrl.SelectLevel(quiz.LevelBasic); err != nil {
		t.Fatalf("SelectLevel: %v", err)
	}
	id, err := ctrl.BeginLoading(1)
	if err != nil {
		t.Fatalf("BeginLoading: %v", err)
	}
	if err := ctrl.ApplyQuestions(id, testQuestions(3)); err != nil {
		t.Fatalf("ApplyQuestions: %v", err)
	}

	ctx := context.Background()
	for _, choice := range []int{0, 1, 0} {
		if _, _, err := ctrl.SubmitAnswer(ctx, choice); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}

	return &screens.Deps{
		Ctrl:    ctrl,
		Tracker: tracker,
		Repos:   mem,
		Sharer:  &fakeSharer{outcome: share.OutcomeCopied},
		Home:    func() screen.Screen { return stubScreen{} },
	}
}

func TestResults_ReviewDefaultsToWrongAnswers(t *testing.T) {
	m := New(finishedDeps(t), nil)

	if m.score != 2 || m.total != 3 {
		t.Errorf("score = %d/%d, want 2/3", m.score, m.total)
	}
	if len(m.entries) != 1 {
		t.Fatalf("wrong entries = %d, want 1", len(m.entries))
	}
	if m.entries[0].index != 1 {
		t.Errorf("wrong entry index = %d, want 1", m.entries[0].index)
	}
}

func TestResults_ToggleShowsAllAnswers(t *testing.T) {
	m := New(finishedDeps(t), nil)

	updated, _ := m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	rm := updated.(*Model)
	if !rm.showAll {
		t.Error("expected showAll after toggle")
	}
	if got := len(rm.visible()); got != 3 {
		t.Errorf("visible entries = %d, want 3", got)
	}
}

func TestResults_ExplainUsesBundledExplanation(t *testing.T) {
	m := New(finishedDeps(t), nil)

	cmd := m.explainSelected()
	if cmd == nil {
		t.Fatal("expected an explanation command")
	}
	msg, ok := cmd().(explanationMsg)
	if !ok {
		t.Fatal("expected an explanationMsg")
	}
	if msg.Text != "Because of reason 2." {
		t.Errorf("explanation = %q, want the bundled one", msg.Text)
	}

	updated, _ := m.Update(msg)
	rm := updated.(*Model)
	if rm.explanations[1] != msg.Text {
		t.Error("expected explanation stored against question 2")
	}
	if _, ok := rm.fetching[1]; ok {
		t.Error("expected fetching flag cleared")
	}
}

func TestResults_ExplainFallsBackWithoutText(t *testing.T) {
	deps := finishedDeps(t)
	m := New(deps, nil)
	m.all[1].question.Explanation = ""
	m.entries[0].question.Explanation = ""

	msg := m.explainSelected()().(explanationMsg)
	if msg.Text != explain.FallbackText {
		t.Errorf("explanation = %q, want fallback text", msg.Text)
	}
}

func TestResults_ShareCopiesResultCard(t *testing.T) {
	deps := finishedDeps(t)
	sharer := deps.Sharer.(*fakeSharer)
	m := New(deps, nil)

	updated, _ := m.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	rm := updated.(*Model)

	if len(sharer.shared) != 1 {
		t.Fatalf("shared %d messages, want 1", len(sharer.shared))
	}
	if !strings.Contains(sharer.shared[0], "Asha scored 2/3") {
		t.Errorf("share message = %q, want the score card", sharer.shared[0])
	}
	if rm.note == "" {
		t.Error("expected a confirmation note")
	}
}

func TestResults_PlayAgainResetsController(t *testing.T) {
	deps := finishedDeps(t)
	m := New(deps, nil)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Error("expected a ResetScreenMsg to home")
	}
	st := deps.Ctrl.State()
	if st.Phase != session.PhaseSelectingCategory {
		t.Errorf("phase = %s, want selecting category", st.Phase)
	}
	if st.PlayerName != "Asha" {
		t.Errorf("PlayerName = %q, want kept", st.PlayerName)
	}
}
