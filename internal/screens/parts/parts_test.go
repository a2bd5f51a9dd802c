package parts

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/quiz"
	"github.com/abhisek/quizdrill/internal/router"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/screens"
	"github.com/abhisek/quizdrill/internal/screens/play"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/store"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "" }
func (stubScreen) Title() string                             { return "stub" }

func testDeps(t *testing.T) *screens.Deps {
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
	return &screens.Deps{
		Ctrl:    ctrl,
		Tracker: tracker,
		Repos:   mem,
		Home:    func() screen.Screen { return stubScreen{} },
	}
}

func atPartGrid(t *testing.T, deps *screens.Deps) *Model {
	t.Helper()
	if err := deps.Ctrl.SelectCategory("Constitution"); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	if err := deps.Ctrl.SelectLevel(quiz.LevelBasic); err != nil {
		t.Fatalf("SelectLevel: %v", err)
	}
	return New(deps, "Constitution", quiz.LevelBasic)
}

func TestParts_StartEntersLoading(t *testing.T) {
	deps := testDeps(t)
	m := atPartGrid(t, deps)

	_, cmd := m.startPart(5)
	if cmd == nil {
		t.Fatal("expected a generation command")
	}
	if !m.loading {
		t.Error("expected loading state")
	}
	st := deps.Ctrl.State()
	if st.Phase != session.PhaseLoading {
		t.Errorf("phase = %s, want loading", st.Phase)
	}
	if st.Part != 5 {
		t.Errorf("part = %d, want 5", st.Part)
	}
}

func TestParts_StaleResponseIgnored(t *testing.T) {
	deps := testDeps(t)
	m := atPartGrid(t, deps)
	m.startPart(5)

	_, cmd := m.Update(questionsReadyMsg{RequestID: "stale", Questions: quiz.Bank()})
	if cmd != nil {
		t.Error("expected stale response to be dropped without navigation")
	}
	if got := deps.Ctrl.State().Phase; got != session.PhaseLoading {
		t.Errorf("phase = %s, want loading", got)
	}
}

func TestParts_ReadyStartsQuiz(t *testing.T) {
	deps := testDeps(t)
	m := atPartGrid(t, deps)
	m.startPart(5)

	id := deps.Ctrl.State().RequestID
	_, cmd := m.Update(questionsReadyMsg{RequestID: id, Questions: quiz.Bank()})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(router.ResetScreenMsg)
	if !ok {
		t.Fatal("expected a ResetScreenMsg")
	}
	if _, ok := msg.Screen.(*play.Model); !ok {
		t.Errorf("expected the quiz screen, got %T", msg.Screen)
	}
	if got := deps.Ctrl.State().Phase; got != session.PhaseInQuiz {
		t.Errorf("phase = %s, want in quiz", got)
	}
}

func TestParts_FailureRoutesHomeWithError(t *testing.T) {
	deps := testDeps(t)
	m := atPartGrid(t, deps)
	m.startPart(5)

	id := deps.Ctrl.State().RequestID
	_, cmd := m.Update(questionsFailedMsg{RequestID: id, Err: context.DeadlineExceeded})
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
	if st.LoadError == "" {
		t.Error("expected a load error message")
	}
}

func TestParts_GridShowsCompletions(t *testing.T) {
	deps := testDeps(t)
	ref := quiz.PartRef{Category: "Constitution", Level: quiz.LevelBasic, Part: 3}
	if err := deps.Tracker.MarkCompleted(context.Background(), ref); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}

	m := atPartGrid(t, deps)
	if !m.grid.Cells[2].Completed {
		t.Error("expected part 3 to carry a completion badge")
	}
	if m.grid.Cells[0].Completed {
		t.Error("expected part 1 to be unbadged")
	}
}
