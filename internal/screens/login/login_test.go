package login

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/router"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/screens"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/store"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                          { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                   { return "" }
func (stubScreen) Title() string                          { return "stub" }

func testDeps(t *testing.T) *screens.Deps {
	t.Helper()
	mem := store.NewMemory()
	tracker, err := progress.NewTracker(context.Background(), mem.CompletionRepo(), mem.ResultRepo())
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	return &screens.Deps{
		Ctrl:    session.NewController(tracker),
		Tracker: tracker,
		Repos:   mem,
		Home:    func() screen.Screen { return stubScreen{} },
	}
}

func TestLogin_BlankNameRejected(t *testing.T) {
	deps := testDeps(t)
	m := New(deps)

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for a blank name")
	}
	lm := updated.(*Model)
	if lm.errText == "" {
		t.Error("expected an error message for a blank name")
	}
	if deps.Ctrl.State().Phase != session.PhaseLoggedOut {
		t.Errorf("phase = %s, want logged out", deps.Ctrl.State().Phase)
	}
}

func TestLogin_ValidNameAdvancesAndPersists(t *testing.T) {
	deps := testDeps(t)
	m := New(deps)
	m.input.Model.SetValue("Asha")

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Error("expected a ResetScreenMsg to home")
	}

	if got := deps.Ctrl.State().PlayerName; got != "Asha" {
		t.Errorf("PlayerName = %q, want %q", got, "Asha")
	}
	name, err := deps.Repos.ProfileRepo().Name(context.Background())
	if err != nil {
		t.Fatalf("Name: %v", err)
	}
	if name != "Asha" {
		t.Errorf("stored name = %q, want %q", name, "Asha")
	}
}

func TestLogin_KeyHints(t *testing.T) {
	m := New(testDeps(t))
	if len(m.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(m.KeyHints()))
	}
}
