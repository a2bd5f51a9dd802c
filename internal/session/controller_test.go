package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/quizdrill/internal/quiz"
)

// fakeRecorder records finish calls for assertions.
type fakeRecorder struct {
	completions []quiz.PartRef
	results     []recordedResult
	markErr     error
}

type recordedResult struct {
	part  quiz.PartRef
	score int
	total int
}

func (f *fakeRecorder) MarkCompleted(_ context.Context, part quiz.PartRef) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.completions = append(f.completions, part)
	return nil
}

func (f *fakeRecorder) RecordResult(_ context.Context, part quiz.PartRef, score, total int, _ time.Duration) error {
	f.results = append(f.results, recordedResult{part: part, score: score, total: total})
	return nil
}

func threeQuestions() []quiz.Question {
	return []quiz.Question{
		{ID: "q1", Text: "Q1?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
		{ID: "q2", Text: "Q2?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1},
		{ID: "q3", Text: "Q3?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 2},
	}
}

// startQuiz drives a controller through login and selection to InQuiz.
func startQuiz(t *testing.T, c *Controller, questions []quiz.Question) {
	t.Helper()
	if err := c.Login("Raj"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := c.SelectCategory("Constitution"); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	if err := c.SelectLevel(quiz.LevelBasic); err != nil {
		t.Fatalf("SelectLevel: %v", err)
	}
	reqID, err := c.BeginLoading(1)
	if err != nil {
		t.Fatalf("BeginLoading: %v", err)
	}
	if err := c.ApplyQuestions(reqID, questions); err != nil {
		t.Fatalf("ApplyQuestions: %v", err)
	}
}

func TestFullQuizRun(t *testing.T) {
	rec := &fakeRecorder{}
	c := NewController(rec)
	ctx := context.Background()

	startQuiz(t, c, threeQuestions())
	if c.State().Phase != PhaseInQuiz {
		t.Fatalf("expected InQuiz, got %s", c.State().Phase)
	}

	// Correct, wrong, correct.
	correct, finished, err := c.SubmitAnswer(ctx, 0)
	if err != nil || !correct || finished {
		t.Fatalf("answer 1: correct=%t finished=%t err=%v", correct, finished, err)
	}
	correct, finished, err = c.SubmitAnswer(ctx, 3)
	if err != nil || correct || finished {
		t.Fatalf("answer 2: correct=%t finished=%t err=%v", correct, finished, err)
	}
	correct, finished, err = c.SubmitAnswer(ctx, 2)
	if err != nil || !correct || !finished {
		t.Fatalf("answer 3: correct=%t finished=%t err=%v", correct, finished, err)
	}

	st := c.State()
	if st.Phase != PhaseFinished {
		t.Errorf("expected Finished, got %s", st.Phase)
	}
	if st.Score != 2 {
		t.Errorf("expected score 2, got %d", st.Score)
	}

	want := quiz.PartRef{Category: "Constitution", Level: quiz.LevelBasic, Part: 1}
	if len(rec.completions) != 1 || rec.completions[0] != want {
		t.Errorf("expected one completion for %v, got %v", want, rec.completions)
	}
	if len(rec.results) != 1 || rec.results[0].score != 2 || rec.results[0].total != 3 {
		t.Errorf("unexpected recorded results: %+v", rec.results)
	}
}

func TestOutOfRangeAnswerCountsIncorrect(t *testing.T) {
	c := NewController(&fakeRecorder{})
	startQuiz(t, c, threeQuestions())

	correct, _, err := c.SubmitAnswer(context.Background(), 99)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if correct {
		t.Error("out-of-range choice must count as incorrect")
	}
	if got := c.State().Answers[0]; got != -1 {
		t.Errorf("expected answer recorded as -1, got %d", got)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	c := NewController(&fakeRecorder{})
	if err := c.Login("Raj"); err != nil {
		t.Fatal(err)
	}
	if err := c.SelectCategory("Constitution"); err != nil {
		t.Fatal(err)
	}
	if err := c.SelectLevel(quiz.LevelBasic); err != nil {
		t.Fatal(err)
	}

	oldID, err := c.BeginLoading(1)
	if err != nil {
		t.Fatalf("BeginLoading: %v", err)
	}

	// First attempt fails; player re-selects and starts a new request.
	c.FailLoading(oldID, "timed out")
	if err := c.SelectCategory("Evidence Act"); err != nil {
		t.Fatal(err)
	}
	if err := c.SelectLevel(quiz.LevelMedium); err != nil {
		t.Fatal(err)
	}
	newID, err := c.BeginLoading(2)
	if err != nil {
		t.Fatalf("second BeginLoading: %v", err)
	}

	// The old response finally arrives. It must be dropped.
	if err := c.ApplyQuestions(oldID, threeQuestions()); !errors.Is(err, ErrStaleRequest) {
		t.Fatalf("expected ErrStaleRequest, got %v", err)
	}
	if c.State().Phase != PhaseLoading {
		t.Errorf("stale response changed phase to %s", c.State().Phase)
	}

	// A stale failure is likewise ignored.
	c.FailLoading(oldID, "late failure")
	if c.State().Phase != PhaseLoading {
		t.Errorf("stale failure changed phase to %s", c.State().Phase)
	}

	// The current response still lands.
	if err := c.ApplyQuestions(newID, threeQuestions()); err != nil {
		t.Fatalf("ApplyQuestions: %v", err)
	}
	if c.State().Phase != PhaseInQuiz {
		t.Errorf("expected InQuiz, got %s", c.State().Phase)
	}
}

func TestFailLoadingResetsSelection(t *testing.T) {
	c := NewController(&fakeRecorder{})
	if err := c.Login("Raj"); err != nil {
		t.Fatal(err)
	}
	if err := c.SelectCategory("Constitution"); err != nil {
		t.Fatal(err)
	}
	if err := c.SelectLevel(quiz.LevelBasic); err != nil {
		t.Fatal(err)
	}
	reqID, err := c.BeginLoading(7)
	if err != nil {
		t.Fatal(err)
	}

	c.FailLoading(reqID, "provider unavailable")

	st := c.State()
	if st.Phase != PhaseSelectingCategory {
		t.Errorf("expected SelectingCategory, got %s", st.Phase)
	}
	if st.Category != "" || st.Level != "" || st.Part != 0 {
		t.Errorf("expected cleared selection, got %q/%q/%d", st.Category, st.Level, st.Part)
	}
	if st.LoadError != "provider unavailable" {
		t.Errorf("expected load error retained, got %q", st.LoadError)
	}

	// Re-selecting clears the sticky error.
	if err := c.SelectCategory("Constitution"); err != nil {
		t.Fatal(err)
	}
	if c.State().LoadError != "" {
		t.Error("expected load error cleared on new selection")
	}
}

func TestEmptySetIsGenerationFailure(t *testing.T) {
	c := NewController(&fakeRecorder{})
	if err := c.Login("Raj"); err != nil {
		t.Fatal(err)
	}
	if err := c.SelectCategory("Constitution"); err != nil {
		t.Fatal(err)
	}
	if err := c.SelectLevel(quiz.LevelBasic); err != nil {
		t.Fatal(err)
	}
	reqID, err := c.BeginLoading(1)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.ApplyQuestions(reqID, nil); err == nil {
		t.Fatal("expected error for empty set")
	}
	if c.State().Phase != PhaseSelectingCategory {
		t.Errorf("expected reset to SelectingCategory, got %s", c.State().Phase)
	}
}

func TestLoginValidation(t *testing.T) {
	c := NewController(&fakeRecorder{})

	if err := c.Login("   "); err == nil {
		t.Fatal("expected error for blank name")
	}
	if c.State().Phase != PhaseLoggedOut {
		t.Errorf("blank login changed phase to %s", c.State().Phase)
	}

	if err := c.Login("  Raj  "); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if c.State().PlayerName != "Raj" {
		t.Errorf("expected trimmed name Raj, got %q", c.State().PlayerName)
	}

	if err := c.Login("again"); err == nil {
		t.Error("expected error for login while logged in")
	}
}

func TestRestore(t *testing.T) {
	c := NewController(&fakeRecorder{})
	c.Restore("Raj")
	if c.State().Phase != PhaseSelectingCategory {
		t.Errorf("expected SelectingCategory after restore, got %s", c.State().Phase)
	}

	c2 := NewController(&fakeRecorder{})
	c2.Restore("  ")
	if c2.State().Phase != PhaseLoggedOut {
		t.Errorf("blank restore should stay logged out, got %s", c2.State().Phase)
	}
}

func TestLogoutAndReset(t *testing.T) {
	c := NewController(&fakeRecorder{})
	startQuiz(t, c, threeQuestions())

	c.Reset()
	st := c.State()
	if st.Phase != PhaseSelectingCategory {
		t.Errorf("expected SelectingCategory after reset, got %s", st.Phase)
	}
	if st.PlayerName != "Raj" {
		t.Errorf("reset should keep login, got %q", st.PlayerName)
	}
	if len(st.Questions) != 0 {
		t.Error("reset should clear questions")
	}

	c.Logout()
	st = c.State()
	if st.Phase != PhaseLoggedOut || st.PlayerName != "" {
		t.Errorf("logout should clear everything, got %+v", st)
	}
}

func TestPersistenceFailureStillFinishes(t *testing.T) {
	rec := &fakeRecorder{markErr: errors.New("disk full")}
	c := NewController(rec)
	startQuiz(t, c, threeQuestions()[:1])

	_, finished, err := c.SubmitAnswer(context.Background(), 0)
	if !finished {
		t.Fatal("expected quiz to finish")
	}
	if err == nil {
		t.Fatal("expected persistence error surfaced")
	}
	if c.State().Phase != PhaseFinished {
		t.Errorf("expected Finished despite persistence error, got %s", c.State().Phase)
	}
}

func TestBeginLoadingPartRange(t *testing.T) {
	c := NewController(&fakeRecorder{})
	if err := c.Login("Raj"); err != nil {
		t.Fatal(err)
	}
	if err := c.SelectCategory("Constitution"); err != nil {
		t.Fatal(err)
	}
	if err := c.SelectLevel(quiz.LevelBasic); err != nil {
		t.Fatal(err)
	}

	if _, err := c.BeginLoading(0); err == nil {
		t.Error("expected error for part 0")
	}
	if _, err := c.BeginLoading(quiz.PartsPerLevel + 1); err == nil {
		t.Error("expected error for part beyond range")
	}
	if _, err := c.BeginLoading(quiz.PartsPerLevel); err != nil {
		t.Errorf("part %d should be valid: %v", quiz.PartsPerLevel, err)
	}
}
