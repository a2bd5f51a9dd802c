package progress

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/quizdrill/internal/quiz"
	"github.com/abhisek/quizdrill/internal/store"
)

func newTestTracker(t *testing.T) (*Tracker, *store.Memory) {
	t.Helper()
	m := store.NewMemory()
	tr, err := NewTracker(context.Background(), m.CompletionRepo(), m.ResultRepo())
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	return tr, m
}

func part(category string, level quiz.Level, n int) quiz.PartRef {
	return quiz.PartRef{Category: category, Level: level, Part: n}
}

func TestMarkCompletedIdempotent(t *testing.T) {
	tr, m := newTestTracker(t)
	ctx := context.Background()
	p := part("Constitution", quiz.LevelBasic, 1)

	if tr.IsCompleted(p) {
		t.Fatal("fresh tracker should have no completions")
	}

	for i := 0; i < 3; i++ {
		if err := tr.MarkCompleted(ctx, p); err != nil {
			t.Fatalf("MarkCompleted #%d: %v", i+1, err)
		}
	}

	if !tr.IsCompleted(p) {
		t.Error("expected part completed")
	}
	if tr.CompletedCount() != 1 {
		t.Errorf("expected count 1, got %d", tr.CompletedCount())
	}

	stored, err := m.CompletionRepo().All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(stored) != 1 {
		t.Errorf("expected 1 stored completion, got %d", len(stored))
	}
}

func TestTrackerLoadsExistingCompletions(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()
	if err := m.CompletionRepo().Mark(ctx, "Evidence Act", "Medium", 9); err != nil {
		t.Fatal(err)
	}

	tr, err := NewTracker(ctx, m.CompletionRepo(), m.ResultRepo())
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}

	if !tr.IsCompleted(part("Evidence Act", quiz.LevelMedium, 9)) {
		t.Error("expected preloaded completion")
	}
}

func TestCompletedInLevel(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	for _, n := range []int{1, 3, 100} {
		if err := tr.MarkCompleted(ctx, part("Constitution", quiz.LevelBasic, n)); err != nil {
			t.Fatal(err)
		}
	}
	// Different level, must not bleed in.
	if err := tr.MarkCompleted(ctx, part("Constitution", quiz.LevelMedium, 2)); err != nil {
		t.Fatal(err)
	}

	got := tr.CompletedInLevel("Constitution", quiz.LevelBasic)
	if len(got) != 3 {
		t.Fatalf("expected 3 completed parts, got %v", got)
	}
	for _, n := range []int{1, 3, 100} {
		if !got[n] {
			t.Errorf("expected part %d completed", n)
		}
	}
	if got[2] {
		t.Error("part 2 should not be completed")
	}
}

func TestPercent(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	if tr.Percent() != 0 {
		t.Errorf("expected 0%%, got %d", tr.Percent())
	}

	// 9 of 900 is exactly 1%.
	for n := 1; n <= 9; n++ {
		if err := tr.MarkCompleted(ctx, part("Constitution", quiz.LevelBasic, n)); err != nil {
			t.Fatal(err)
		}
	}
	if tr.Percent() != 1 {
		t.Errorf("expected 1%%, got %d", tr.Percent())
	}

	// 4 completions rounds to 0%, 5 rounds to 1%.
	tr2, _ := newTestTracker(t)
	for n := 1; n <= 4; n++ {
		if err := tr2.MarkCompleted(ctx, part("Penal Code", quiz.LevelBasic, n)); err != nil {
			t.Fatal(err)
		}
	}
	if tr2.Percent() != 0 {
		t.Errorf("expected 0%% at 4/900, got %d", tr2.Percent())
	}
	if err := tr2.MarkCompleted(ctx, part("Penal Code", quiz.LevelBasic, 5)); err != nil {
		t.Fatal(err)
	}
	if tr2.Percent() != 1 {
		t.Errorf("expected 1%% at 5/900, got %d", tr2.Percent())
	}
}

func TestRecordResult(t *testing.T) {
	tr, m := newTestTracker(t)
	ctx := context.Background()

	err := tr.RecordResult(ctx, part("Constitution", quiz.LevelBasic, 1), 40, 47, 90*time.Second)
	if err != nil {
		t.Fatalf("RecordResult: %v", err)
	}

	recent, err := m.ResultRepo().Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 result, got %d", len(recent))
	}
	r := recent[0]
	if r.Score != 40 || r.Total != 47 || r.DurationMs != 90000 {
		t.Errorf("unexpected result: %+v", r)
	}
}
