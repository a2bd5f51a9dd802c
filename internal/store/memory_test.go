package store

import (
	"context"
	"testing"
)

func TestMemoryProfileRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	repo := m.ProfileRepo()

	name, err := repo.Name(ctx)
	if err != nil {
		t.Fatalf("Name: %v", err)
	}
	if name != "" {
		t.Errorf("expected empty name before SetName, got %q", name)
	}

	if err := repo.SetName(ctx, "Raj"); err != nil {
		t.Fatalf("SetName: %v", err)
	}
	name, err = repo.Name(ctx)
	if err != nil {
		t.Fatalf("Name: %v", err)
	}
	if name != "Raj" {
		t.Errorf("expected Raj, got %q", name)
	}

	if err := repo.ClearName(ctx); err != nil {
		t.Fatalf("ClearName: %v", err)
	}
	name, _ = repo.Name(ctx)
	if name != "" {
		t.Errorf("expected empty name after ClearName, got %q", name)
	}
}

func TestMemoryCompletionMarkIdempotent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	repo := m.CompletionRepo()

	if err := repo.Mark(ctx, "Constitution", "Basic", 1); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if err := repo.Mark(ctx, "Constitution", "Basic", 1); err != nil {
		t.Fatalf("repeat Mark: %v", err)
	}
	if err := repo.Mark(ctx, "Constitution", "Basic", 2); err != nil {
		t.Fatalf("Mark part 2: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 completions, got %d", len(all))
	}
}

func TestMemoryResultsRecentAndTotals(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	repo := m.ResultRepo()

	runs := []ResultData{
		{Category: "Constitution", Level: "Basic", Part: 1, Score: 30, Total: 47},
		{Category: "Evidence Act", Level: "Medium", Part: 5, Score: 40, Total: 47},
		{Category: "Constitution", Level: "Basic", Part: 1, Score: 45, Total: 47},
	}
	for _, r := range runs {
		if err := repo.Append(ctx, r); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 results, got %d", len(recent))
	}
	if recent[0].Score != 45 {
		t.Errorf("expected newest first (score 45), got score %d", recent[0].Score)
	}
	if recent[0].Sequence <= recent[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", recent[0].Sequence, recent[1].Sequence)
	}

	totals, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if totals.Runs != 3 {
		t.Errorf("expected 3 runs, got %d", totals.Runs)
	}
	if totals.Questions != 141 {
		t.Errorf("expected 141 questions, got %d", totals.Questions)
	}
	if totals.Correct != 115 {
		t.Errorf("expected 115 correct, got %d", totals.Correct)
	}
}

func TestMemoryLLMEvents(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	repo := m.EventRepo()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 500, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "explanation", InputTokens: 50, OutputTokens: 80, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 0, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "question-gen"})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 question-gen events, got %d", len(got))
	}
	if got[0].Success {
		t.Errorf("expected newest event first (the failed one)")
	}

	e, err := repo.GetLLMEvent(ctx, 2)
	if err != nil {
		t.Fatalf("GetLLMEvent: %v", err)
	}
	if e == nil || e.Purpose != "explanation" {
		t.Fatalf("expected explanation event for ID 2, got %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99)
	if err != nil {
		t.Fatalf("GetLLMEvent missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}

	stats, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("UsageByPurpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 purpose buckets, got %d", len(stats))
	}
	// Sorted alphabetically: explanation first.
	if stats[0].Purpose != "explanation" || stats[1].Purpose != "question-gen" {
		t.Errorf("unexpected purpose order: %q, %q", stats[0].Purpose, stats[1].Purpose)
	}
	qg := stats[1]
	if qg.Requests != 2 || qg.Failures != 1 {
		t.Errorf("question-gen: expected 2 requests 1 failure, got %d/%d", qg.Requests, qg.Failures)
	}
	if qg.InputTokens != 200 || qg.OutputTokens != 500 {
		t.Errorf("question-gen tokens: got %d in / %d out", qg.InputTokens, qg.OutputTokens)
	}
}

func TestMemoryClearWipesProgress(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.CompletionRepo().Mark(ctx, "Constitution", "Basic", 1); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if err := m.ResultRepo().Append(ctx, ResultData{Category: "Constitution", Level: "Basic", Part: 1, Score: 40, Total: 47}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := m.CompletionRepo().Clear(ctx); err != nil {
		t.Fatalf("Clear completions: %v", err)
	}
	if err := m.ResultRepo().Clear(ctx); err != nil {
		t.Fatalf("Clear results: %v", err)
	}

	all, err := m.CompletionRepo().All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected no completions, got %d", len(all))
	}

	totals, err := m.ResultRepo().Totals(ctx)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if totals.Runs != 0 {
		t.Errorf("expected no runs, got %d", totals.Runs)
	}

	// Marking again after a wipe starts fresh.
	if err := m.CompletionRepo().Mark(ctx, "Constitution", "Basic", 1); err != nil {
		t.Fatalf("Mark after clear: %v", err)
	}
}
