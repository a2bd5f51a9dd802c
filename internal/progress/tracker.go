// Package progress tracks which practice parts have been completed and
// turns the raw count into the headline percentage.
package progress

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/abhisek/quizdrill/internal/quiz"
	"github.com/abhisek/quizdrill/internal/store"
)

// AssumedTotalParts is the fixed denominator for the headline percentage.
// The real catalog is far larger (9 categories x 3 levels x 100 parts);
// the percentage is a motivational gauge against a notional 900-part goal,
// not a true catalog fraction.
const AssumedTotalParts = 900

// Tracker caches the completed-part set in memory and writes through to
// the store. Safe for concurrent use.
type Tracker struct {
	completions store.CompletionRepo
	results     store.ResultRepo

	mu   sync.Mutex
	done map[string]bool // keyed by quiz.PartRef ID
}

// NewTracker loads the completed set from the store.
func NewTracker(ctx context.Context, completions store.CompletionRepo, results store.ResultRepo) (*Tracker, error) {
	all, err := completions.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}

	done := make(map[string]bool, len(all))
	for _, c := range all {
		ref := quiz.PartRef{Category: c.Category, Level: quiz.ParseLevel(c.Level), Part: c.Part}
		done[ref.ID()] = true
	}

	return &Tracker{completions: completions, results: results, done: done}, nil
}

// IsCompleted reports whether the part has ever been finished.
func (t *Tracker) IsCompleted(part quiz.PartRef) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done[part.ID()]
}

// CompletedCount returns the number of distinct completed parts.
func (t *Tracker) CompletedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.done)
}

// CompletedInLevel returns the set of completed part numbers for one
// category/level pairing, for the part-grid badges.
func (t *Tracker) CompletedInLevel(category string, level quiz.Level) map[int]bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[int]bool)
	for part := 1; part <= quiz.PartsPerLevel; part++ {
		ref := quiz.PartRef{Category: category, Level: level, Part: part}
		if t.done[ref.ID()] {
			out[part] = true
		}
	}
	return out
}

// Percent returns the headline completion percentage, rounded to the
// nearest whole number and capped at 100.
func (t *Tracker) Percent() int {
	count := t.CompletedCount()
	pct := int(math.Round(float64(count) * 100 / AssumedTotalParts))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// MarkCompleted records a completion, writing through to the store.
// Repeat completions are no-ops.
func (t *Tracker) MarkCompleted(ctx context.Context, part quiz.PartRef) error {
	t.mu.Lock()
	if t.done[part.ID()] {
		t.mu.Unlock()
		return nil
	}
	t.mu.Unlock()

	if err := t.completions.Mark(ctx, part.Category, string(part.Level), part.Part); err != nil {
		return fmt.Errorf("mark completion: %w", err)
	}

	t.mu.Lock()
	t.done[part.ID()] = true
	t.mu.Unlock()
	return nil
}

// RecordResult appends a finished run to the result history.
func (t *Tracker) RecordResult(ctx context.Context, part quiz.PartRef, score, total int, duration time.Duration) error {
	return t.results.Append(ctx, store.ResultData{
		Category:   part.Category,
		Level:      string(part.Level),
		Part:       part.Part,
		Score:      score,
		Total:      total,
		DurationMs: duration.Milliseconds(),
	})
}
