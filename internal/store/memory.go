package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Memory is an in-memory Repos implementation used when the SQLite
// database can't be opened. Everything works for the lifetime of the
// process; nothing survives exit.
type Memory struct {
	mu          sync.Mutex
	seq         int64
	name        string
	completions map[string]Completion
	results     []Result
	events      []LLMEvent
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{completions: make(map[string]Completion)}
}

func (m *Memory) ProfileRepo() ProfileRepo       { return (*memProfileRepo)(m) }
func (m *Memory) CompletionRepo() CompletionRepo { return (*memCompletionRepo)(m) }
func (m *Memory) ResultRepo() ResultRepo         { return (*memResultRepo)(m) }
func (m *Memory) EventRepo() EventRepo           { return (*memEventRepo)(m) }
func (m *Memory) Close() error                   { return nil }

func (m *Memory) next() int64 {
	m.seq++
	return m.seq
}

type memProfileRepo Memory

func (r *memProfileRepo) Name(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.name, nil
}

func (r *memProfileRepo) SetName(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.name = name
	return nil
}

func (r *memProfileRepo) ClearName(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.name = ""
	return nil
}

type memCompletionRepo Memory

func (r *memCompletionRepo) All(_ context.Context) ([]Completion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Completion, 0, len(r.completions))
	for _, c := range r.completions {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CompletedAt.Before(out[j].CompletedAt)
	})
	return out, nil
}

func (r *memCompletionRepo) Mark(_ context.Context, category, level string, part int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := completionKey(category, level, part)
	if _, ok := r.completions[key]; ok {
		return nil
	}
	r.completions[key] = Completion{
		Category:    category,
		Level:       level,
		Part:        part,
		CompletedAt: time.Now(),
	}
	return nil
}

func (r *memCompletionRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completions = make(map[string]Completion)
	return nil
}

func completionKey(category, level string, part int) string {
	return fmt.Sprintf("%s|%s|%d", category, level, part)
}

type memResultRepo Memory

func (r *memResultRepo) Append(_ context.Context, data ResultData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := (*Memory)(r)
	r.results = append(r.results, Result{
		ID:         len(r.results) + 1,
		Sequence:   m.next(),
		Timestamp:  time.Now(),
		ResultData: data,
	})
	return nil
}

func (r *memResultRepo) Recent(_ context.Context, limit int) ([]Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Result, len(r.results))
	for i, res := range r.results {
		out[len(r.results)-1-i] = res
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memResultRepo) Totals(_ context.Context) (Totals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var t Totals
	for _, res := range r.results {
		t.Runs++
		t.Questions += res.Total
		t.Correct += res.Score
	}
	return t, nil
}

func (r *memResultRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = nil
	return nil
}

type memEventRepo Memory

func (r *memEventRepo) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := (*Memory)(r)
	r.events = append(r.events, LLMEvent{
		ID:                  len(r.events) + 1,
		Sequence:            m.next(),
		Timestamp:           time.Now(),
		LLMRequestEventData: data,
	})
	return nil
}

func (r *memEventRepo) QueryLLMEvents(_ context.Context, opts QueryOpts) ([]LLMEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]LLMEvent, 0, len(r.events))
	for i := len(r.events) - 1; i >= 0; i-- {
		e := r.events[i]
		if opts.Purpose != "" && e.Purpose != opts.Purpose {
			continue
		}
		if opts.After > 0 && e.Sequence <= opts.After {
			continue
		}
		out = append(out, e)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (r *memEventRepo) GetLLMEvent(_ context.Context, id int) (*LLMEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.events {
		if e.ID == id {
			copied := e
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memEventRepo) UsageByPurpose(_ context.Context) ([]UsageStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byPurpose := make(map[string]*UsageStat)
	for _, e := range r.events {
		stat, ok := byPurpose[e.Purpose]
		if !ok {
			stat = &UsageStat{Purpose: e.Purpose}
			byPurpose[e.Purpose] = stat
		}
		stat.Requests++
		if !e.Success {
			stat.Failures++
		}
		stat.InputTokens += e.InputTokens
		stat.OutputTokens += e.OutputTokens
	}

	out := make([]UsageStat, 0, len(byPurpose))
	for _, stat := range byPurpose {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}
