package store

import (
	"context"
	"time"
)

// Repos is the set of repositories the app needs. Both the SQLite-backed
// Store and the in-memory fallback implement it, so the UI layer never
// cares whether persistence is available.
type Repos interface {
	ProfileRepo() ProfileRepo
	CompletionRepo() CompletionRepo
	ResultRepo() ResultRepo
	EventRepo() EventRepo
	Close() error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose label ("" = all)
	After   int64  // sequence > After
}

// ProfileRepo manages the single local player profile.
type ProfileRepo interface {
	// Name returns the stored display name, or "" if none is set.
	Name(ctx context.Context) (string, error)

	// SetName stores the display name, creating the profile if needed.
	SetName(ctx context.Context, name string) error

	// ClearName removes the profile entirely.
	ClearName(ctx context.Context) error
}

// Completion records that a part was finished at least once.
type Completion struct {
	Category    string
	Level       string
	Part        int
	CompletedAt time.Time
}

// CompletionRepo tracks which parts have been completed.
type CompletionRepo interface {
	// All returns every recorded completion.
	All(ctx context.Context) ([]Completion, error)

	// Mark records a completion. Marking an already-completed part is a no-op.
	Mark(ctx context.Context, category, level string, part int) error

	// Clear deletes every recorded completion.
	Clear(ctx context.Context) error
}

// ResultData captures the outcome of one finished quiz run.
type ResultData struct {
	Category   string
	Level      string
	Part       int
	Score      int
	Total      int
	DurationMs int64
}

// Result is a stored quiz result with its event metadata.
type Result struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ResultData
}

// Totals aggregates all stored quiz results.
type Totals struct {
	Runs      int
	Questions int
	Correct   int
}

// ResultRepo keeps the full history of quiz runs, including repeats.
type ResultRepo interface {
	// Append records a finished run.
	Append(ctx context.Context, data ResultData) error

	// Recent returns the most recent results, newest first.
	Recent(ctx context.Context, limit int) ([]Result, error)

	// Totals returns aggregate counts across all runs.
	Totals(ctx context.Context) (Totals, error)

	// Clear deletes the entire run history.
	Clear(ctx context.Context) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// UsageStat aggregates LLM usage for one purpose label.
type UsageStat struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// UsageByPurpose aggregates token usage per purpose label.
	UsageByPurpose(ctx context.Context) ([]UsageStat, error)
}
