package llm

import (
	"context"
	"time"
)

// TimeoutProvider is a decorator that bounds every Generate call with a
// deadline. There is deliberately no retry companion: each quiz-facing AI
// call gets a single attempt, and the caller decides what a failure means
// (selection reset for generation, fallback text for explanations).
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider so every call runs under the given deadline.
// A non-positive timeout leaves requests unbounded.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	return &TimeoutProvider{inner: p, timeout: timeout}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}
	return t.inner.Generate(ctx, req)
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
