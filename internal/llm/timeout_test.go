package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// slowProvider blocks until its context is done.
type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, &ErrProviderUnavailable{Err: ctx.Err()}
}

func (slowProvider) ModelID() string { return "slow" }

func TestTimeoutProvider_CancelsSlowCalls(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected error from timed-out call")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded in chain, got: %v", err)
	}
	if elapsed > time.Second {
		t.Fatalf("call was not bounded, took %s", elapsed)
	}
}

func TestTimeoutProvider_PassesThroughFastCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestTimeoutProvider_ZeroTimeoutUnbounded(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithTimeout(mock, 0)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTimeoutProvider_ModelID(t *testing.T) {
	p := WithTimeout(slowProvider{}, time.Second)
	if p.ModelID() != "slow" {
		t.Fatalf("expected 'slow', got %q", p.ModelID())
	}
}
