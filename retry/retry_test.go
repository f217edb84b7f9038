package retry

import (
	"context"
	"errors"
	"testing"

	"github.com/pchaumet/unicall/caller"
	"github.com/pchaumet/unicall/llm"
)

// flakyAdapter fails with an overload signal a fixed number of times before
// succeeding.
type flakyAdapter struct {
	failures int
	calls    int
}

func (f *flakyAdapter) Invoke(_ context.Context, _ *llm.Request) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", llm.NewOverloadedError(llm.ServiceXAI, "model overloaded", nil)
	}
	return "recovered", nil
}

// failingAdapter always fails with a non-overload error.
type failingAdapter struct {
	calls int
}

func (f *failingAdapter) Invoke(_ context.Context, _ *llm.Request) (string, error) {
	f.calls++
	return "", errors.New("bad request")
}

func newTestCaller(t *testing.T, adapter llm.Adapter) *caller.Caller {
	t.Helper()
	// xAI has a zero cooldown, which keeps the backoff seed at the small
	// default instead of a multi-second provider cooldown.
	c, err := caller.New("xai", "test-model", "key",
		caller.WithHandlers(map[llm.Service]llm.Adapter{llm.ServiceXAI: adapter}))
	if err != nil {
		t.Fatalf("Failed to create caller: %v", err)
	}
	return c
}

func TestCallWithBackoff_RecoversFromOverload(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping backoff timing test in short mode")
	}
	adapter := &flakyAdapter{failures: 2}
	c := newTestCaller(t, adapter)

	got, err := CallWithBackoff(context.Background(), c, "anything", DefaultMaxRetries)
	if err != nil {
		t.Fatalf("CallWithBackoff failed: %v", err)
	}
	if got != "recovered" {
		t.Errorf("Expected %q, got %q", "recovered", got)
	}
	if adapter.calls != 3 {
		t.Errorf("Expected 3 calls, got %d", adapter.calls)
	}
}

func TestCallWithBackoff_PermanentOnGenericError(t *testing.T) {
	adapter := &failingAdapter{}
	c := newTestCaller(t, adapter)

	_, err := CallWithBackoff(context.Background(), c, "anything", DefaultMaxRetries)
	if err == nil {
		t.Fatal("Expected error")
	}
	if !llm.IsAPICallError(err) {
		t.Errorf("Expected API call error identity preserved, got %v", err)
	}
	if adapter.calls != 1 {
		t.Errorf("Expected exactly 1 call for a permanent error, got %d", adapter.calls)
	}
}

func TestCallWithBackoff_Success(t *testing.T) {
	adapter := &flakyAdapter{failures: 0}
	c := newTestCaller(t, adapter)

	got, err := CallWithBackoff(context.Background(), c, "anything", DefaultMaxRetries)
	if err != nil {
		t.Fatalf("CallWithBackoff failed: %v", err)
	}
	if got != "recovered" {
		t.Errorf("Expected %q, got %q", "recovered", got)
	}
}
