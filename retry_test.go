package namecast

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
	}
}

func TestWithRetrySucceedsAfterRetryableFailures(t *testing.T) {
	attempts := 0
	result, err := WithRetry(context.Background(), fastRetryConfig(), func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", &EngineError{Message: "rate limited", Retryable: true}
		}
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("WithRetry() error: %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %q, want %q", result, "ok")
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestWithRetryStopsOnNonRetryable(t *testing.T) {
	attempts := 0
	_, err := WithRetry(context.Background(), fastRetryConfig(), func() (string, error) {
		attempts++
		return "", &EngineError{Message: "invalid request", Retryable: false}
	})

	if err == nil {
		t.Fatal("expected an error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (non-retryable must not retry)", attempts)
	}
}

func TestWithRetryExhaustsRetries(t *testing.T) {
	attempts := 0
	_, err := WithRetry(context.Background(), fastRetryConfig(), func() (string, error) {
		attempts++
		return "", &EngineError{Message: "still rate limited", Retryable: true}
	})

	if err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if attempts != 4 {
		t.Errorf("attempts = %d, want 4 (initial + 3 retries)", attempts)
	}
}

func TestWithRetryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(ctx, fastRetryConfig(), func() (string, error) {
		return "ok", nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"retryable engine error", &EngineError{Retryable: true}, true},
		{"non-retryable engine error", &EngineError{Retryable: false}, false},
		{"timeout engine error", &EngineError{Retryable: true, Timeout: true}, true},
		{"context cancelled", context.Canceled, false},
		{"context deadline", context.DeadlineExceeded, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.expected {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestRetryableEngine(t *testing.T) {
	engine := newStubEngine()
	engine.err = &EngineError{Message: "rate limited", Retryable: true}

	retryable := NewRetryableEngine(engine, fastRetryConfig())
	_, err := retryable.Complete(context.Background(), "prompt")

	if err == nil {
		t.Fatal("expected an error")
	}
	if engine.calls != 4 {
		t.Errorf("engine calls = %d, want 4", engine.calls)
	}
}
