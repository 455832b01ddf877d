package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThresholdAndProbes(t *testing.T) {
	t.Parallel()

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	breaker := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 2, OpenTimeout: 10 * time.Second})
	breaker.now = func() time.Time { return clock }

	if err := breaker.Allow(); err != nil {
		t.Fatalf("closed breaker rejected call: %v", err)
	}
	breaker.RecordFailure()
	breaker.RecordFailure()

	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}

	clock = clock.Add(11 * time.Second)
	if err := breaker.Allow(); err != nil {
		t.Fatalf("expected probe call after timeout, got %v", err)
	}
	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got %v", err)
	}

	breaker.RecordSuccess()
	if got := breaker.State(); got != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", got)
	}
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	t.Parallel()

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	breaker := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: 5 * time.Second})
	breaker.now = func() time.Time { return clock }

	breaker.RecordFailure()
	clock = clock.Add(6 * time.Second)
	if err := breaker.Allow(); err != nil {
		t.Fatalf("expected probe, got %v", err)
	}
	breaker.RecordFailure()

	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected re-opened circuit, got %v", err)
	}
}
