package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreakerTransitions(t *testing.T) {
	b := NewCircuitBreaker(2, 5*time.Second, 1)

	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("closed circuit should allow: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitClosed {
		t.Fatalf("one failure below threshold, got state %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitOpen {
		t.Fatalf("threshold reached, want open, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("open circuit should reject, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("half-open probe should pass, got %v", err)
	}
	if state := b.State(); state != CircuitHalfOpen {
		t.Fatalf("want half-open during probe, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitClosed {
		t.Fatalf("successful probe should close circuit, got %s", state)
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("closed circuit should allow again: %v", err)
	}
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	b := NewCircuitBreaker(1, 5*time.Second, 1)

	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("half-open probe should pass, got %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitOpen {
		t.Fatalf("failed probe should reopen circuit, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("reopened circuit should reject, got %v", err)
	}
}

func TestCircuitBreakerHalfOpenLimitsProbes(t *testing.T) {
	b := NewCircuitBreaker(1, 5*time.Second, 1)

	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("first probe should pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("second concurrent probe should be rejected, got %v", err)
	}
}

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	t.Parallel()

	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	want := DefaultCircuitBreakerConfig()
	if got != want {
		t.Fatalf("normalized zero config: got=%+v want=%+v", got, want)
	}

	custom := CircuitBreakerConfig{Enabled: true, FailureThreshold: 3, OpenTimeout: time.Second, ProbeLimit: 4}
	if got := NormalizeCircuitBreakerConfig(custom); got != custom {
		t.Fatalf("in-range config should pass through, got=%+v", got)
	}
}
