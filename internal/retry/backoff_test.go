package retry

import (
	"testing"
	"time"
)

func TestExponentialBackoff_NextDelay_Growth(t *testing.T) {
	b := NewExponentialBackoff(5,
		WithInitialDelay(100*time.Millisecond),
		WithMaxDelay(1*time.Second),
		WithMultiplier(2.0),
		WithJitter(0),
	)

	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{2, 400 * time.Millisecond},
		{3, 800 * time.Millisecond},
		{4, 1 * time.Second}, // capped at maxDelay
		{5, 1 * time.Second},
	}

	for _, tc := range cases {
		got := b.NextDelay(tc.attempt)
		if got != tc.want {
			t.Errorf("NextDelay(%d) = %v, want %v", tc.attempt, got, tc.want)
		}
	}
}

func TestExponentialBackoff_NextDelay_Jitter(t *testing.T) {
	// Deterministic jitter source: 0.75 maps to +50% of the jitter range.
	b := NewExponentialBackoff(3,
		WithInitialDelay(100*time.Millisecond),
		WithJitter(0.1),
		WithJitterFunc(func() float64 { return 0.75 }),
	)

	// 100ms * (1 + 0.1*(0.75-0.5)*2) = 105ms
	got := b.NextDelay(0)
	want := 105 * time.Millisecond
	if got != want {
		t.Errorf("NextDelay(0) = %v, want %v", got, want)
	}
}

func TestExponentialBackoff_Defaults(t *testing.T) {
	b := NewExponentialBackoff(3)
	if b.MaxAttempts() != 3 {
		t.Errorf("MaxAttempts() = %d, want 3", b.MaxAttempts())
	}
}
