package client

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestRateLimiterBlockFor(t *testing.T) {
	rl := NewRateLimiter(0)
	ctx := context.Background()

	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	rl.BlockFor(50 * time.Millisecond)
	if err := rl.Wait(ctx); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("Expected ErrRateLimited, got: '%v'", err)
	}

	time.Sleep(80 * time.Millisecond)
	if err := rl.Wait(ctx); err != nil {
		t.Errorf("Expected limiter to recover, got: '%v'", err)
	}
}

func TestParseRetryAfter(t *testing.T) {
	testCases := []struct {
		TestName string
		Value    string
		Expected time.Duration
	}{
		{TestName: "Success. Seconds #1", Value: "120", Expected: 2 * time.Minute},
		{TestName: "Success. Missing header #2", Value: "", Expected: time.Minute},
		{TestName: "Success. Garbage #3", Value: "soon", Expected: time.Minute},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			headers := make(http.Header)
			if tc.Value != "" {
				headers.Set("Retry-After", tc.Value)
			}
			if got := ParseRetryAfter(headers); got != tc.Expected {
				t.Errorf("Expected %v, got %v", tc.Expected, got)
			}
		})
	}
}
