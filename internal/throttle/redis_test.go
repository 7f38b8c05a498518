package throttle

import (
	"context"
	"testing"
	"time"
)

func TestAllowWithoutRedis(t *testing.T) {
	testCases := []struct {
		TestName string
		Limiter  *RedisLimiter
		Subject  string
	}{
		{TestName: "Success. Nil limiter #1", Limiter: nil, Subject: "earner"},
		{TestName: "Success. No client #2", Limiter: NewRedisLimiter(nil, "", 5, time.Minute), Subject: "earner"},
		{TestName: "Success. Limit disabled #3", Limiter: NewRedisLimiter(nil, "x", 0, time.Minute), Subject: "earner"},
		{TestName: "Success. Empty subject #4", Limiter: NewRedisLimiter(nil, "x", 5, time.Minute), Subject: " "},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			allowed, retryAfter, err := tc.Limiter.Allow(context.Background(), tc.Subject)
			if err != nil || !allowed || retryAfter != 0 {
				t.Errorf("Expected pass-through, got allowed=%v retryAfter=%v err=%v", allowed, retryAfter, err)
			}
		})
	}
}

func TestNewRedisLimiterPrefix(t *testing.T) {
	if got := NewRedisLimiter(nil, "  ", 1, time.Second).prefix; got != "redemption:rate_limit" {
		t.Errorf("Expected default prefix, got '%s'", got)
	}
	if got := NewRedisLimiter(nil, "svc:limit:", 1, time.Second).prefix; got != "svc:limit" {
		t.Errorf("Expected trimmed prefix, got '%s'", got)
	}
}
