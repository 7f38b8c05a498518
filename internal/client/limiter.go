package client

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var ErrRateLimited = errors.New("payout gateway asked to slow down")

// RateLimiter - ограничитель частоты вызовов шлюза
type RateLimiter struct {
	limiter      *rate.Limiter
	blockedUntil time.Time
	mu           sync.Mutex
}

// NewRateLimiter - rps <= 0 снимает ограничение
func NewRateLimiter(rps float64) *RateLimiter {
	limit := rate.Inf
	burst := 1
	if rps > 0 {
		limit = rate.Limit(rps)
		burst = max(1, int(rps))
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Wait ждёт разрешения на вызов. Во время паузы после 429 сразу возвращает ErrRateLimited.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	rl.mu.Lock()
	blocked := time.Now().Before(rl.blockedUntil)
	rl.mu.Unlock()
	if blocked {
		return ErrRateLimited
	}
	return rl.limiter.Wait(ctx)
}

// BlockFor - пауза в вызовах шлюза на duration
func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if until := time.Now().Add(duration); until.After(rl.blockedUntil) {
		rl.blockedUntil = until
	}
}

func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return time.Minute // default
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return time.Minute // fallback
}
