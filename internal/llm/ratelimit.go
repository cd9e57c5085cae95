package llm

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// rateLimiter implements a simple token bucket rate limiter shared by the
// HTTP-backed providers. Tokens refill lazily on acquisition based on the
// elapsed time since the last refill, so there is no background goroutine
// to manage.
type rateLimiter struct {
	lastRefill time.Time
	tokens     int
	capacity   int
	refillRate int
	mu         sync.Mutex
}

func newRateLimiter(requestsPerMinute int) *rateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}

	return &rateLimiter{
		tokens:     requestsPerMinute,
		capacity:   requestsPerMinute,
		refillRate: requestsPerMinute,
		lastRefill: time.Now(),
	}
}

// wait blocks until a token is available or the context is canceled.
func (rl *rateLimiter) wait(ctx context.Context) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		if rl.tryAcquire() {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("rate limiter canceled: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func (rl *rateLimiter) tryAcquire() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.refillLocked(time.Now())

	if rl.tokens > 0 {
		rl.tokens--
		return true
	}
	return false
}

// refillLocked credits tokens earned since lastRefill. Callers hold mu.
func (rl *rateLimiter) refillLocked(now time.Time) {
	interval := time.Minute / time.Duration(rl.refillRate)
	earned := int(now.Sub(rl.lastRefill) / interval)
	if earned <= 0 {
		return
	}

	rl.tokens += earned
	if rl.tokens > rl.capacity {
		rl.tokens = rl.capacity
	}
	rl.lastRefill = rl.lastRefill.Add(time.Duration(earned) * interval)
}
