// Package resilience guards outbound PMS calls with a token bucket and a
// circuit breaker. Both are process-wide: the upstream quota and outages
// belong to the API endpoint, not to any one account.
package resilience

import (
	"context"
	"sync"
	"time"

	"treesync/internal/pkg/clock"
)

// Limiter is a token bucket. Acquire parks the caller on a short poll
// interval until a token is available; there is no fairness guarantee
// beyond first-come-approximate.
type Limiter struct {
	mu           sync.Mutex
	tokens       float64
	capacity     float64
	refillPerSec float64
	lastRefill   time.Time
	pollInterval time.Duration
	clk          clock.Clock
}

func NewLimiter(capacity int, refillPerSec float64, pollInterval time.Duration, clk clock.Clock) *Limiter {
	if pollInterval <= 0 {
		pollInterval = 100 * time.Millisecond
	}
	return &Limiter{
		tokens:       float64(capacity),
		capacity:     float64(capacity),
		refillPerSec: refillPerSec,
		lastRefill:   clk.Now(),
		pollInterval: pollInterval,
		clk:          clk,
	}
}

func (l *Limiter) refill() {
	now := l.clk.Now()
	elapsed := now.Sub(l.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}
	l.tokens = min(l.capacity, l.tokens+elapsed*l.refillPerSec)
	l.lastRefill = now
}

// TryAcquire debits one token if available without blocking.
func (l *Limiter) TryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	if l.tokens >= 1 {
		l.tokens--
		return true
	}
	return false
}

// Acquire blocks cooperatively until a token is available or ctx is done.
func (l *Limiter) Acquire(ctx context.Context) error {
	for {
		if l.TryAcquire() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.pollInterval):
		}
	}
}

// AvailableTokens reports the current whole-token balance.
func (l *Limiter) AvailableTokens() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	return int(l.tokens)
}
