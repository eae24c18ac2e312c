package resilience

import (
	"sync"
	"time"

	"treesync/internal/pkg/clock"
	"treesync/internal/pkg/errs"
)

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

type BreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	CoolDown         time.Duration
}

// Breaker is a three-state circuit breaker. The OPEN→HALF_OPEN transition
// is lazy: it happens on the next call after the cool-down deadline, not
// on a timer.
type Breaker struct {
	mu           sync.Mutex
	state        State
	failureCount int
	successCount int
	nextAttempt  time.Time
	cfg          BreakerConfig
	clk          clock.Clock
}

func NewBreaker(cfg BreakerConfig, clk clock.Clock) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 2
	}
	if cfg.CoolDown <= 0 {
		cfg.CoolDown = time.Minute
	}
	return &Breaker{
		state: StateClosed,
		cfg:   cfg,
		clk:   clk,
	}
}

// Execute runs fn through the breaker. While OPEN and before the cool-down
// deadline it fails immediately with ErrCircuitOpen, without invoking fn.
func (b *Breaker) Execute(fn func() error) error {
	if err := b.allow(); err != nil {
		return err
	}

	if err := fn(); err != nil {
		b.onFailure()
		return err
	}
	b.onSuccess()
	return nil
}

func (b *Breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if b.clk.Now().Before(b.nextAttempt) {
			return errs.Mark(errs.New("upstream API unavailable"), errs.ErrCircuitOpen)
		}
		b.state = StateHalfOpen
		b.successCount = 0
	}
	return nil
}

func (b *Breaker) onSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failureCount = 0
	if b.state == StateHalfOpen {
		b.successCount++
		if b.successCount >= b.cfg.SuccessThreshold {
			b.state = StateClosed
			b.successCount = 0
		}
	}
}

func (b *Breaker) onFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failureCount++
	b.successCount = 0

	if b.state == StateHalfOpen || b.failureCount >= b.cfg.FailureThreshold {
		b.state = StateOpen
		b.nextAttempt = b.clk.Now().Add(b.cfg.CoolDown)
	}
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Reset returns the breaker to CLOSED, clearing all counters.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = StateClosed
	b.failureCount = 0
	b.successCount = 0
}
