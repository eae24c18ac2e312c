package resilience

import "context"

// Guard bundles the shared limiter and breaker. A breaker rejection does
// not consume a rate-limiter token: the token is only acquired once the
// breaker has admitted the call.
type Guard struct {
	limiter *Limiter
	breaker *Breaker
}

func NewGuard(limiter *Limiter, breaker *Breaker) *Guard {
	return &Guard{limiter: limiter, breaker: breaker}
}

func (g *Guard) Do(ctx context.Context, fn func() error) error {
	if err := g.breaker.allow(); err != nil {
		return err
	}
	if err := g.limiter.Acquire(ctx); err != nil {
		return err
	}
	if err := fn(); err != nil {
		g.breaker.onFailure()
		return err
	}
	g.breaker.onSuccess()
	return nil
}

func (g *Guard) BreakerState() State {
	return g.breaker.State()
}
