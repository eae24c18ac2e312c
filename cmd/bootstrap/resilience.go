package bootstrap

import (
	"treesync/internal/pkg/clock"
	"treesync/internal/pkg/config"
	"treesync/internal/pkg/resilience"

	"go.uber.org/fx"
)

var ResilienceModule = fx.Module("resilience",
	fx.Provide(
		clock.NewRealClock,
		NewGuard,
	),
)

func NewGuard(cfg config.Config, clk clock.Clock) *resilience.Guard {
	limiter := resilience.NewLimiter(
		cfg.Resilience.RatePerMinute,
		float64(cfg.Resilience.RatePerMinute)/60.0,
		cfg.Resilience.PollInterval,
		clk,
	)
	breaker := resilience.NewBreaker(resilience.BreakerConfig{
		FailureThreshold: cfg.Resilience.FailureThreshold,
		SuccessThreshold: cfg.Resilience.SuccessThreshold,
		CoolDown:         cfg.Resilience.CoolDown,
	}, clk)
	return resilience.NewGuard(limiter, breaker)
}
