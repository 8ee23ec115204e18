package ratelimiter

import (
	"time"

	"github.com/piddash/pidgen/internal/config"
	"github.com/piddash/pidgen/internal/util"
	"go.uber.org/zap"
)

type Limiter interface {
	Allow(ip string) (bool, time.Duration)
}

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return NewFixedWindowLimiter(cfg, logger)
}
