package ratelimiter

import (
	"sync"
	"time"

	"github.com/piddash/pidgen/internal/config"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client ip within a fixed time
// window. Counters reset when the window rolls over; the retry-after hint is
// the time left in the current window.
type FixedWindowRateLimiter struct {
	sync.RWMutex
	clients     map[string]int
	limit       int
	window      time.Duration
	windowStart time.Time
	logger      *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients:     make(map[string]int),
		limit:       cfg.RequestsPerTimeFrame,
		window:      cfg.TimeFrame,
		windowStart: time.Now(),
		logger:      logger,
	}
}

func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := time.Now()
	if elapsed := now.Sub(rl.windowStart); elapsed >= rl.window {
		rl.clients = make(map[string]int)
		rl.windowStart = now
	}

	if rl.clients[ip] >= rl.limit {
		retryAfter := rl.window - now.Sub(rl.windowStart)
		rl.logger.Debugf("Rate limit exceeded for ip: %s, retry after: %v", ip, retryAfter)
		return false, retryAfter
	}

	rl.clients[ip]++
	return true, 0
}
