package ratelimiter

import (
	"testing"
	"time"

	"github.com/piddash/pidgen/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimiter(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 2,
		TimeFrame:            time.Minute,
	}, nil)

	allowed, _ := limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1")
	assert.True(t, allowed)

	allowed, retryAfter := limiter.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))

	// other clients are counted independently
	allowed, _ = limiter.Allow("10.0.0.2")
	assert.True(t, allowed)
}

func TestFixedWindowResets(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            10 * time.Millisecond,
	}, nil)

	allowed, _ := limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1")
	assert.False(t, allowed)

	time.Sleep(15 * time.Millisecond)

	allowed, _ = limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
}
