package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/piddash/pidgen/internal/util"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	if !m.app.Config.RateLimiter.Enabled {
		ctx.Next()
		return
	}

	allowed, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allowed {
		ctx.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Rate limit exceeded, retry later", nil, nil)
		ctx.Abort()
		return
	}

	ctx.Next()
}
