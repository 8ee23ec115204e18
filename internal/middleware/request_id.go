package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIdMiddleware ensures every request carries a stable id: the incoming
// X-Request-Id header is reused when present, otherwise a new one is minted.
// The id is echoed back on the response so clients can correlate logs.
func (m Middleware) RequestIdMiddleware(ctx *gin.Context) {
	rid := ctx.GetHeader("X-Request-Id")
	if strings.TrimSpace(rid) == "" {
		rid = uuid.NewString()
	}

	ctx.Set("request_id", rid)
	ctx.Writer.Header().Set("X-Request-Id", rid)

	ctx.Next()
}
