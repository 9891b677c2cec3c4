package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/renovalte/renovalte/internal/util"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	allow, resetAt := m.rateLimiter.Allow(ctx.ClientIP())
	if !allow {
		retryAfter := time.Until(resetAt).Round(time.Second)
		ctx.Header("Retry-After", retryAfter.String())
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Rate limit exceeded", nil, nil)
		ctx.Abort()
		return
	}

	ctx.Next()
}
