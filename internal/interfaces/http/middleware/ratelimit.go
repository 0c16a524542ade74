package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ticketsla/ticketsla/internal/infrastructure/ratelimit"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
	"github.com/ticketsla/ticketsla/internal/shared/utils"
)

// RateLimit enforces limiter per client IP. A nil limiter lets everything
// through, and so does a limiter that cannot reach its backend.
func RateLimit(limiter ratelimit.Limiter, scope string, log logger.Interface) gin.HandlerFunc {
	if limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Infow("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
