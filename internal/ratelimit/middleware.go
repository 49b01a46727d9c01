package ratelimit

import (
	"fmt"

	"engage-server/internal/apierrors"
	"engage-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per client IP within scope. Limiter failures
// let the request through.
func (s *Service) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := observability.GetRealClientIP(c)

		ctx = observability.WithFields(ctx,
			observability.Field{Key: "rate_limit_scope", Value: scope},
			observability.Field{Key: "client_ip", Value: ip},
		)

		result, err := s.Check(ctx, scope+":"+ip)
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed", err)
			c.Next()
			return
		}
		if result.Limit == 0 {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := (result.RetryAfterMs + 999) / 1000
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			s.logger.Warn(ctx, "rate limit exceeded")
			apierrors.RespondWithError(c, apierrors.TooManyRequests("Too many attempts, try again later").
				WithDetails(gin.H{"retry_after": retryAfter}))
			return
		}

		c.Next()
	}
}
