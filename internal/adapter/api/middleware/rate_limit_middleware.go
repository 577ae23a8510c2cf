package middleware

import (
	"net/http"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// LimitAction rate limits the given action per authenticated user. Must run
// after Authenticate so the uid is in the context.
func (m *RateLimitMiddleware) LimitAction(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			allowed, wait := m.limiter.Allow(uid, action)
			if !allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(wait.Seconds()),
				})
			}

			return next(c)
		}
	}
}
