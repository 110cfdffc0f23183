package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"protegeo/internal/infrastructure/ratelimit"
	"protegeo/pkg/errors"
	"protegeo/pkg/logger"
	"protegeo/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// LimitAction rate-limits an authenticated action per user. Must run after
// the auth middleware so the uid is on the context.
func (m *RateLimitMiddleware) LimitAction(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok || uid == "" {
				// Fall back to the caller's address for unauthenticated routes.
				uid = c.RealIP()
			}

			allowed, wait := m.limiter.Allow(uid, action)
			if !allowed {
				logger.Warn("Rate limit hit: user=%s action=%s wait=%v", uid, action, wait)
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Too many requests, retry in %d seconds", int(wait.Seconds())+1),
				))
			}

			return next(c)
		}
	}
}
