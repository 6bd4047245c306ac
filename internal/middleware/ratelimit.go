package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"privassistant/pkg/response"
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimit throttles requests per client IP using a token bucket per
// client, kept in an expiring LRU so idle clients cost nothing.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := mw.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(mw.rate, mw.burst)
			mw.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c, errRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
