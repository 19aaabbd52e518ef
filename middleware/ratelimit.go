package middleware

import (
	"log"

	"cloudcache/services"
	"cloudcache/utils"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware guards the public credential endpoints with the
// Redis-backed fixed-window limiter. A nil limiter disables limiting; a
// Redis outage fails open so credentials stay reachable.
func RateLimitMiddleware(limiter *services.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("Rate limiter unavailable: %v", err)
			utils.TrackError("ratelimit", "backend_unavailable")
			c.Next()
			return
		}

		if !allowed {
			utils.TrackError("ratelimit", "limit_exceeded")
			utils.TooManyRequests(c, "Too many attempts, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
