package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type bucket struct {
	count       int
	windowStart time.Time
}

// RateLimit returns middleware that enforces a per-client request limit
// within a fixed window. It guards the login route against credential
// guessing; counters live in memory and reset when the window rolls over.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	var mu sync.Mutex
	buckets := make(map[string]*bucket)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		b, ok := buckets[ip]
		if !ok || now.Sub(b.windowStart) > window {
			b = &bucket{windowStart: now}
			buckets[ip] = b
		}
		b.count++
		count := b.count
		mu.Unlock()

		if count > limit {
			slog.Debug("rate limited", "ip", ip, "count", count, "limit", limit)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many attempts. Try again later.",
			})
			return
		}

		c.Next()
	}
}
