package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimit throttles requests per client IP. With a Redis client it uses a
// fixed one-second window shared across instances; without one it falls back
// to in-process token buckets.
func RateLimit(rdb *redis.Client, rps, burst int) gin.HandlerFunc {
	if rdb == nil {
		return localRateLimit(rps, burst)
	}

	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP() + ":" + time.Now().Format("15:04:05")

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Redis down should not take the API with it
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c.Request.Context(), key, time.Second)
		}

		if count > int64(rps+burst) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func localRateLimit(rps, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[ip] = l
		}
		return l
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
