package middleware

import (
	"sync"
	"time"

	"ajcc-portal/internal/global/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit throttles a route per client IP. Used on the login endpoint to
// slow down credential guessing. Idle limiter entries are dropped after an
// hour so the map does not grow without bound.
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*ipLimiter)
		lastGC   = time.Now()
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		if time.Since(lastGC) > time.Hour {
			for k, v := range limiters {
				if time.Since(v.lastSeen) > time.Hour {
					delete(limiters, k)
				}
			}
			lastGC = time.Now()
		}
		l, ok := limiters[ip]
		if !ok {
			l = &ipLimiter{limiter: rate.NewLimiter(r, burst)}
			limiters[ip] = l
		}
		l.lastSeen = time.Now()
		allowed := l.limiter.Allow()
		mu.Unlock()

		if !allowed {
			response.Fail(c, response.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
