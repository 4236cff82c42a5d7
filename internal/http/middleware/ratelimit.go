package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ClientRateLimit allows perMinute requests per client IP with a burst of
// the same size. Idle clients are forgotten after ten minutes.
func ClientRateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}
	var (
		mu      sync.Mutex
		clients = map[string]*client{}
		limit   = rate.Every(time.Minute / time.Duration(perMinute))
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		for k, v := range clients {
			if now.Sub(v.lastSeen) > 10*time.Minute {
				delete(clients, k)
			}
		}
		cl, ok := clients[ip]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(limit, perMinute)}
			clients[ip] = cl
		}
		cl.lastSeen = now
		allowed := cl.limiter.AllowN(now, 1)
		mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "demasiados intentos, espere un momento",
				"code":       "rate_limited",
				"message":    "demasiados intentos, espere un momento",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
