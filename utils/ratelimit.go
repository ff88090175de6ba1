package utils

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/kusasa/backend/models"
)

const (
	limiterIdle    = 10 * time.Minute
	limiterMaxKeys = 10000
)

// KeyedLimiter keeps one token bucket per caller key
type KeyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*keyedEntry
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

type keyedEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyedLimiter allows perMinute events per key, with bursts up to perMinute.
// A non-positive perMinute disables limiting.
func NewKeyedLimiter(perMinute int) *KeyedLimiter {
	k := &KeyedLimiter{
		limiters: make(map[string]*keyedEntry),
		limit:    rate.Inf,
		burst:    1,
		now:      time.Now,
	}
	if perMinute > 0 {
		k.limit = rate.Every(time.Minute / time.Duration(perMinute))
		k.burst = perMinute
	}
	return k
}

// Allow reports whether key may proceed now
func (k *KeyedLimiter) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	entry, ok := k.limiters[key]
	if !ok {
		if len(k.limiters) >= limiterMaxKeys {
			k.evictIdle(now)
		}
		entry = &keyedEntry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

func (k *KeyedLimiter) evictIdle(now time.Time) {
	for key, entry := range k.limiters {
		if now.Sub(entry.lastSeen) > limiterIdle {
			delete(k.limiters, key)
		}
	}
}

// RateLimitMiddleware rejects callers over their budget with 429.
// keyFn picks the bucket; an empty key falls back to the client IP.
func RateLimitMiddleware(limiter *KeyedLimiter, keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ""
		if keyFn != nil {
			key = keyFn(c)
		}
		if key == "" {
			key = c.ClientIP()
		}

		if !limiter.Allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error: "Too many analysis requests. Please wait a minute and try again.",
				Code:  http.StatusTooManyRequests,
			})
			return
		}
		c.Next()
	}
}
