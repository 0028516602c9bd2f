package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3

	LoginCooldown    = 15 * time.Minute
	RegisterCooldown = 30 * time.Minute
)

// LoginRateLimit throttles failed login attempts per client IP, backed by
// redis so the counters survive restarts and are shared across instances.
// A nil client disables the limiter.
func LoginRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return attemptLimit(rdb, "login", LoginMaxAttempts, LoginCooldown, http.StatusUnauthorized)
}

// RegisterRateLimit throttles registrations per client IP.
func RegisterRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return attemptLimit(rdb, "register", RegisterMaxAttempts, RegisterCooldown, http.StatusCreated)
}

// attemptLimit counts responses with countedStatus per IP and applies a
// cooldown once the budget is exhausted.
func attemptLimit(rdb *redis.Client, name string, maxAttempts int, cooldown time.Duration, countedStatus int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ctx := context.Background()
		ip := c.ClientIP()
		key := fmt.Sprintf("%s_attempts:%s", name, ip)
		cooldownKey := fmt.Sprintf("%s_cooldown:%s", name, ip)

		if rdb.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := rdb.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Too many attempts. Try again in %d minutes", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := rdb.Get(ctx, key).Int()
		if attempts >= maxAttempts {
			rdb.Set(ctx, cooldownKey, "1", cooldown)
			rdb.Del(ctx, key)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Too many attempts. Try again in %d minutes", int(cooldown.Minutes())),
				"retry_after": int(cooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		if c.Writer.Status() == countedStatus {
			pipe := rdb.Pipeline()
			pipe.Incr(ctx, key)
			pipe.Expire(ctx, key, cooldown)
			pipe.Exec(ctx)
		}
	}
}

// ipLimiters hands out one token bucket per client IP.
type ipLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

// APIRateLimit applies a per-IP token bucket to the whole API group.
func APIRateLimit(rps float64, burst int) gin.HandlerFunc {
	limiters := &ipLimiters{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"retry_after": 1,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
