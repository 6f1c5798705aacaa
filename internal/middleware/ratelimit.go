package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"todo-service/pkg/response"
)

type limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles each client IP. It is a no-op when no limit is configured.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		ok, err := m.limiter.Allow(ctx, c.ClientIP())
		if err != nil {
			// fail open
			m.l.Warnf(ctx, "middleware.RateLimit: %v", err)
			c.Header("X-RateLimit-Error", "redis-error")
			c.Next()
			return
		}
		if !ok {
			rateLimitBlocked.WithLabelValues(routeLabel(c)).Inc()
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// memoryLimiter keeps a token bucket per key in an expiring LRU.
type memoryLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newMemoryLimiter(requestsPerMin int) *memoryLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &memoryLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max unique clients
			nil,           // no eviction callback
			time.Minute*5, // idle clients are forgotten
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (ml *memoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	lim, ok := ml.limiters.Get(key)
	if !ok {
		lim = rate.NewLimiter(ml.rate, ml.burst)
		ml.limiters.Add(key, lim)
	}
	return lim.Allow(), nil
}

// redisLimiter is a fixed one-minute window shared by every replica.
// key format: rl:<window_seconds>:<identifier>
type redisLimiter struct {
	client *goredis.Client
	max    int64
	window time.Duration
}

func newRedisLimiter(client *goredis.Client, requestsPerMin int) *redisLimiter {
	return &redisLimiter{
		client: client,
		max:    int64(requestsPerMin),
		window: time.Minute,
	}
}

func (rl *redisLimiter) key(ident string) string {
	return "rl:" + strconv.FormatInt(int64(rl.window.Seconds()), 10) + ":" + ident
}

func (rl *redisLimiter) Allow(ctx context.Context, ident string) (bool, error) {
	key := rl.key(ident)
	val, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if val == 1 {
		if err := rl.client.Expire(ctx, key, rl.window).Err(); err != nil {
			return false, err
		}
	}
	return val <= rl.max, nil
}
