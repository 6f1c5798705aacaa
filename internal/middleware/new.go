package middleware

import (
	goredis "github.com/redis/go-redis/v9"

	"todo-service/pkg/log"
)

// Config is the dependency bag passed to New().
type Config struct {
	AllowedOrigins  []string
	RateLimitPerMin int
	// Redis switches rate limiting to a shared fixed window. Nil keeps it in process.
	Redis *goredis.Client
}

type Middleware struct {
	l       log.Logger
	origins map[string]struct{}
	limiter limiter
}

func New(l log.Logger, cfg Config) Middleware {
	origins := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		origins[o] = struct{}{}
	}

	var lim limiter
	if cfg.RateLimitPerMin > 0 {
		if cfg.Redis != nil {
			lim = newRedisLimiter(cfg.Redis, cfg.RateLimitPerMin)
		} else {
			lim = newMemoryLimiter(cfg.RateLimitPerMin)
		}
	}

	return Middleware{
		l:       l,
		origins: origins,
		limiter: lim,
	}
}
