package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// slidingWindowScript atomically trims the window, counts it, and either
// records the request or reports how long until the oldest entry expires.
var slidingWindowScript = redis.NewScript(`
	local key = KEYS[1]
	local counter_key = KEYS[2]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local limit = tonumber(ARGV[3])
	local window_ms = tonumber(ARGV[4])

	redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)
	local count = redis.call('ZCARD', key)

	if count < limit then
		local counter = redis.call('INCR', counter_key)
		redis.call('ZADD', key, now, now .. ':' .. counter)
		redis.call('PEXPIRE', key, window_ms)
		redis.call('PEXPIRE', counter_key, window_ms)
		return {1, 0}
	end

	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	local retry_after = 0
	if #oldest >= 2 then
		retry_after = oldest[2] + window_ms - now
	end
	return {0, retry_after}
`)

// RateLimiter is a Redis-backed sliding-window limiter keyed by client IP.
// It protects the public auth endpoints against credential stuffing.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
	log    zerolog.Logger
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window
// per client IP.
func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: "ratelimit:auth:",
		log:    log,
	}
}

// Middleware returns a Gin middleware enforcing the limit. Redis failures
// fail open: an unreachable limiter must not take the login flow down.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.prefix + c.ClientIP()
		now := time.Now()

		result, err := slidingWindowScript.Run(c.Request.Context(), rl.rdb,
			[]string{key, key + ":counter"},
			now.UnixMilli(),
			now.Add(-rl.window).UnixMilli(),
			rl.limit,
			rl.window.Milliseconds(),
		).Slice()
		if err != nil {
			rl.log.Warn().Err(err).Msg("Rate limiter unavailable, failing open")
			c.Next()
			return
		}

		if len(result) < 2 {
			rl.log.Warn().Msg("Rate limiter returned unexpected result, failing open")
			c.Next()
			return
		}

		allowed, ok := result[0].(int64)
		if !ok {
			rl.log.Warn().Msg("Rate limiter returned unexpected result, failing open")
			c.Next()
			return
		}

		if allowed != 1 {
			if retryAfterMs, ok := result[1].(int64); ok && retryAfterMs > 0 {
				seconds := (retryAfterMs + 999) / 1000
				c.Header("Retry-After", strconv.FormatInt(seconds, 10))
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests. Please try again later."})
			return
		}

		c.Next()
	}
}
