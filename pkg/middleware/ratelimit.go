package middleware

import (
	"net"
	"net/http"

	"webuild-dashboard/pkg/utils"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit applies a per-IP sliding limit backed by Redis. It is used on the
// auth endpoints to slow down credential stuffing and verification spam. If
// the limiter backend is unreachable the request is allowed through with a
// warning rather than taking the login path down.
func RateLimit(rdb *redis.Client, perMinute int, logger *zap.Logger) func(http.Handler) http.Handler {
	limiter := redis_rate.NewLimiter(rdb)
	limit := redis_rate.PerMinute(perMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "ratelimit:" + clientIP(r)

			res, err := limiter.Allow(r.Context(), key, limit)
			if err != nil {
				logger.Warn("Rate limiter unavailable, failing open",
					zap.Error(err),
					zap.String("key", key),
				)
				next.ServeHTTP(w, r)
				return
			}

			if res.Allowed == 0 {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", key),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseJSON(w, http.StatusTooManyRequests, false,
					"Too many requests, slow down", nil, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
