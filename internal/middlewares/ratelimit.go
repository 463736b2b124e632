package middlewares

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/skillswap-in/skillswap-server/internal/logger"
)

// Default login rate limit: 5 attempts per 15-minute window per caller.
const loginAttemptLimit = 5

// AttemptCounter counts attempts per caller key within a fixed window.
type AttemptCounter interface {
	Increment(ctx context.Context, callerKey string) (int64, time.Duration, error)
}

// LoginRateLimitMiddleware caps login attempts per client IP. Excess
// attempts get 429 with a Retry-After hint. Counter failures fail
// open: a broken limiter must not lock everyone out.
func LoginRateLimitMiddleware(counter AttemptCounter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			callerKey := clientIP(r)

			count, ttl, err := counter.Increment(ctx, callerKey)
			if err != nil {
				logger.Log.Errorw("login attempt counter unavailable", "caller", callerKey, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > loginAttemptLimit {
				retryAfter := int(ttl.Seconds())
				if retryAfter <= 0 {
					retryAfter = int((15 * time.Minute).Seconds())
				}

				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"msg": "Too many login attempts. Please try again after 15 minutes.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the caller address, preferring the first entry of
// X-Forwarded-For when the service sits behind a proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
