package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	appErrors "github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils"
	"github.com/aaravmahajanofficial/pod-storefront/internal/utils/response"
)

// RateLimiter reports whether key may proceed, the attempts left and the
// seconds to wait when it may not.
type RateLimiter interface {
	CheckRateLimit(ctx context.Context, key string) (bool, int, int, error)
}

// RateLimit throttles a route per client IP. Limiter errors let the request through.
func RateLimit(limiter RateLimiter, prefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := LoggerFromContext(r.Context())
			key := prefix + ":" + utils.ClientIP(r)

			allowed, remaining, retryAfter, err := limiter.CheckRateLimit(r.Context(), key)
			if err != nil {
				logger.Error("Rate limit check failed", slog.String("key", key), slog.String("error", err.Error()))
				next.ServeHTTP(w, r)

				return
			}

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				response.Error(w, appErrors.TooManyRequestsError("Too many requests, please try again later"))

				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			next.ServeHTTP(w, r)
		})
	}
}
