package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/SeanJibowu555/dealer-qualifier/internal/platform/middleware"
	"github.com/SeanJibowu555/dealer-qualifier/pkg/platform/httputil"
	"github.com/SeanJibowu555/dealer-qualifier/pkg/platform/middleware/metadata"
)

var rejections = promauto.NewCounter(prometheus.CounterOpts{
	Name: "dealerq_ratelimit_rejections_total",
	Help: "Requests rejected by the rate limiter.",
})

// Middleware enforces the sliding-window limit per authenticated client,
// falling back to the client IP before authentication resolves a name.
func Middleware(store *MemoryStore, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := middleware.GetClientName(ctx)
			if key == "" {
				key = metadata.GetClientIP(ctx)
			}

			result := store.Allow(key)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed {
				rejections.Inc()
				logger.WarnContext(ctx, "rate limit exceeded", "client", key)
				// Retry-After is delay-seconds, not a timestamp.
				retryAfter := int(time.Until(result.ResetAt).Seconds())
				if retryAfter < 0 {
					retryAfter = 0
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				httputil.WriteJSON(w, http.StatusTooManyRequests, map[string]string{
					"error":             "rate_limit_exceeded",
					"error_description": "request rate limit exceeded",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
