package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"magazine-catalog/internal/handler/http/respond"
)

var errRateLimited = errors.New("rate limit exceeded")

// WriteLimiter throttles mutating requests with a single token bucket.
type WriteLimiter struct {
	limiter *rate.Limiter
	now     func() time.Time
}

// NewWriteLimiter allows rps requests per second with bursts of up to burst.
// A non-positive rps disables limiting.
func NewWriteLimiter(rps float64, burst int) *WriteLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	if burst < 1 {
		burst = 1
	}
	return &WriteLimiter{limiter: rate.NewLimiter(limit, burst), now: time.Now}
}

// Limit rejects requests with 429 Too Many Requests once the bucket is empty.
// The Retry-After header carries the whole seconds until a token is available.
func (l *WriteLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := l.limiter.ReserveN(l.now(), 1)
		if !res.OK() {
			respond.SafeError(w, http.StatusTooManyRequests, errRateLimited)
			return
		}
		if delay := res.DelayFrom(l.now()); delay > 0 {
			res.CancelAt(l.now())
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			respond.SafeError(w, http.StatusTooManyRequests, errRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}
