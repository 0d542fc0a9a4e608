package httpx

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/sevahub/volunteer-api/internal/observability/statsd"
)

// Metrics returns a middleware that emits a request counter, a latency
// timing, and an in-flight gauge for every request. Tags carry method and
// status only; paths are excluded to keep metric cardinality bounded.
// A nil sink yields a pass-through middleware.
func Metrics(sink statsd.Sink) func(http.Handler) http.Handler {
	var inflight atomic.Int64
	return func(next http.Handler) http.Handler {
		if sink == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sink.Gauge("http.inflight", float64(inflight.Add(1)), nil)

			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			defer func() {
				sink.Gauge("http.inflight", float64(inflight.Add(-1)), nil)
				tags := map[string]string{
					"method": r.Method,
					"status": strconv.Itoa(ww.status),
				}
				sink.Count("http.requests", 1, tags)
				sink.Timing("http.request_duration", time.Since(start), tags)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
