package metrics

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Collect produces the HTTP middleware that records the counters/histogram.
func Collect(opts ...CollectOption) func(next http.Handler) http.Handler {
	c := newCollector(opts...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			startTime := time.Now()

			defer func() {
				if c.skipped(r) {
					return
				}

				endTime := time.Since(startTime)

				code := strconv.Itoa(ww.Status())
				uri := c.normalize(r) // keep the label low-cardinality
				method := r.Method

				dispatchRequestsByURI.WithLabelValues(code, uri, method).Inc()
				dispatchRequests.WithLabelValues(code, method).Inc()
				dispatchSeconds.Observe(endTime.Seconds())
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
