package metrics

import (
	"net/http"
	"time"
)

// statusReporter is implemented by writers that already track the status,
// such as the one installed by slogx.HTTPMiddleware.
type statusReporter interface {
	Status() int
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Status() int { return w.status }

// HTTPMiddleware records a request count and latency per route. The route is
// the ServeMux pattern that matched, so path parameters do not explode label
// cardinality.
func HTTPMiddleware(rec Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			sr, ok := w.(statusReporter)
			if !ok {
				sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
				sr, w = sw, sw
			}

			next.ServeHTTP(w, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			rec.RecordHTTPRequest(r.Method, route, sr.Status(), time.Since(start))
		})
	}
}
