package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// quietPaths are polled by orchestrators and scrapers; logging them at info
// would drown out real traffic.
var quietPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
	"/metrics": true,
}

type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// RequestLogging emits one access-log line per request. Ordinary traffic
// logs at info; health and metrics probes log at debug. The correlation ID
// is picked up from the request context when CorrelationID ran upstream.
func RequestLogging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w}

			next.ServeHTTP(rw, r)

			event := logger.Info()
			if quietPaths[r.URL.Path] {
				event = logger.Debug()
			}
			if requestID := GetRequestID(r.Context()); requestID != "" {
				event = event.Str("request_id", requestID)
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.status).
				Int("bytes_out", rw.bytes).
				Dur("duration_ms", time.Since(start)).
				Msg("http request")
		})
	}
}
