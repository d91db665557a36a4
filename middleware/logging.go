package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// statusWriter captures the status code a handler writes.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs one line per request. Server errors log at error
// level, client errors at warn, everything else at info.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		var evt *zerolog.Event
		switch {
		case sw.status >= http.StatusInternalServerError:
			evt = log.Error()
		case sw.status >= http.StatusBadRequest:
			evt = log.Warn()
		default:
			evt = log.Info()
		}
		evt.
			Str("request_id", GetRequestID(r.Context())).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", sw.status).
			Dur("latency", time.Since(start)).
			Msg("API")
	})
}
