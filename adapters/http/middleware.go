package http

import (
	"net/http"
	"time"

	"github.com/artpar/userhub/pkg/statuswriter"
	"github.com/google/uuid"
)

// requestLogger logs one line per request with a generated request id.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		sw := statuswriter.Wrap(w)
		next.ServeHTTP(sw, r)

		h.logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.Status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
