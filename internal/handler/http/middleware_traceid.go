package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/sealed-vitae/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses a well-formed incoming X-Trace-ID or mints one, and
// attaches it to the request logger and context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !utils.AcceptTraceID(traceID) {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx := utils.WithTraceID(l.WithContext(r.Context()), traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
