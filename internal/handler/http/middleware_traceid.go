// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader names the header that carries the request trace identifier
// in both directions.
const traceIDHeader = "X-Trace-ID"

// withTraceID stamps every request with a trace identifier and binds it to
// the request-scoped logger, so all log lines emitted while handling one
// request share a trace_id field. A caller that already has an identifier
// can pass it in the X-Trace-ID header and it is reused; otherwise a fresh
// UUID is minted. The identifier is echoed back on the response so clients
// can quote it when reporting a failure.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(log.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
