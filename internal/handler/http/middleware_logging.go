// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package http

import (
	"net/http"
	"time"

	"github.com/taskdesk/taskdesk/internal/logger"
)

// withLogging emits one access-log line per request with the method, URI,
// response status, body size and handling duration.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
