// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package http

import (
	"net/http"

	"github.com/taskdesk/taskdesk/internal/logger"
	"github.com/taskdesk/taskdesk/internal/service"
	"github.com/taskdesk/taskdesk/internal/utils"
	"github.com/taskdesk/taskdesk/models"
)

// requireRoles is an HTTP middleware that restricts a route to callers whose
// role is one of requiredRoles. It must be mounted after [Handler.auth], which
// places the resolved identity in the request context.
//
// Authentication and authorization fail differently on purpose: a missing or
// invalid token yields 401 from the auth middleware, while a valid token with
// an insufficient role yields 403 here.
func (h *Handler) requireRoles(requiredRoles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				log.Error().Msg("identity missing from authenticated request context")
				writeError(w, ErrEmptyAuthorizationHeader)
				return
			}

			if !identity.Authorized(requiredRoles...) {
				log.Warn().
					Int64("id", identity.ID).
					Str("role", string(identity.Role)).
					Msg("access denied by role check")
				writeError(w, service.ErrAccessDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
