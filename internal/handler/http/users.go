// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/taskdesk/taskdesk/internal/logger"
	"github.com/taskdesk/taskdesk/internal/utils"
	"github.com/taskdesk/taskdesk/internal/validators"
	"github.com/taskdesk/taskdesk/models"
)

// me returns the caller's resolved identity. The identity comes from the
// auth middleware, which has already re-fetched the account, so no extra
// store round trip is needed here.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		log.Error().Msg("identity missing from authenticated request context")
		writeError(w, ErrEmptyAuthorizationHeader)
		return
	}

	utils.WriteJSON(w, identity, http.StatusOK)
}

// updateMe applies a partial profile update (name, phone) for the caller.
func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("identity missing from authenticated request context")
		writeError(w, ErrEmptyAuthorizationHeader)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeValidationError(w, map[string]string{"body": "invalid JSON"})
		return
	}

	if err := h.authValidator.Validate(ctx, update); err != nil {
		log.Err(err).Msg("profile update failed validation")
		writeValidationError(w, validators.FieldErrors(err))
		return
	}

	updatedUser, err := h.services.AuthService.UpdateProfile(ctx, identity, update)
	if err != nil {
		log.Err(err).Msg("profile update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

// listUsers returns every account. The requireRoles middleware has already
// verified the admin role before this handler runs.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AuthService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
