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

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeValidationError(w, map[string]string{"body": "invalid JSON"})
		return
	}

	if err := h.authValidator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("registration request failed validation")
		writeValidationError(w, validators.FieldErrors(err))
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Success: true,
		Message: "user registered successfully",
		User: models.UserSummary{
			ID:    registeredUser.UserID,
			Email: registeredUser.Email,
		},
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeValidationError(w, map[string]string{"body": "invalid JSON"})
		return
	}

	if err := h.authValidator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("login request failed validation")
		writeValidationError(w, validators.FieldErrors(err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", token.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.SignedString,
	}, http.StatusOK)
}
