// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package http

import (
	"errors"
	"net/http"

	"github.com/taskdesk/taskdesk/internal/service"
	"github.com/taskdesk/taskdesk/internal/store"
	"github.com/taskdesk/taskdesk/internal/utils"
	"github.com/taskdesk/taskdesk/models"
)

// errorStatusMap maps service- and store-level sentinels to HTTP statuses.
// A duplicate email at registration maps to 400 like any other register
// failure; both invalid-credential cases share the single 401.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAccessDenied:            http.StatusForbidden,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrTaskNotFound:       http.StatusNotFound,
	store.ErrNothingToUpdate:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// clientMessageFromError returns the message exposed to the caller. Internal
// failures are collapsed to a generic message so driver or SQL details never
// leak into responses.
func clientMessageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// writeError writes the uniform JSON error body for the given failure.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	utils.WriteJSON(w, models.ErrorResponse{
		Error: clientMessageFromError(err, status),
	}, status)
}

// writeValidationError writes a 400 with the per-field reasons attached.
func writeValidationError(w http.ResponseWriter, fields map[string]string) {
	utils.WriteJSON(w, models.ErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	}, http.StatusBadRequest)
}
