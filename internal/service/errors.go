// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package service

import "errors"

// Sentinel errors returned by the service layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidDataProvided is returned when a request reaches the service
	// with required fields missing. Field-level validation normally catches
	// this earlier in the HTTP layer.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for BOTH an unknown email and a
	// wrong password. The two cases are intentionally indistinguishable so
	// the login endpoint cannot be used to enumerate registered emails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenIsExpiredOrInvalid is returned when a bearer token fails
	// verification for any reason: bad signature, expiry, wrong issuer,
	// malformed string, or a subject referencing a deleted account.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrAccessDenied is returned when an authenticated caller targets a
	// resource their role and ownership do not permit.
	ErrAccessDenied = errors.New("access denied")
)
