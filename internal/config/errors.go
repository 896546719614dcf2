// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// provided (JWT_SECRET). The service refuses to start without it.
	ErrMissingTokenSignKey = errors.New("token sign key is required (JWT_SECRET)")

	// ErrMissingTokenDuration indicates a missing or non-positive token
	// lifetime (JWT_EXPIRES_IN).
	ErrMissingTokenDuration = errors.New("token duration is required (JWT_EXPIRES_IN)")

	// ErrMissingDatabaseDSN indicates that no database connection string
	// was provided.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
)
