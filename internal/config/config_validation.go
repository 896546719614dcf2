// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The auth checks implement the fail-closed posture of the auth flow: a
// service that cannot sign or verify tokens must refuse to start rather
// than fail per-request.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Auth.TokenDuration <= 0 {
		return ErrMissingTokenDuration
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	return nil
}
