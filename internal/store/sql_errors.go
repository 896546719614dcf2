// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err was caused by a unique-constraint
// violation, for either supported driver. This is the authoritative
// duplicate-email signal: the look-up-before-insert check in the service is
// only an early exit and cannot be atomic on its own.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}

// isNoRows reports whether err signals an empty result set.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
