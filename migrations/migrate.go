// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending schema migrations for the given database/sql
// driver name ("pgx" or "sqlite3"). Each backend keeps its own migration
// directory because the schema DDL is not portable between PostgreSQL and
// SQLite.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	dialect, dir := "postgres", "postgres"
	if driver == "sqlite3" {
		dialect, dir = "sqlite3", "sqlite"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
