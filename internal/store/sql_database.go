// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/taskdesk/taskdesk/internal/config"
	"github.com/taskdesk/taskdesk/internal/logger"
	"github.com/taskdesk/taskdesk/migrations"
)

// DB wraps the standard sql.DB handle together with the driver name it was
// opened with, so repositories and migrations can stay driver-agnostic.
type DB struct {
	*sql.DB

	driver string
	logger *logger.Logger
}

// Driver returns the database/sql driver name in use ("pgx" or "sqlite3").
func (db *DB) Driver() string {
	return db.driver
}

// NewConnect opens the database selected by the DSN, verifies the connection
// with a ping, and applies all pending migrations.
//
// A DSN starting with "postgres://" or "postgresql://" selects the pgx
// driver; any other value is treated as an SQLite file path (":memory:"
// included), which is intended for local development and tests.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, dsn := driverForDSN(cfg.DSN)

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("driver", driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", driver).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("driver", driver).Msg("connected to database successfully")

	if err = migrations.Migrate(conn, driver); err != nil {
		log.Err(err).Msg("error applying migrations")
		return nil, err
	}

	return &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}, nil
}

// driverForDSN maps a DSN to a database/sql driver name. For SQLite the DSN
// is extended to enforce foreign keys, which SQLite leaves off by default;
// without it the tasks→users cascade would silently not fire.
func driverForDSN(dsn string) (driver, normalizedDSN string) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx", dsn
	}

	if !strings.Contains(dsn, "_foreign_keys") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_foreign_keys=on"
	}

	return "sqlite3", dsn
}
