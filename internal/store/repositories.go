// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package store

import (
	"github.com/taskdesk/taskdesk/internal/logger"
)

// Repositories bundles every repository implementation for dependency
// injection into the service layer.
type Repositories struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

// NewRepositories constructs all repositories over the given database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		TaskRepository: NewTaskRepository(db, logger),
	}
}
