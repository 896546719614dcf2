// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package service

import (
	"github.com/taskdesk/taskdesk/internal/config"
	"github.com/taskdesk/taskdesk/internal/logger"
	"github.com/taskdesk/taskdesk/internal/store"
)

// Services bundles every service implementation for dependency injection
// into the transport layer.
type Services struct {
	AuthService AuthService
	TaskService TaskService
}

// NewServices constructs all services over the given repositories.
func NewServices(repositories *store.Repositories, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg, logger),
		TaskService: NewTaskService(repositories.TaskRepository, logger),
	}
}
