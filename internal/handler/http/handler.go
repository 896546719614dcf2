// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package http

import (
	"github.com/taskdesk/taskdesk/internal/logger"
	"github.com/taskdesk/taskdesk/internal/service"
	"github.com/taskdesk/taskdesk/internal/validators"
)

// Handler holds the HTTP transport dependencies: the service layer, the
// request validators, and the base logger from which request-scoped child
// loggers are derived.
type Handler struct {
	services *service.Services

	authValidator validators.Validator
	taskValidator validators.Validator

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		authValidator: validators.NewAuthValidator(),
		taskValidator: validators.NewTaskValidator(),
		logger:        logger,
	}
}
