// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package service

import (
	"context"

	"github.com/taskdesk/taskdesk/models"
)

// AuthService orchestrates registration, login, and request-time identity
// resolution. Authorization itself is a pure predicate on the resolved
// identity (see [models.Identity.Authorized]) and needs no service state.
type AuthService interface {
	// Register creates a new account with the default role. Exactly one
	// user row is created on success; a duplicate email creates nothing.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the credentials and issues a signed bearer token.
	// Unknown email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// ResolveIdentity verifies a raw bearer token and re-fetches the
	// referenced account, so role and email are always current and a
	// deleted account cannot authenticate. Read-only.
	ResolveIdentity(ctx context.Context, tokenString string) (models.Identity, error)

	// UpdateProfile applies a partial profile change for the given caller.
	UpdateProfile(ctx context.Context, identity models.Identity, update models.UserUpdate) (models.User, error)

	// ListUsers returns all accounts. The handler layer gates this behind
	// the admin role.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// TaskService implements to-do CRUD with ownership enforcement: a caller may
// only touch their own tasks unless they hold the admin role.
type TaskService interface {
	CreateTask(ctx context.Context, identity models.Identity, req models.CreateTaskRequest) (models.Task, error)
	ListTasks(ctx context.Context, identity models.Identity) ([]models.Task, error)
	GetTask(ctx context.Context, identity models.Identity, taskID int64) (models.Task, error)
	UpdateTask(ctx context.Context, identity models.Identity, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, identity models.Identity, taskID int64) error
}
