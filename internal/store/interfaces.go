// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package store

import (
	"context"

	"github.com/taskdesk/taskdesk/models"
)

// UserRepository is the persistence contract for user accounts.
//
// Email lookups are exact-match: no case folding or normalization is applied
// before comparison. Uniqueness of the email column is enforced by the
// database and surfaces as [ErrEmailAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// TaskRepository is the persistence contract for to-do items.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	FindTaskByID(ctx context.Context, taskID int64) (models.Task, error)
	FindTasksByUserID(ctx context.Context, userID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}
