// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package models

import "time"

// Task is a to-do item owned by exactly one user. It exists mainly to
// illustrate ownership and role gating on top of the auth flow.
type Task struct {
	// TaskID is the internal unique identifier of the task.
	TaskID int64 `json:"id"`

	// UserID references the owning user. The database enforces the
	// foreign key with ON DELETE CASCADE.
	UserID int64 `json:"user_id"`

	// Title is the short human-readable summary of the task.
	Title string `json:"title"`

	// Description is an optional longer body.
	Description string `json:"description,omitempty"`

	// Done marks the task as completed.
	Done bool `json:"done"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last change.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskUpdate describes a partial task update. Nil fields are left untouched
// by the repository.
type TaskUpdate struct {
	TaskID      int64   `json:"-"`
	UserID      int64   `json:"-"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Done        *bool   `json:"done,omitempty"`
}
