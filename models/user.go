// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the database and stable once assigned.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier of the user.
	// Uniqueness is enforced by the database; lookups are exact-match.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// Phone is an optional contact phone number.
	Phone string `json:"phone,omitempty"`

	// Role is the coarse-grained authorization tag of the user.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile change.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial profile update. Nil fields are left
// untouched by the repository.
type UserUpdate struct {
	UserID int64   `json:"-"`
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
}
