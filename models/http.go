// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the minimal public projection of a user returned from
// registration. The password hash is never echoed back.
type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ErrorResponse is the uniform error body returned by the HTTP layer.
// Fields is populated only for validation failures and maps a field name to
// the reason it was rejected.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
