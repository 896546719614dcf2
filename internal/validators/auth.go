// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package validators

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/taskdesk/taskdesk/models"
)

// Password length bounds accepted at registration. The upper bound also
// keeps the plaintext well under bcrypt's 72-byte input limit.
const (
	PasswordMinLength = 7
	PasswordMaxLength = 25
)

// AuthValidator implements [Validator] for the account request shapes:
// RegisterRequest, LoginRequest and UserUpdate. Both value and pointer
// forms are accepted.
type AuthValidator struct {
}

// NewAuthValidator constructs a new AuthValidator and returns it as the
// Validator interface.
func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//   - models.UserUpdate / *models.UserUpdate
//
// Returns ErrUnsupportedType if obj does not match any known shape.
func (v *AuthValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value)
	case *models.RegisterRequest:
		return v.validateRegister(*value)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	case models.UserUpdate:
		return v.validateProfileUpdate(value)
	case *models.UserUpdate:
		return v.validateProfileUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateRegister enforces the registration preconditions: non-empty name,
// syntactically valid email, and password length within the configured
// bounds. All failed fields are reported at once.
func (v *AuthValidator) validateRegister(r models.RegisterRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(PasswordMinLength, PasswordMaxLength)),
	)
}

// validateProfileUpdate checks only the fields present in the partial
// update. A present name must stay non-empty: an account never loses the
// display name registration required of it.
func (v *AuthValidator) validateProfileUpdate(r models.UserUpdate) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Phone, validation.Length(0, 20)),
	)
}

// validateLogin only requires both credentials to be present. Anything
// beyond presence is deliberately NOT checked here: a malformed email at
// login must fall through to the generic invalid-credentials error so the
// response does not leak which part was wrong.
func (v *AuthValidator) validateLogin(r models.LoginRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}
