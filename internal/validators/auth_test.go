// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdesk/taskdesk/models"
)

func TestAuthValidator_Register_Valid(t *testing.T) {
	v := NewAuthValidator()

	err := v.Validate(context.Background(), models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
}

func TestAuthValidator_Register_AllFieldsReported(t *testing.T) {
	v := NewAuthValidator()

	err := v.Validate(context.Background(), models.RegisterRequest{})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestAuthValidator_Register_BadEmail(t *testing.T) {
	v := NewAuthValidator()

	err := v.Validate(context.Background(), models.RegisterRequest{
		Name:     "Alice",
		Email:    "not-an-email",
		Password: "correct-horse",
	})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Contains(t, fields, "email")
	assert.NotContains(t, fields, "name")
}

func TestAuthValidator_Register_PasswordBounds(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	tooShort := models.RegisterRequest{Name: "A", Email: "a@b.example", Password: "short"}
	tooLong := models.RegisterRequest{Name: "A", Email: "a@b.example", Password: strings.Repeat("x", PasswordMaxLength+1)}
	justRight := models.RegisterRequest{Name: "A", Email: "a@b.example", Password: strings.Repeat("x", PasswordMinLength)}

	assert.Error(t, v.Validate(ctx, tooShort))
	assert.Error(t, v.Validate(ctx, tooLong))
	assert.NoError(t, v.Validate(ctx, justRight))
}

// TestAuthValidator_Login_MalformedEmailAccepted pins down that login only
// checks presence: a malformed email must reach the service and fail there
// as plain invalid credentials.
func TestAuthValidator_Login_MalformedEmailAccepted(t *testing.T) {
	v := NewAuthValidator()

	err := v.Validate(context.Background(), models.LoginRequest{
		Email:    "not-an-email",
		Password: "whatever",
	})
	require.NoError(t, err)
}

func TestAuthValidator_Login_MissingFields(t *testing.T) {
	v := NewAuthValidator()

	err := v.Validate(context.Background(), models.LoginRequest{Email: "alice@example.com"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Contains(t, fields, "password")
}

func TestAuthValidator_ProfileUpdate_NilFieldsSkipped(t *testing.T) {
	v := NewAuthValidator()

	err := v.Validate(context.Background(), models.UserUpdate{})
	require.NoError(t, err)
}

// TestAuthValidator_ProfileUpdate_EmptyNameRejected pins down that a partial
// update cannot blank the display name registration required.
func TestAuthValidator_ProfileUpdate_EmptyNameRejected(t *testing.T) {
	v := NewAuthValidator()

	empty := ""
	err := v.Validate(context.Background(), models.UserUpdate{Name: &empty})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Contains(t, fields, "name")
}

func TestAuthValidator_ProfileUpdate_Bounds(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	longName := strings.Repeat("x", 101)
	longPhone := strings.Repeat("9", 21)
	okName := "Alice B"
	okPhone := "+1-555-0100"

	assert.Error(t, v.Validate(ctx, models.UserUpdate{Name: &longName}))
	assert.Error(t, v.Validate(ctx, models.UserUpdate{Phone: &longPhone}))
	assert.NoError(t, v.Validate(ctx, models.UserUpdate{Name: &okName, Phone: &okPhone}))
}

func TestAuthValidator_PointerFormsAccepted(t *testing.T) {
	v := NewAuthValidator()

	err := v.Validate(context.Background(), &models.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
}

func TestAuthValidator_UnsupportedType(t *testing.T) {
	v := NewAuthValidator()

	err := v.Validate(context.Background(), 42)
	require.ErrorIs(t, err, ErrUnsupportedType)
}
