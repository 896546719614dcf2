// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package validators

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

// ErrUnsupportedType is returned when a validator receives a value whose
// type it does not know how to validate. It always indicates a programming
// error at the call site, not bad client input.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// FieldErrors converts a validation error into a field→message map suitable
// for a client-facing error response. Non-validation errors produce nil.
func FieldErrors(err error) map[string]string {
	var vErrs validation.Errors
	if !errors.As(err, &vErrs) {
		return nil
	}

	fields := make(map[string]string, len(vErrs))
	for field, fieldErr := range vErrs {
		if fieldErr != nil {
			fields[field] = fieldErr.Error()
		}
	}

	return fields
}

// IsValidationError reports whether err carries field-level validation
// failures produced by this package.
func IsValidationError(err error) bool {
	var vErrs validation.Errors
	return errors.As(err, &vErrs)
}
