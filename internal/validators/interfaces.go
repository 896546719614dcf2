// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package validators

import "context"

// Validator checks an inbound request shape before the service layer runs.
// Implementations dispatch on the dynamic type of obj and return either nil
// or an error describing every rejected field.
//
// Validation failures are reported as [validation.Errors] values from the
// ozzo-validation library; use [FieldErrors] to convert them into a plain
// field→message map for client responses.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
