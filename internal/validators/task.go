// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package validators

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/taskdesk/taskdesk/models"
)

// TaskValidator implements [Validator] for task request shapes.
type TaskValidator struct {
}

// NewTaskValidator constructs a new TaskValidator and returns it as the
// Validator interface.
func NewTaskValidator() Validator {
	return &TaskValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.CreateTaskRequest / *models.CreateTaskRequest
//   - models.TaskUpdate / *models.TaskUpdate
//
// Returns ErrUnsupportedType if obj does not match any known shape.
func (v *TaskValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.CreateTaskRequest:
		return v.validateCreate(value)
	case *models.CreateTaskRequest:
		return v.validateCreate(*value)

	case models.TaskUpdate:
		return v.validateUpdate(value)
	case *models.TaskUpdate:
		return v.validateUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateCreate(r models.CreateTaskRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
	)
}

// validateUpdate checks only the fields present in the partial update.
func (v *TaskValidator) validateUpdate(r models.TaskUpdate) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
	)
}
