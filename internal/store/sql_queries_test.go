// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/taskdesk/taskdesk/models"
)

func TestBuildInsertUserQuery(t *testing.T) {
	query, args, err := buildInsertUserQuery(models.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         models.RoleUser,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(query, "INSERT INTO users") {
		t.Errorf("unexpected query: %s", query)
	}
	if !strings.Contains(query, "RETURNING user_id") {
		t.Errorf("expected RETURNING clause, got: %s", query)
	}
	if !strings.Contains(query, "$1") {
		t.Errorf("expected dollar placeholders, got: %s", query)
	}
	if len(args) != 5 {
		t.Errorf("expected 5 args, got %d", len(args))
	}
}

func TestBuildUpdateTaskQuery_PartialFields(t *testing.T) {
	title := "new title"
	query, args, err := buildUpdateTaskQuery(models.TaskUpdate{TaskID: 10, Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "title = ") {
		t.Errorf("expected title assignment, got: %s", query)
	}
	if strings.Contains(query, "description = ") {
		t.Errorf("nil description must not be touched, got: %s", query)
	}
	if !strings.Contains(query, "updated_at = CURRENT_TIMESTAMP") {
		t.Errorf("expected updated_at bump, got: %s", query)
	}
	// title and task_id
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestBuildUpdateQueries_NothingToUpdate(t *testing.T) {
	if _, _, err := buildUpdateUserQuery(models.UserUpdate{UserID: 1}); !errors.Is(err, ErrNothingToUpdate) {
		t.Errorf("expected ErrNothingToUpdate for user update, got %v", err)
	}
	if _, _, err := buildUpdateTaskQuery(models.TaskUpdate{TaskID: 1}); !errors.Is(err, ErrNothingToUpdate) {
		t.Errorf("expected ErrNothingToUpdate for task update, got %v", err)
	}
}

func TestBuildDeleteTaskQuery(t *testing.T) {
	query, args, err := buildDeleteTaskQuery(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(query, "DELETE FROM tasks") {
		t.Errorf("unexpected query: %s", query)
	}
	if len(args) != 1 {
		t.Errorf("expected 1 arg, got %d", len(args))
	}
}
