// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/taskdesk/taskdesk/models"
)

// builder is the shared squirrel statement builder. The Dollar placeholder
// format is understood by both supported drivers (SQLite accepts $N
// parameters natively).
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"user_id", "name", "email", "password_hash", "phone", "role", "created_at", "updated_at"}
	taskColumns = []string{"task_id", "user_id", "title", "description", "done", "created_at", "updated_at"}
)

func returningUsers() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

func returningTasks() string {
	return "RETURNING " + strings.Join(taskColumns, ", ")
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return builder.Insert("users").
		Columns("name", "email", "password_hash", "phone", "role").
		Values(user.Name, user.Email, user.PasswordHash, user.Phone, user.Role).
		Suffix(returningUsers()).
		ToSql()
}

func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return builder.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectUserByIDQuery(userID int64) (string, []any, error) {
	return builder.Select(userColumns...).
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildListUsersQuery() (string, []any, error) {
	return builder.Select(userColumns...).
		From("users").
		OrderBy("user_id").
		ToSql()
}

// buildUpdateUserQuery builds a partial UPDATE touching only the non-nil
// fields of update. Returns ErrNothingToUpdate when every field is nil.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	query := builder.Update("users").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	changed := false
	if update.Name != nil {
		query = query.Set("name", *update.Name)
		changed = true
	}
	if update.Phone != nil {
		query = query.Set("phone", *update.Phone)
		changed = true
	}

	if !changed {
		return "", nil, ErrNothingToUpdate
	}

	return query.
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix(returningUsers()).
		ToSql()
}

func buildInsertTaskQuery(task models.Task) (string, []any, error) {
	return builder.Insert("tasks").
		Columns("user_id", "title", "description", "done").
		Values(task.UserID, task.Title, task.Description, task.Done).
		Suffix(returningTasks()).
		ToSql()
}

func buildSelectTaskByIDQuery(taskID int64) (string, []any, error) {
	return builder.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"task_id": taskID}).
		ToSql()
}

func buildSelectTasksByUserIDQuery(userID int64) (string, []any, error) {
	return builder.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("task_id").
		ToSql()
}

// buildUpdateTaskQuery builds a partial UPDATE touching only the non-nil
// fields of update. Returns ErrNothingToUpdate when every field is nil.
func buildUpdateTaskQuery(update models.TaskUpdate) (string, []any, error) {
	query := builder.Update("tasks").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	changed := false
	if update.Title != nil {
		query = query.Set("title", *update.Title)
		changed = true
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
		changed = true
	}
	if update.Done != nil {
		query = query.Set("done", *update.Done)
		changed = true
	}

	if !changed {
		return "", nil, ErrNothingToUpdate
	}

	return query.
		Where(sq.Eq{"task_id": update.TaskID}).
		Suffix(returningTasks()).
		ToSql()
}

func buildDeleteTaskQuery(taskID int64) (string, []any, error) {
	return builder.Delete("tasks").
		Where(sq.Eq{"task_id": taskID}).
		ToSql()
}
