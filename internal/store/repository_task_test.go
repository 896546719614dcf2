// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/taskdesk/taskdesk/internal/logger"
	"github.com/taskdesk/taskdesk/models"
)

func newTestTaskRepo(t *testing.T) (*taskRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &taskRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func taskRows() *sqlmock.Rows {
	return sqlmock.NewRows(taskColumns)
}

func TestCreateTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()
	task := models.Task{
		UserID:      1,
		Title:       "buy milk",
		Description: "2 liters",
	}

	now := time.Now()
	rows := taskRows().
		AddRow(10, task.UserID, task.Title, task.Description, false, now, now)

	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs(task.UserID, task.Title, task.Description, task.Done).
		WillReturnRows(rows)

	created, err := repo.CreateTask(ctx, task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TaskID != 10 {
		t.Errorf("expected TaskID=10, got %d", created.TaskID)
	}
	if created.Done {
		t.Error("expected new task to be not done")
	}
}

func TestFindTaskByID_NotFound(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT task_id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindTaskByID(context.Background(), 99)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestFindTasksByUserID_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	now := time.Now()
	rows := taskRows().
		AddRow(10, 1, "buy milk", "", false, now, now).
		AddRow(11, 1, "walk the dog", "", true, now, now)

	mock.ExpectQuery("SELECT task_id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	tasks, err := repo.FindTasksByUserID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if !tasks[1].Done {
		t.Error("expected second task to be done")
	}
}

func TestFindTasksByUserID_Empty(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT task_id").
		WithArgs(int64(1)).
		WillReturnRows(taskRows())

	tasks, err := repo.FindTasksByUserID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}
}

func TestUpdateTask_NothingToUpdate(t *testing.T) {
	repo, _, db := newTestTaskRepo(t)
	defer db.Close()

	_, err := repo.UpdateTask(context.Background(), models.TaskUpdate{TaskID: 10})
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestUpdateTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()
	done := true

	now := time.Now()
	rows := taskRows().
		AddRow(10, 1, "buy milk", "", true, now, now)

	mock.ExpectQuery("UPDATE tasks").
		WithArgs(done, int64(10)).
		WillReturnRows(rows)

	updated, err := repo.UpdateTask(ctx, models.TaskUpdate{TaskID: 10, Done: &done})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Done {
		t.Error("expected task to be done after update")
	}
}

func TestDeleteTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTask(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTask(context.Background(), 99)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
