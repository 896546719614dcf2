// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package store

import (
	"context"
	"fmt"

	"github.com/taskdesk/taskdesk/internal/logger"
	"github.com/taskdesk/taskdesk/models"
)

// taskRepository is the SQL-backed implementation of [TaskRepository].
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask persists a new task and returns it with server-assigned fields.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTaskQuery(task)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error building query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanTaskRow(ctx, query, args)
}

// FindTaskByID retrieves a single task.
//
// Returns [ErrTaskNotFound] when no record matches.
func (r *taskRepository) FindTaskByID(ctx context.Context, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTaskByIDQuery(taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTaskByID").Msg("error building query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanTaskRow(ctx, query, args)
}

// FindTasksByUserID lists every task owned by the given user, oldest first.
func (r *taskRepository) FindTasksByUserID(ctx context.Context, userID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTasksByUserIDQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTasksByUserID").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTasksByUserID").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.TaskID, &task.UserID, &task.Title, &task.Description, &task.Done, &task.CreatedAt, &task.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*taskRepository.FindTasksByUserID").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// UpdateTask applies a partial task update and returns the record as
// persisted.
//
// Returns [ErrNothingToUpdate] when update carries no fields and
// [ErrTaskNotFound] when the target task does not exist.
func (r *taskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error building query")
		return models.Task{}, err
	}

	return r.scanTaskRow(ctx, query, args)
}

// DeleteTask removes a task. Returns [ErrTaskNotFound] when no row was
// deleted.
func (r *taskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTaskQuery(taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// scanTaskRow runs a single-row task query and maps an empty result set to
// [ErrTaskNotFound].
func (r *taskRepository) scanTaskRow(ctx context.Context, query string, args []any) (models.Task, error) {
	log := logger.FromContext(ctx)

	var task models.Task
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&task.TaskID, &task.UserID, &task.Title, &task.Description, &task.Done, &task.CreatedAt, &task.UpdatedAt); err != nil {
		if isNoRows(err) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.scanTaskRow").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}
