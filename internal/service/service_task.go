// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package service

import (
	"context"
	"fmt"

	"github.com/taskdesk/taskdesk/internal/logger"
	"github.com/taskdesk/taskdesk/internal/store"
	"github.com/taskdesk/taskdesk/models"
)

// taskService is the concrete implementation of TaskService.
//
// Ownership is enforced here rather than in the repository: every read or
// write of an existing task first fetches it and compares its owner against
// the caller's identity. Admins may read and modify any task but use the
// same create path as everyone else.
type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService over the given repository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// CreateTask persists a new task owned by the caller.
func (s *taskService) CreateTask(ctx context.Context, identity models.Identity, req models.CreateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" {
		log.Error().Int64("user_id", identity.ID).Msg("invalid task data provided")
		return models.Task{}, ErrInvalidDataProvided
	}

	task, err := s.taskRepository.CreateTask(ctx, models.Task{
		UserID:      identity.ID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		log.Err(err).Int64("user_id", identity.ID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return task, nil
}

// ListTasks returns the caller's own tasks.
func (s *taskService) ListTasks(ctx context.Context, identity models.Identity) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	tasks, err := s.taskRepository.FindTasksByUserID(ctx, identity.ID)
	if err != nil {
		log.Err(err).Int64("user_id", identity.ID).Msg("task listing failed")
		return nil, fmt.Errorf("task listing failed: %w", err)
	}

	return tasks, nil
}

// GetTask returns a single task if the caller owns it or is an admin.
func (s *taskService) GetTask(ctx context.Context, identity models.Identity, taskID int64) (models.Task, error) {
	return s.fetchAuthorized(ctx, identity, taskID)
}

// UpdateTask applies a partial update to a task the caller owns.
// Admins may also update tasks of other users.
func (s *taskService) UpdateTask(ctx context.Context, identity models.Identity, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	if _, err := s.fetchAuthorized(ctx, identity, update.TaskID); err != nil {
		return models.Task{}, err
	}

	task, err := s.taskRepository.UpdateTask(ctx, update)
	if err != nil {
		log.Err(err).Int64("task_id", update.TaskID).Msg("task update failed")
		return models.Task{}, fmt.Errorf("task update failed: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task the caller owns. Admins may delete any task.
func (s *taskService) DeleteTask(ctx context.Context, identity models.Identity, taskID int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.fetchAuthorized(ctx, identity, taskID); err != nil {
		return err
	}

	if err := s.taskRepository.DeleteTask(ctx, taskID); err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task deletion failed")
		return fmt.Errorf("task deletion failed: %w", err)
	}

	return nil
}

// fetchAuthorized loads a task and checks that the caller may access it.
// Returns [ErrAccessDenied] when the task belongs to someone else and the
// caller is not an admin.
func (s *taskService) fetchAuthorized(ctx context.Context, identity models.Identity, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := s.taskRepository.FindTaskByID(ctx, taskID)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task lookup failed")
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}

	if task.UserID != identity.ID && !identity.Authorized(models.RoleAdmin) {
		log.Warn().
			Int64("task_id", taskID).
			Int64("owner_id", task.UserID).
			Int64("caller_id", identity.ID).
			Msg("access to another user's task denied")
		return models.Task{}, ErrAccessDenied
	}

	return task, nil
}
