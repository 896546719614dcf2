// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taskdesk/taskdesk/internal/logger"
	"github.com/taskdesk/taskdesk/internal/utils"
	"github.com/taskdesk/taskdesk/internal/validators"
	"github.com/taskdesk/taskdesk/models"
)

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("identity missing from authenticated request context")
		writeError(w, ErrEmptyAuthorizationHeader)
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeValidationError(w, map[string]string{"body": "invalid JSON"})
		return
	}

	if err := h.taskValidator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("task creation request failed validation")
		writeValidationError(w, validators.FieldErrors(err))
		return
	}

	task, err := h.services.TaskService.CreateTask(ctx, identity, req)
	if err != nil {
		log.Err(err).Msg("task creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("identity missing from authenticated request context")
		writeError(w, ErrEmptyAuthorizationHeader)
		return
	}

	tasks, err := h.services.TaskService.ListTasks(ctx, identity)
	if err != nil {
		log.Err(err).Msg("task listing failed")
		writeError(w, err)
		return
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("identity missing from authenticated request context")
		writeError(w, ErrEmptyAuthorizationHeader)
		return
	}

	taskID, err := taskIDFromURL(r)
	if err != nil {
		writeValidationError(w, map[string]string{"taskID": "must be a positive integer"})
		return
	}

	task, err := h.services.TaskService.GetTask(ctx, identity, taskID)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("identity missing from authenticated request context")
		writeError(w, ErrEmptyAuthorizationHeader)
		return
	}

	taskID, err := taskIDFromURL(r)
	if err != nil {
		writeValidationError(w, map[string]string{"taskID": "must be a positive integer"})
		return
	}

	var update models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeValidationError(w, map[string]string{"body": "invalid JSON"})
		return
	}
	update.TaskID = taskID

	if err := h.taskValidator.Validate(ctx, update); err != nil {
		log.Err(err).Msg("task update request failed validation")
		writeValidationError(w, validators.FieldErrors(err))
		return
	}

	task, err := h.services.TaskService.UpdateTask(ctx, identity, update)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("identity missing from authenticated request context")
		writeError(w, ErrEmptyAuthorizationHeader)
		return
	}

	taskID, err := taskIDFromURL(r)
	if err != nil {
		writeValidationError(w, map[string]string{"taskID": "must be a positive integer"})
		return
	}

	if err := h.services.TaskService.DeleteTask(ctx, identity, taskID); err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// taskIDFromURL parses the {taskID} route parameter.
func taskIDFromURL(r *http.Request) (int64, error) {
	taskID, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil || taskID < 1 {
		return 0, strconv.ErrSyntax
	}
	return taskID, nil
}
