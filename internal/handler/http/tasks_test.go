// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdesk/taskdesk/internal/service"
	"github.com/taskdesk/taskdesk/internal/store"
	"github.com/taskdesk/taskdesk/models"
)

func TestCreateTask_Created(t *testing.T) {
	tasks := &mockTaskService{
		createTaskFn: func(_ context.Context, identity models.Identity, req models.CreateTaskRequest) (models.Task, error) {
			assert.Equal(t, userIdentity.ID, identity.ID)
			return models.Task{TaskID: 10, UserID: identity.ID, Title: req.Title}, nil
		},
	}
	router := newTestRouter(t, resolveAs(userIdentity), tasks)

	rec := doJSON(t, router, http.MethodPost, "/api/tasks", `{"title":"buy milk"}`, "valid.token")

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(10), body["id"])
	assert.Equal(t, "buy milk", body["title"])
	assert.Equal(t, false, body["done"])
}

func TestCreateTask_EmptyTitleRejected(t *testing.T) {
	router := newTestRouter(t, resolveAs(userIdentity), &mockTaskService{})

	rec := doJSON(t, router, http.MethodPost, "/api/tasks", `{"title":""}`, "valid.token")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "title")
}

func TestListTasks_EmptyListIsJSONArray(t *testing.T) {
	tasks := &mockTaskService{
		listTasksFn: func(_ context.Context, _ models.Identity) ([]models.Task, error) {
			return nil, nil
		},
	}
	router := newTestRouter(t, resolveAs(userIdentity), tasks)

	rec := doJSON(t, router, http.MethodGet, "/api/tasks", "", "valid.token")

	require.Equal(t, http.StatusOK, rec.Code)

	var list []models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestGetTask_Success(t *testing.T) {
	tasks := &mockTaskService{
		getTaskFn: func(_ context.Context, _ models.Identity, taskID int64) (models.Task, error) {
			assert.Equal(t, int64(10), taskID)
			return models.Task{TaskID: 10, UserID: userIdentity.ID, Title: "buy milk"}, nil
		},
	}
	router := newTestRouter(t, resolveAs(userIdentity), tasks)

	rec := doJSON(t, router, http.MethodGet, "/api/tasks/10", "", "valid.token")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "buy milk", body["title"])
}

func TestGetTask_BadID(t *testing.T) {
	router := newTestRouter(t, resolveAs(userIdentity), &mockTaskService{})

	rec := doJSON(t, router, http.MethodGet, "/api/tasks/abc", "", "valid.token")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTask_NotFound(t *testing.T) {
	tasks := &mockTaskService{
		getTaskFn: func(_ context.Context, _ models.Identity, _ int64) (models.Task, error) {
			return models.Task{}, store.ErrTaskNotFound
		},
	}
	router := newTestRouter(t, resolveAs(userIdentity), tasks)

	rec := doJSON(t, router, http.MethodGet, "/api/tasks/99", "", "valid.token")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTask_ForeignTaskForbidden(t *testing.T) {
	tasks := &mockTaskService{
		getTaskFn: func(_ context.Context, _ models.Identity, _ int64) (models.Task, error) {
			return models.Task{}, service.ErrAccessDenied
		},
	}
	router := newTestRouter(t, resolveAs(userIdentity), tasks)

	rec := doJSON(t, router, http.MethodGet, "/api/tasks/10", "", "valid.token")

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateTask_Success(t *testing.T) {
	tasks := &mockTaskService{
		updateTaskFn: func(_ context.Context, _ models.Identity, update models.TaskUpdate) (models.Task, error) {
			require.NotNil(t, update.Done)
			assert.Equal(t, int64(10), update.TaskID)
			return models.Task{TaskID: 10, Done: *update.Done}, nil
		},
	}
	router := newTestRouter(t, resolveAs(userIdentity), tasks)

	rec := doJSON(t, router, http.MethodPatch, "/api/tasks/10", `{"done":true}`, "valid.token")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["done"])
}

func TestDeleteTask_NoContent(t *testing.T) {
	tasks := &mockTaskService{
		deleteTaskFn: func(_ context.Context, _ models.Identity, taskID int64) error {
			assert.Equal(t, int64(10), taskID)
			return nil
		},
	}
	router := newTestRouter(t, resolveAs(userIdentity), tasks)

	rec := doJSON(t, router, http.MethodDelete, "/api/tasks/10", "", "valid.token")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestUpdateMe_Success(t *testing.T) {
	auth := resolveAs(userIdentity)
	auth.updateProfileFn = func(_ context.Context, identity models.Identity, update models.UserUpdate) (models.User, error) {
		assert.Equal(t, userIdentity.ID, identity.ID)
		require.NotNil(t, update.Name)
		return models.User{UserID: identity.ID, Name: *update.Name, Email: identity.Email}, nil
	}
	router := newTestRouter(t, auth, &mockTaskService{})

	rec := doJSON(t, router, http.MethodPatch, "/api/me", `{"name":"Alice B"}`, "valid.token")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Alice B", body["name"])
}

// TestUpdateMe_EmptyNameRejected verifies the profile update body is
// validated before the service runs: blanking the name must fail with 400
// and never reach the store.
func TestUpdateMe_EmptyNameRejected(t *testing.T) {
	auth := resolveAs(userIdentity)
	auth.updateProfileFn = func(_ context.Context, _ models.Identity, _ models.UserUpdate) (models.User, error) {
		t.Fatal("service must not be called for an invalid update")
		return models.User{}, nil
	}
	router := newTestRouter(t, auth, &mockTaskService{})

	rec := doJSON(t, router, http.MethodPatch, "/api/me", `{"name":""}`, "valid.token")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "name")
}
